package repositories

import (
	"errors"
	"strings"

	"networknode/database"
	"networknode/internal/models"

	"gorm.io/gorm"
)

var (
	ErrProfileNotFound      = errors.New("profile not found")
	ErrProfileAlreadyExists = errors.New("profile already exists for this user")
)

// ProfileSearchCriteria - фильтр каталога участников
type ProfileSearchCriteria struct {
	Query    string
	Page     int
	PageSize int
}

// ProfileRepository определяет операции с профилями участников
type ProfileRepository interface {
	// Create вставляет профиль; при гонке возвращает ErrProfileAlreadyExists
	Create(db *gorm.DB, profile *models.Profile) error

	FindByID(db *gorm.DB, id string) (*models.Profile, error)

	// FindCompletionFields читает только перечисленные колонки
	FindCompletionFields(db *gorm.DB, id string, columns []string) (*models.Profile, error)

	// Update - полное обновление редактируемых полей владельцем
	Update(db *gorm.DB, profile *models.Profile) error

	Exists(db *gorm.DB, id string) (bool, error)

	// List - каталог, отсортированный по имени
	List(db *gorm.DB, criteria ProfileSearchCriteria) ([]models.Profile, int64, error)
}

type profileRepository struct{}

func NewProfileRepository() ProfileRepository {
	return &profileRepository{}
}

func (r *profileRepository) Create(db *gorm.DB, profile *models.Profile) error {
	if err := db.Create(profile).Error; err != nil {
		if database.IsUniqueViolation(err) {
			return ErrProfileAlreadyExists
		}
		return err
	}
	return nil
}

func (r *profileRepository) FindByID(db *gorm.DB, id string) (*models.Profile, error) {
	var profile models.Profile
	if err := db.First(&profile, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) FindCompletionFields(db *gorm.DB, id string, columns []string) (*models.Profile, error) {
	var profile models.Profile
	if err := db.Select(columns).Where("id = ?", id).Take(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

// Update переписывает все редактируемые колонки, включая пустые значения
func (r *profileRepository) Update(db *gorm.DB, profile *models.Profile) error {
	result := db.Model(&models.Profile{}).
		Where("id = ?", profile.ID).
		Select(profileEditableColumns).
		Updates(profile)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProfileNotFound
	}
	return nil
}

var profileEditableColumns = []string{
	"name", "bio", "skills",
	"discord_username", "whatsapp_country_code", "whatsapp_number",
	"linkedin_url", "twitter_url", "github_url", "calendly_url", "photo_url",
	"open_to_collaborate", "open_to_jobs", "hiring_talent",
	"updated_at",
}

func (r *profileRepository) Exists(db *gorm.DB, id string) (bool, error) {
	var count int64
	if err := db.Model(&models.Profile{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *profileRepository) List(db *gorm.DB, criteria ProfileSearchCriteria) ([]models.Profile, int64, error) {
	query := db.Model(&models.Profile{})

	if q := strings.ToLower(strings.TrimSpace(criteria.Query)); q != "" {
		like := "%" + q + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER("+textCast(db, "skills")+") LIKE ?", like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var profiles []models.Profile
	err := query.Order("name ASC").Order("id ASC").
		Scopes(paginate(criteria.Page, criteria.PageSize)).
		Find(&profiles).Error
	return profiles, total, err
}
