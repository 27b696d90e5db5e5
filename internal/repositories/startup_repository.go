package repositories

import (
	"errors"

	"networknode/internal/models"

	"gorm.io/gorm"
)

// ErrStartupNotFound - стартапа нет или он принадлежит другому пользователю
var ErrStartupNotFound = errors.New("startup not found")

type StartupRepository interface {
	Create(db *gorm.DB, startup *models.Startup) error
	FindByID(db *gorm.DB, id string) (*models.Startup, error)
	// FindOwned ищет по id и владельцу одновременно
	FindOwned(db *gorm.DB, id, userID string) (*models.Startup, error)
	// UpdateOwned обновляет только строку владельца; иначе ErrStartupNotFound
	UpdateOwned(db *gorm.DB, startup *models.Startup) error
	List(db *gorm.DB, page, pageSize int) ([]models.Startup, int64, error)
	Latest(db *gorm.DB, limit int) ([]models.Startup, error)
}

type startupRepository struct{}

func NewStartupRepository() StartupRepository {
	return &startupRepository{}
}

func (r *startupRepository) Create(db *gorm.DB, startup *models.Startup) error {
	return db.Create(startup).Error
}

func (r *startupRepository) FindByID(db *gorm.DB, id string) (*models.Startup, error) {
	var startup models.Startup
	if err := db.Preload("Founder").First(&startup, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStartupNotFound
		}
		return nil, err
	}
	return &startup, nil
}

func (r *startupRepository) FindOwned(db *gorm.DB, id, userID string) (*models.Startup, error) {
	var startup models.Startup
	if err := db.Where("id = ? AND user_id = ?", id, userID).First(&startup).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStartupNotFound
		}
		return nil, err
	}
	return &startup, nil
}

var startupEditableColumns = []string{
	"title", "description", "tags", "website_url", "pitch_deck_url",
	"hiring_status", "raising_funds", "looking_for_cofounder", "updated_at",
}

func (r *startupRepository) UpdateOwned(db *gorm.DB, startup *models.Startup) error {
	result := db.Model(&models.Startup{}).
		Where("id = ? AND user_id = ?", startup.ID, startup.UserID).
		Select(startupEditableColumns).
		Updates(startup)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrStartupNotFound
	}
	return nil
}

func (r *startupRepository) List(db *gorm.DB, page, pageSize int) ([]models.Startup, int64, error) {
	var total int64
	if err := db.Model(&models.Startup{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var startups []models.Startup
	err := db.Preload("Founder").
		Order("created_at DESC").Order("id DESC").
		Scopes(paginate(page, pageSize)).
		Find(&startups).Error
	return startups, total, err
}

func (r *startupRepository) Latest(db *gorm.DB, limit int) ([]models.Startup, error) {
	var startups []models.Startup
	err := db.Preload("Founder").Order("created_at DESC").Limit(limit).Find(&startups).Error
	return startups, err
}
