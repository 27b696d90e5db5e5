package repositories

import (
	"networknode/internal/models"

	"gorm.io/gorm"
)

type JobRepository interface {
	Create(db *gorm.DB, job *models.Job) error
	// List - вакансии, новые сверху
	List(db *gorm.DB, page, pageSize int) ([]models.Job, int64, error)
	Latest(db *gorm.DB, limit int) ([]models.Job, error)
}

type jobRepository struct{}

func NewJobRepository() JobRepository {
	return &jobRepository{}
}

func (r *jobRepository) Create(db *gorm.DB, job *models.Job) error {
	return db.Create(job).Error
}

func (r *jobRepository) List(db *gorm.DB, page, pageSize int) ([]models.Job, int64, error) {
	var total int64
	if err := db.Model(&models.Job{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var jobs []models.Job
	err := db.Preload("Poster").
		Order("created_at DESC").Order("id DESC").
		Scopes(paginate(page, pageSize)).
		Find(&jobs).Error
	return jobs, total, err
}

func (r *jobRepository) Latest(db *gorm.DB, limit int) ([]models.Job, error) {
	var jobs []models.Job
	err := db.Preload("Poster").Order("created_at DESC").Limit(limit).Find(&jobs).Error
	return jobs, err
}
