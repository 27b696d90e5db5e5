package repositories

import (
	"networknode/internal/models"

	"gorm.io/gorm"
)

type MeetingRepository interface {
	Create(db *gorm.DB, req *models.MeetingRequest) error
	// ListSent - запросы, отправленные пользователем, новые сверху
	ListSent(db *gorm.DB, userID string) ([]models.MeetingRequest, error)
	// ListReceived - запросы, адресованные пользователю
	ListReceived(db *gorm.DB, userID string) ([]models.MeetingRequest, error)
}

type meetingRepository struct{}

func NewMeetingRepository() MeetingRepository {
	return &meetingRepository{}
}

func (r *meetingRepository) Create(db *gorm.DB, req *models.MeetingRequest) error {
	return db.Create(req).Error
}

func (r *meetingRepository) ListSent(db *gorm.DB, userID string) ([]models.MeetingRequest, error) {
	var requests []models.MeetingRequest
	err := db.Preload("Recipient").
		Where("requester_id = ?", userID).
		Order("created_at DESC").
		Find(&requests).Error
	return requests, err
}

func (r *meetingRepository) ListReceived(db *gorm.DB, userID string) ([]models.MeetingRequest, error) {
	var requests []models.MeetingRequest
	err := db.Preload("Requester").
		Where("recipient_id = ?", userID).
		Order("created_at DESC").
		Find(&requests).Error
	return requests, err
}
