package dto

import "networknode/internal/models"

type CreateMeetingRequest struct {
	RecipientID string  `json:"recipient_id" form:"recipient_id" validate:"required,max=36"`
	JobID       *string `json:"job_id" form:"job_id" validate:"omitempty,max=36"`
	StartupID   *string `json:"startup_id" form:"startup_id" validate:"omitempty,max=36"`
	Message     *string `json:"message" form:"message" validate:"omitempty,max=2000"`
	MeetingType string  `json:"meeting_type" form:"meeting_type" validate:"required,meeting-type"`
	Location    *string `json:"location" form:"location" validate:"omitempty,max=200"`
}

// MeetingListResponse - запросы на встречу пользователя
type MeetingListResponse struct {
	Sent     []models.MeetingRequest `json:"sent"`
	Received []models.MeetingRequest `json:"received"`
}
