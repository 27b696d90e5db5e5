package models

type MeetingRequest struct {
	BaseModel
	RequesterID string        `gorm:"type:varchar(36);not null;index" json:"requester_id"`
	RecipientID string        `gorm:"type:varchar(36);not null;index" json:"recipient_id"`
	JobID       *string       `gorm:"type:varchar(36)" json:"job_id"`
	StartupID   *string       `gorm:"type:varchar(36)" json:"startup_id"`
	Message     *string       `json:"message"`
	MeetingType MeetingType   `gorm:"type:varchar(20);not null" json:"meeting_type"`
	Location    *string       `json:"location"`
	Status      MeetingStatus `gorm:"type:varchar(20);default:'pending'" json:"status"`

	// Relations
	Requester *Profile `gorm:"foreignKey:RequesterID" json:"requester,omitempty"`
	Recipient *Profile `gorm:"foreignKey:RecipientID" json:"recipient,omitempty"`
}

func (MeetingRequest) TableName() string {
	return "meeting_requests"
}
