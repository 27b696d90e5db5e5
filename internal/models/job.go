package models

import "gorm.io/datatypes"

type Job struct {
	BaseModel
	UserID      string                      `gorm:"type:varchar(36);not null;index" json:"user_id"`
	Title       string                      `gorm:"not null" json:"title"`
	Description string                      `gorm:"not null" json:"description"`
	Tags        datatypes.JSONSlice[string] `json:"tags"`
	Location    *string                     `json:"location"`
	IsRemote    bool                        `gorm:"default:false" json:"is_remote"`

	// Relations
	Poster *Profile `gorm:"foreignKey:UserID" json:"poster,omitempty"`
}

func (Job) TableName() string {
	return "jobs"
}
