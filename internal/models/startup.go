package models

import "gorm.io/datatypes"

type Startup struct {
	BaseModel
	UserID              string                      `gorm:"type:varchar(36);not null;index" json:"user_id"`
	Title               string                      `gorm:"not null" json:"title"`
	Description         string                      `gorm:"not null" json:"description"`
	Tags                datatypes.JSONSlice[string] `json:"tags"`
	WebsiteURL          string                      `gorm:"column:website_url" json:"website_url"`
	PitchDeckURL        string                      `gorm:"column:pitch_deck_url" json:"pitch_deck_url"`
	HiringStatus        HiringStatus                `gorm:"type:varchar(20);default:'not_hiring'" json:"hiring_status"`
	RaisingFunds        bool                        `gorm:"default:false" json:"raising_funds"`
	LookingForCofounder bool                        `gorm:"default:false" json:"looking_for_cofounder"`

	// Relations
	Founder *Profile `gorm:"foreignKey:UserID" json:"founder,omitempty"`
}

func (Startup) TableName() string {
	return "startups"
}
