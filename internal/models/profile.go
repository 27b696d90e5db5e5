package models

import (
	"time"

	"gorm.io/datatypes"
)

// Profile - карточка участника. ID совпадает с id пользователя
// у провайдера аутентификации, поэтому не генерируется.
type Profile struct {
	ID    string `gorm:"type:varchar(36);primaryKey" json:"id"`
	Email string `gorm:"index" json:"email,omitempty"`

	Name   string                      `json:"name"`
	Bio    string                      `json:"bio"`
	Skills datatypes.JSONSlice[string] `json:"skills"`

	DiscordUsername     string `json:"discord_username"`
	WhatsappCountryCode string `json:"whatsapp_country_code"`
	WhatsappNumber      string `json:"whatsapp_number"`

	LinkedinURL string `gorm:"column:linkedin_url" json:"linkedin_url"`
	TwitterURL  string `gorm:"column:twitter_url" json:"twitter_url"`
	GithubURL   string `gorm:"column:github_url" json:"github_url"`
	CalendlyURL string `gorm:"column:calendly_url" json:"calendly_url"`
	PhotoURL    string `gorm:"column:photo_url" json:"photo_url"`

	OpenToCollaborate TriState `json:"open_to_collaborate"`
	OpenToJobs        TriState `json:"open_to_jobs"`
	HiringTalent      TriState `json:"hiring_talent"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Profile) TableName() string {
	return "profiles"
}
