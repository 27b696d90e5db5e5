package dto

import (
	"time"

	"networknode/internal/completion"
	"networknode/internal/models"
)

// ProfileOwner - данные сессии, которыми заполняется новая строка профиля
type ProfileOwner struct {
	ID       string
	Email    string
	Name     string
	PhotoURL string
}

// UpdateProfileRequest - полное обновление профиля владельцем.
// profile-required срабатывает только для полей из RequiredProfileFields.
type UpdateProfileRequest struct {
	Name   string   `json:"name" form:"name" validate:"profile-required,max=100"`
	Bio    string   `json:"bio" form:"bio" validate:"profile-required,max=1000"`
	Skills []string `json:"skills" form:"skills" validate:"profile-required,max=30,dive,max=50"`

	DiscordUsername     string `json:"discord_username" form:"discord_username" validate:"profile-required,max=100"`
	WhatsappCountryCode string `json:"whatsapp_country_code" form:"whatsapp_country_code" validate:"profile-required,max=8"`
	WhatsappNumber      string `json:"whatsapp_number" form:"whatsapp_number" validate:"profile-required,max=32"`

	LinkedinURL string `json:"linkedin_url" form:"linkedin_url" validate:"omitempty,url,max=500"`
	TwitterURL  string `json:"twitter_url" form:"twitter_url" validate:"omitempty,url,max=500"`
	GithubURL   string `json:"github_url" form:"github_url" validate:"omitempty,url,max=500"`
	CalendlyURL string `json:"calendly_url" form:"calendly_url" validate:"omitempty,url,max=500"`
	PhotoURL    string `json:"photo_url" form:"photo_url" validate:"omitempty,url,max=500"`

	OpenToCollaborate models.TriState `json:"open_to_collaborate" validate:"profile-required"`
	OpenToJobs        models.TriState `json:"open_to_jobs" validate:"profile-required"`
	HiringTalent      models.TriState `json:"hiring_talent" validate:"profile-required"`
}

// OwnProfileResponse - свой профиль вместе со статусом заполненности
type OwnProfileResponse struct {
	Profile    *models.Profile   `json:"profile"`
	Completion completion.Status `json:"completion"`
}

// MemberResponse - карточка участника в каталоге (без email)
type MemberResponse struct {
	ID                  string          `json:"id"`
	Name                string          `json:"name"`
	Bio                 string          `json:"bio"`
	Skills              []string        `json:"skills"`
	DiscordUsername     string          `json:"discord_username"`
	WhatsappCountryCode string          `json:"whatsapp_country_code"`
	WhatsappNumber      string          `json:"whatsapp_number"`
	LinkedinURL         string          `json:"linkedin_url,omitempty"`
	TwitterURL          string          `json:"twitter_url,omitempty"`
	GithubURL           string          `json:"github_url,omitempty"`
	CalendlyURL         string          `json:"calendly_url,omitempty"`
	PhotoURL            string          `json:"photo_url,omitempty"`
	OpenToCollaborate   models.TriState `json:"open_to_collaborate"`
	OpenToJobs          models.TriState `json:"open_to_jobs"`
	HiringTalent        models.TriState `json:"hiring_talent"`
	JoinedAt            time.Time       `json:"joined_at"`
}

func NewMemberResponse(p *models.Profile) *MemberResponse {
	skills := []string(p.Skills)
	if skills == nil {
		skills = []string{}
	}
	return &MemberResponse{
		ID:                  p.ID,
		Name:                p.Name,
		Bio:                 p.Bio,
		Skills:              skills,
		DiscordUsername:     p.DiscordUsername,
		WhatsappCountryCode: p.WhatsappCountryCode,
		WhatsappNumber:      p.WhatsappNumber,
		LinkedinURL:         p.LinkedinURL,
		TwitterURL:          p.TwitterURL,
		GithubURL:           p.GithubURL,
		CalendlyURL:         p.CalendlyURL,
		PhotoURL:            p.PhotoURL,
		OpenToCollaborate:   p.OpenToCollaborate,
		OpenToJobs:          p.OpenToJobs,
		HiringTalent:        p.HiringTalent,
		JoinedAt:            p.CreatedAt,
	}
}

// ListMembersRequest - параметры каталога
type ListMembersRequest struct {
	Query    string `form:"q" json:"q" validate:"max=100"`
	Page     int    `form:"page" json:"page" validate:"omitempty,min=1"`
	PageSize int    `form:"page_size" json:"page_size" validate:"omitempty,min=1,max=100"`
}
