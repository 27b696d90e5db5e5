package dto

// StartupRequest - создание и редактирование стартапа
type StartupRequest struct {
	Title               string  `json:"title" form:"title" validate:"required,max=200"`
	Description         string  `json:"description" form:"description" validate:"required,max-words=35"`
	Tags                TagList `json:"tags" form:"tags" validate:"max=20"`
	WebsiteURL          string  `json:"website_url" form:"website_url" validate:"omitempty,url,max=500"`
	PitchDeckURL        string  `json:"pitch_deck_url" form:"pitch_deck_url" validate:"omitempty,url,max=500"`
	HiringStatus        string  `json:"hiring_status" form:"hiring_status" validate:"omitempty,hiring-status"`
	RaisingFunds        bool    `json:"raising_funds" form:"raising_funds"`
	LookingForCofounder bool    `json:"looking_for_cofounder" form:"looking_for_cofounder"`
}

// MaxStartupDescriptionWords - лимит слов в описании стартапа
const MaxStartupDescriptionWords = 35
