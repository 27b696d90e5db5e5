package dto

type CreateJobRequest struct {
	Title       string  `json:"title" form:"title" validate:"required,max=200"`
	Description string  `json:"description" form:"description" validate:"required,max=5000"`
	Tags        TagList `json:"tags" form:"tags" validate:"max=20"`
	Location    *string `json:"location" form:"location" validate:"omitempty,max=200"`
	IsRemote    bool    `json:"is_remote" form:"is_remote"`
}
