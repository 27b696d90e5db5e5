package dto

import "networknode/internal/completion"

// SignUpRequest - регистрация по email и паролю
type SignUpRequest struct {
	Email    string `json:"email" form:"email" validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required,min=6,max=72"`
	Name     string `json:"name" form:"name" validate:"required,max=100"`
}

type SignUpResponse struct {
	RequiresConfirmation bool   `json:"requires_confirmation"`
	RedirectTo           string `json:"redirect_to,omitempty"`
}

// SignInRequest - вход по email и паролю
type SignInRequest struct {
	Email    string `json:"email" form:"email" validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required"`
}

type SignInResponse struct {
	RedirectTo string `json:"redirect_to"`
}

// MeResponse - текущий пользователь сессии
type MeResponse struct {
	ID         string             `json:"id"`
	Email      string             `json:"email"`
	Name       string             `json:"name,omitempty"`
	Completion *completion.Status `json:"completion,omitempty"`
}
