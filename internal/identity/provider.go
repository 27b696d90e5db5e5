package identity

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrInvalidCredentials - неверный email или пароль
	ErrInvalidCredentials = errors.New("identity: invalid credentials")
	// ErrInvalidToken - токен отклонен провайдером или истек
	ErrInvalidToken = errors.New("identity: invalid or expired token")
	// ErrUserExists - email уже зарегистрирован
	ErrUserExists = errors.New("identity: user already registered")
	// ErrUnavailable - провайдер недоступен (сеть, 5xx)
	ErrUnavailable = errors.New("identity: provider unavailable")
)

// User - пользователь в терминах провайдера аутентификации
type User struct {
	ID           string                 `json:"id"`
	Email        string                 `json:"email"`
	UserMetadata map[string]interface{} `json:"user_metadata,omitempty"`
}

// DisplayName - имя из метаданных регистрации или OAuth-профиля
func (u *User) DisplayName() string {
	if u == nil {
		return ""
	}
	for _, key := range []string{"name", "full_name", "user_name"} {
		if v, ok := u.UserMetadata[key].(string); ok && v != "" {
			return v
		}
	}
	return ""
}

// AvatarURL - фото из OAuth-профиля (google кладет его в picture)
func (u *User) AvatarURL() string {
	if u == nil {
		return ""
	}
	for _, key := range []string{"avatar_url", "picture"} {
		if v, ok := u.UserMetadata[key].(string); ok && v != "" {
			return v
		}
	}
	return ""
}

// Session - пара токенов, выданная провайдером
type Session struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int    `json:"expires_in"`
	ExpiresAt    int64  `json:"expires_at"`
	User         User   `json:"user"`
}

// SignUpResult - результат регистрации. Session == nil, если провайдер
// требует подтверждения email.
type SignUpResult struct {
	User    User
	Session *Session
}

// OAuthRequest - параметры запуска OAuth-входа
type OAuthRequest struct {
	Provider      string
	RedirectTo    string
	CodeChallenge string
	QueryParams   map[string]string
}

// Provider - контракт провайдера аутентификации
type Provider interface {
	GetUser(ctx context.Context, accessToken string) (*User, error)
	SignInWithPassword(ctx context.Context, email, password string) (*Session, error)
	SignUp(ctx context.Context, email, password string, metadata map[string]interface{}) (*SignUpResult, error)
	AuthorizeURL(req OAuthRequest) (string, error)
	ExchangeCodeForSession(ctx context.Context, code, codeVerifier string) (*Session, error)
	RefreshSession(ctx context.Context, refreshToken string) (*Session, error)
	SignOut(ctx context.Context, accessToken string) error
}

// APIError - ошибка, которую вернул провайдер
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("identity: %d %s: %s", e.Status, e.Code, e.Message)
	}
	return fmt.Sprintf("identity: %d: %s", e.Status, e.Message)
}
