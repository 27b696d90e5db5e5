package identity

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// AccessClaims - claims access токена GoTrue
type AccessClaims struct {
	Email        string                 `json:"email"`
	Role         string                 `json:"role"`
	UserMetadata map[string]interface{} `json:"user_metadata,omitempty"`
	jwt.RegisteredClaims
}

// TokenVerifier проверяет access токены локально по общему секрету проекта,
// без обращения к провайдеру на каждый запрос.
type TokenVerifier struct {
	secret []byte
	parser *jwt.Parser
}

// NewTokenVerifier возвращает nil, если секрет не задан.
// В этом случае SessionManager проверяет токен через Provider.GetUser.
func NewTokenVerifier(secret string) *TokenVerifier {
	if secret == "" {
		return nil
	}
	return &TokenVerifier{
		secret: []byte(secret),
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
			jwt.WithAudience("authenticated"),
			jwt.WithExpirationRequired(),
		),
	}
}

// Verify разбирает токен. Истекший токен дает ErrTokenExpired,
// любая другая проблема ErrInvalidToken.
func (v *TokenVerifier) Verify(tokenString string) (*User, error) {
	claims := &AccessClaims{}
	_, err := v.parser.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return v.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	if claims.Subject == "" {
		return nil, fmt.Errorf("%w: missing subject", ErrInvalidToken)
	}

	return &User{
		ID:           claims.Subject,
		Email:        claims.Email,
		UserMetadata: claims.UserMetadata,
	}, nil
}

// ErrTokenExpired - токен подписан верно, но истек; нужен refresh
var ErrTokenExpired = errors.New("identity: access token expired")
