package identity

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"net/http"
	"strings"

	"networknode/internal/logger"

	"github.com/gin-gonic/gin"
)

const (
	AccessTokenCookie  = "nn-access-token"
	RefreshTokenCookie = "nn-refresh-token"
	CodeVerifierCookie = "nn-code-verifier"

	sessionCookieMaxAge  = 60 * 60 * 24 * 30 // refresh token живет дольше access токена
	verifierCookieMaxAge = 60 * 10
)

// SessionOptions - параметры cookie
type SessionOptions struct {
	Secure bool
	Domain string
}

// SessionManager - единственное место, где живет логика cookie сессии.
// Создается при старте приложения и передается в хендлеры и middleware.
type SessionManager struct {
	provider Provider
	verifier *TokenVerifier
	opts     SessionOptions
}

func NewSessionManager(provider Provider, verifier *TokenVerifier, opts SessionOptions) *SessionManager {
	return &SessionManager{
		provider: provider,
		verifier: verifier,
		opts:     opts,
	}
}

// CurrentUser определяет пользователя по cookie запроса.
// (nil, nil) - сессии нет. Если access токен истек, сессия обновляется
// по refresh токену и новые cookie пишутся в ответ до вызова хендлера.
// Ошибка возвращается только при недоступности провайдера.
func (m *SessionManager) CurrentUser(c *gin.Context) (*User, error) {
	ctx := c.Request.Context()
	accessToken, _ := c.Cookie(AccessTokenCookie)
	refreshToken, _ := c.Cookie(RefreshTokenCookie)

	if accessToken == "" && refreshToken == "" {
		return nil, nil
	}

	if accessToken != "" {
		user, err := m.resolve(ctx, accessToken)
		switch {
		case err == nil:
			return user, nil
		case errors.Is(err, ErrUnavailable):
			return nil, err
		}
	}

	if refreshToken == "" {
		m.ClearSession(c)
		return nil, nil
	}

	session, err := m.provider.RefreshSession(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, ErrUnavailable) {
			return nil, err
		}
		logger.CtxInfo(ctx, "session refresh rejected, clearing cookies")
		m.ClearSession(c)
		return nil, nil
	}

	m.SetSession(c, session)
	return &session.User, nil
}

func (m *SessionManager) resolve(ctx context.Context, accessToken string) (*User, error) {
	if m.verifier != nil {
		user, err := m.verifier.Verify(accessToken)
		if err == nil {
			return user, nil
		}
		return nil, err
	}
	return m.provider.GetUser(ctx, accessToken)
}

// SetSession пишет cookie сессии
func (m *SessionManager) SetSession(c *gin.Context, s *Session) {
	if s == nil {
		return
	}
	m.setCookie(c, AccessTokenCookie, s.AccessToken, sessionCookieMaxAge)
	m.setCookie(c, RefreshTokenCookie, s.RefreshToken, sessionCookieMaxAge)
}

// ClearSession удаляет cookie сессии
func (m *SessionManager) ClearSession(c *gin.Context) {
	m.setCookie(c, AccessTokenCookie, "", -1)
	m.setCookie(c, RefreshTokenCookie, "", -1)
}

func (m *SessionManager) setCookie(c *gin.Context, name, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(name, value, maxAge, "/", m.opts.Domain, m.opts.Secure, true)
}

// SignIn - вход по паролю; при успехе пишет cookie
func (m *SessionManager) SignIn(c *gin.Context, email, password string) (*Session, error) {
	session, err := m.provider.SignInWithPassword(c.Request.Context(), email, password)
	if err != nil {
		return nil, err
	}
	m.SetSession(c, session)
	return session, nil
}

// SignUp - регистрация; cookie пишутся только если провайдер сразу выдал сессию
func (m *SessionManager) SignUp(c *gin.Context, email, password string, metadata map[string]interface{}) (*SignUpResult, error) {
	result, err := m.provider.SignUp(c.Request.Context(), email, password, metadata)
	if err != nil {
		return nil, err
	}
	if result.Session != nil {
		m.SetSession(c, result.Session)
	}
	return result, nil
}

// BeginOAuth генерирует PKCE verifier, сохраняет его в cookie
// и возвращает адрес страницы авторизации провайдера.
func (m *SessionManager) BeginOAuth(c *gin.Context, provider, redirectTo string, queryParams map[string]string) (string, error) {
	verifier, err := newCodeVerifier()
	if err != nil {
		return "", err
	}

	authURL, err := m.provider.AuthorizeURL(OAuthRequest{
		Provider:      provider,
		RedirectTo:    redirectTo,
		CodeChallenge: codeChallenge(verifier),
		QueryParams:   queryParams,
	})
	if err != nil {
		return "", err
	}

	m.setCookie(c, CodeVerifierCookie, verifier, verifierCookieMaxAge)
	return authURL, nil
}

// ExchangeCode меняет код авторизации на сессию и пишет cookie.
// Вызывающий код не должен сам работать с cookie.
func (m *SessionManager) ExchangeCode(c *gin.Context, code string) (*Session, error) {
	verifier, _ := c.Cookie(CodeVerifierCookie)

	session, err := m.provider.ExchangeCodeForSession(c.Request.Context(), code, verifier)
	if err != nil {
		return nil, err
	}

	m.setCookie(c, CodeVerifierCookie, "", -1)
	m.SetSession(c, session)
	return session, nil
}

// SignOut завершает сессию у провайдера (best-effort) и очищает cookie
func (m *SessionManager) SignOut(c *gin.Context) {
	ctx := c.Request.Context()
	if accessToken, _ := c.Cookie(AccessTokenCookie); accessToken != "" {
		if err := m.provider.SignOut(ctx, accessToken); err != nil {
			logger.CtxWarn(ctx, "provider sign out failed", "error", err)
		}
	}
	m.ClearSession(c)
}

func newCodeVerifier() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

func codeChallenge(verifier string) string {
	sum := sha256.Sum256([]byte(verifier))
	return strings.TrimRight(base64.RawURLEncoding.EncodeToString(sum[:]), "=")
}
