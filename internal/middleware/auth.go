package middleware

import (
	"net/http"
	"net/url"
	"path"
	"strings"

	"networknode/internal/identity"
	"networknode/internal/logger"
	"networknode/pkg/apperrors"
	"networknode/pkg/contextkeys"

	"github.com/gin-gonic/gin"
)

const (
	protectedPrefix = "/dashboard"
	signInPath      = "/signin"
	signUpPath      = "/signup"
)

// guardExcludedPrefixes - пути, на которых сессия не определяется вовсе
var guardExcludedPrefixes = []string{
	"/auth/callback",
	"/static/",
	"/swagger/",
	"/healthz",
}

var assetExtensions = map[string]struct{}{
	".svg": {}, ".png": {}, ".jpg": {}, ".jpeg": {}, ".gif": {}, ".webp": {}, ".ico": {},
}

// RouteGuard определяет пользователя по cookie на каждом запросе.
//
//   - /dashboard без пользователя: 303 на /signin?redirect=<путь>, для API 401
//   - /signin и /signup с пользователем: 303 на /dashboard
//   - ошибка провайдера: warning в лог, запрос идет как анонимный
//
// Обновленные cookie сессии пишет SessionManager до вызова хендлера.
func RouteGuard(sessions *identity.SessionManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		reqPath := c.Request.URL.Path
		if isGuardExcluded(reqPath) {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		user, err := sessions.CurrentUser(c)
		if err != nil {
			logger.CtxWarn(ctx, "identity provider unavailable, treating request as anonymous",
				"path", reqPath, "error", err)
			user = nil
		}

		if user != nil {
			c.Set(contextkeys.UserIDKey, user.ID)
			c.Set(contextkeys.UserEmailKey, user.Email)
			c.Set(contextkeys.UserNameKey, user.DisplayName())
			c.Set(contextkeys.UserPhotoKey, user.AvatarURL())
			c.Request = c.Request.WithContext(logger.WithUserID(ctx, user.ID))
		}

		switch {
		case user == nil && isProtected(reqPath):
			if IsAPIRequest(c) {
				apperrors.HandleError(c, apperrors.NewUnauthorizedError("User not authenticated"))
				return
			}
			c.Redirect(http.StatusSeeOther, signInPath+"?redirect="+url.QueryEscape(c.Request.URL.RequestURI()))
			c.Abort()
			return

		case user != nil && (reqPath == signInPath || reqPath == signUpPath):
			c.Redirect(http.StatusSeeOther, protectedPrefix)
			c.Abort()
			return
		}

		c.Next()
	}
}

func isProtected(p string) bool {
	return p == protectedPrefix || strings.HasPrefix(p, protectedPrefix+"/")
}

func isGuardExcluded(p string) bool {
	for _, prefix := range guardExcludedPrefixes {
		if strings.HasPrefix(p, prefix) {
			return true
		}
	}
	_, asset := assetExtensions[strings.ToLower(path.Ext(p))]
	return asset
}

// GetUserID извлекает ID пользователя из контекста
func GetUserID(c *gin.Context) string {
	return c.GetString(contextkeys.UserIDKey)
}
