package middleware

import (
	"net/http"

	"networknode/internal/completion"
	"networknode/pkg/apperrors"
	"networknode/pkg/contextkeys"

	"github.com/gin-gonic/gin"
)

// ProfileGate не пускает пользователя с незаполненным профилем дальше
// страницы профиля. Ставится на группу /dashboard после RouteGuard.
// Результат проверки кладется в контекст (contextkeys.CompletionKey).
func ProfileGate(checker completion.Checker) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := GetUserID(c)
		reqPath := c.Request.URL.Path

		var status *completion.Status
		if userID != "" {
			s := checker.Check(c.Request.Context(), userID)
			status = &s
			c.Set(contextkeys.CompletionKey, s)
		}

		if !completion.NextState(reqPath, userID, status).Blocks() {
			c.Next()
			return
		}

		if IsAPIRequest(c) {
			apperrors.HandleError(c, apperrors.ProfileIncomplete(status.MissingFields))
			return
		}
		c.Redirect(http.StatusSeeOther, completion.ProfilePath)
		c.Abort()
	}
}
