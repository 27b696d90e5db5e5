package apperrors

import (
	"log/slog"
	"net/http"
	"sync/atomic"

	"github.com/gin-gonic/gin"
)

// ErrorResponse - тело любого ответа об ошибке: {"error": {...}}
type ErrorResponse struct {
	Error *AppError `json:"error"`
}

// debugErrors разрешает отдавать детали 5xx ошибок клиенту
var debugErrors atomic.Bool

// SetDebug включается только в development
func SetDebug(debug bool) {
	debugErrors.Store(debug)
}

// HandleError прерывает цепочку gin и пишет ошибку в ответ
func HandleError(c *gin.Context, err error) {
	appErr, ok := AsAppError(err)
	if !ok {
		appErr = InternalError(err)
	}

	if appErr.HTTPCode >= http.StatusInternalServerError {
		slog.ErrorContext(c.Request.Context(), "server error", "code", appErr.Code, "error", err)
		if !debugErrors.Load() {
			appErr = appErr.WithDetails(nil)
		}
	}

	c.AbortWithStatusJSON(appErr.HTTPCode, ErrorResponse{Error: appErr})
}
