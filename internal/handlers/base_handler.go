package handlers

import (
	"net/http"

	"networknode/internal/logger"
	"networknode/internal/validator"
	"networknode/pkg/apperrors"
	"networknode/pkg/contextkeys"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// BaseHandler - общие помощники для всех хендлеров: база из запроса,
// разбор тела и query, ответы об ошибках, текущий участник.
type BaseHandler struct {
	validator *validator.Validator
}

func NewBaseHandler(v *validator.Validator) *BaseHandler {
	return &BaseHandler{validator: v}
}

// GetDB возвращает *gorm.DB, который положил DBMiddleware.
// Отсутствие ключа - ошибка сборки роутера, а не запроса.
func (h *BaseHandler) GetDB(c *gin.Context) *gorm.DB {
	db, ok := c.MustGet(string(contextkeys.DBContextKey)).(*gorm.DB)
	if !ok {
		panic("handlers: DBMiddleware stored a value that is not *gorm.DB")
	}
	return db
}

// BindBody разбирает тело запроса. Формы страниц и JSON клиентов
// идут через один путь: gin выбирает биндер по Content-Type.
func (h *BaseHandler) BindBody(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBind(obj); err != nil {
		logger.CtxWarn(c.Request.Context(), "malformed request body", "path", c.FullPath(), "error", err.Error())
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid request body"))
		return false
	}
	return h.validate(c, obj)
}

func (h *BaseHandler) BindQuery(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindQuery(obj); err != nil {
		logger.CtxWarn(c.Request.Context(), "malformed query", "path", c.FullPath(), "error", err.Error())
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid query parameters"))
		return false
	}
	return h.validate(c, obj)
}

func (h *BaseHandler) validate(c *gin.Context, obj interface{}) bool {
	err := h.validator.Validate(obj)
	if err == nil {
		return true
	}

	var vErr *validator.ValidationError
	if apperrors.As(err, &vErr) {
		apperrors.HandleError(c, apperrors.ValidationError(vErr.Errors))
	} else {
		apperrors.HandleError(c, apperrors.InternalError(err))
	}
	return false
}

// HandleServiceError отдает ошибку сервиса клиенту. Неизвестные ошибки становятся 500.
func (h *BaseHandler) HandleServiceError(c *gin.Context, err error) {
	appErr, ok := apperrors.AsAppError(err)
	if !ok {
		appErr = apperrors.InternalError(err)
	}

	if appErr.HTTPCode >= http.StatusInternalServerError {
		logger.CtxWithError(c.Request.Context(), "request failed", err, "path", c.FullPath())
	} else {
		logger.CtxInfo(c.Request.Context(), "request refused",
			"code", appErr.Code,
			"path", c.FullPath(),
		)
	}
	apperrors.HandleError(c, appErr)
}

// CurrentUserID - ID участника, выставленный RouteGuard.
// На защищенных маршрутах пустое значение не ожидается, но ответ все равно 401.
func (h *BaseHandler) CurrentUserID(c *gin.Context) (string, bool) {
	if userID := c.GetString(contextkeys.UserIDKey); userID != "" {
		return userID, true
	}
	logger.CtxWarn(c.Request.Context(), "no member in context", "path", c.FullPath())
	apperrors.HandleError(c, apperrors.NewUnauthorizedError("User not authenticated"))
	return "", false
}

// pageQuery - параметры постраничного вывода досок
type pageQuery struct {
	Page     int `form:"page"`
	PageSize int `form:"page_size"`
}

// ParsePagination читает page/page_size. Мусор в параметрах не ошибка:
// используются значения по умолчанию, а границы проверяет сервис.
func ParsePagination(c *gin.Context) (page int, pageSize int) {
	var q pageQuery
	_ = c.ShouldBindQuery(&q)
	return q.Page, q.PageSize
}
