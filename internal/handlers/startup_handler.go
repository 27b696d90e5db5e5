package handlers

import (
	"net/http"

	"networknode/internal/services"
	"networknode/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type StartupHandler struct {
	*BaseHandler
	startupService services.StartupService
}

func NewStartupHandler(base *BaseHandler, startupService services.StartupService) *StartupHandler {
	return &StartupHandler{
		BaseHandler:    base,
		startupService: startupService,
	}
}

func (h *StartupHandler) RegisterRoutes(dashboard *gin.RouterGroup) {
	startups := dashboard.Group("/startups")
	{
		startups.GET("", h.ListStartups)
		startups.POST("/new", h.CreateStartup)
		startups.GET("/:id/edit", h.GetStartupForEdit)
		startups.PUT("/:id/edit", h.UpdateStartup)
	}
}

// ListStartups godoc
// @Summary Стартапы, новые первыми
// @Tags startups
// @Produce json
// @Success 200 {object} dto.PaginatedResponse
// @Router /dashboard/startups [get]
func (h *StartupHandler) ListStartups(c *gin.Context) {
	page, pageSize := ParsePagination(c)

	resp, err := h.startupService.ListStartups(h.GetDB(c), page, pageSize)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// CreateStartup godoc
// @Summary Добавить стартап
// @Tags startups
// @Accept json
// @Produce json
// @Param request body dto.StartupRequest true "Стартап"
// @Success 201 {object} models.Startup
// @Failure 400 {object} apperrors.ErrorResponse
// @Router /dashboard/startups/new [post]
func (h *StartupHandler) CreateStartup(c *gin.Context) {
	var req dto.StartupRequest
	if !h.BindBody(c, &req) {
		return
	}

	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	startup, err := h.startupService.CreateStartup(h.GetDB(c), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, startup)
}

// GetStartupForEdit отдает стартап владельцу; чужой и несуществующий дают одинаковый 404
func (h *StartupHandler) GetStartupForEdit(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	startup, err := h.startupService.GetForEdit(h.GetDB(c), c.Param("id"), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, startup)
}

// UpdateStartup godoc
// @Summary Редактировать свой стартап
// @Tags startups
// @Accept json
// @Produce json
// @Param id path string true "ID стартапа"
// @Param request body dto.StartupRequest true "Стартап"
// @Success 200 {object} models.Startup
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /dashboard/startups/{id}/edit [put]
func (h *StartupHandler) UpdateStartup(c *gin.Context) {
	var req dto.StartupRequest
	if !h.BindBody(c, &req) {
		return
	}

	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	startup, err := h.startupService.UpdateStartup(h.GetDB(c), c.Param("id"), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, startup)
}
