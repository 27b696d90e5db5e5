package handlers

import (
	"net/http"

	"networknode/internal/services"
	"networknode/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type MeetingHandler struct {
	*BaseHandler
	meetingService services.MeetingService
}

func NewMeetingHandler(base *BaseHandler, meetingService services.MeetingService) *MeetingHandler {
	return &MeetingHandler{
		BaseHandler:    base,
		meetingService: meetingService,
	}
}

func (h *MeetingHandler) RegisterRoutes(dashboard *gin.RouterGroup) {
	meetings := dashboard.Group("/meetings")
	{
		meetings.GET("", h.ListMeetingRequests)
		meetings.POST("", h.CreateMeetingRequest)
	}
}

// CreateMeetingRequest godoc
// @Summary Запросить встречу
// @Description Получатель уведомляется по email (best-effort)
// @Tags meetings
// @Accept json
// @Produce json
// @Param request body dto.CreateMeetingRequest true "Запрос"
// @Success 201 {object} models.MeetingRequest
// @Failure 400 {object} apperrors.ErrorResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /dashboard/meetings [post]
func (h *MeetingHandler) CreateMeetingRequest(c *gin.Context) {
	var req dto.CreateMeetingRequest
	if !h.BindBody(c, &req) {
		return
	}

	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	meeting, err := h.meetingService.CreateMeetingRequest(c.Request.Context(), h.GetDB(c), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, meeting)
}

// ListMeetingRequests godoc
// @Summary Отправленные и полученные запросы на встречу
// @Tags meetings
// @Produce json
// @Success 200 {object} dto.MeetingListResponse
// @Router /dashboard/meetings [get]
func (h *MeetingHandler) ListMeetingRequests(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	resp, err := h.meetingService.ListMeetingRequests(h.GetDB(c), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
