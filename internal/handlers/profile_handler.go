package handlers

import (
	"net/http"

	"networknode/internal/services"
	"networknode/internal/services/dto"
	"networknode/pkg/contextkeys"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	*BaseHandler
	profileService services.ProfileService
}

func NewProfileHandler(base *BaseHandler, profileService services.ProfileService) *ProfileHandler {
	return &ProfileHandler{
		BaseHandler:    base,
		profileService: profileService,
	}
}

// RegisterRoutes ожидает группу /dashboard
func (h *ProfileHandler) RegisterRoutes(dashboard *gin.RouterGroup) {
	dashboard.GET("/profile", h.GetMyProfile)
	dashboard.PUT("/profile", h.UpdateMyProfile)

	members := dashboard.Group("/members")
	{
		members.GET("", h.ListMembers)
		members.GET("/:id", h.GetMember)
	}
}

// GetMyProfile godoc
// @Summary Свой профиль
// @Description Профиль текущего пользователя и список незаполненных обязательных полей
// @Tags profiles
// @Produce json
// @Success 200 {object} dto.OwnProfileResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /dashboard/profile [get]
func (h *ProfileHandler) GetMyProfile(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	resp, err := h.profileService.GetOwnProfile(h.GetDB(c), sessionOwner(c, userID))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// UpdateMyProfile godoc
// @Summary Обновить свой профиль
// @Tags profiles
// @Accept json
// @Produce json
// @Param request body dto.UpdateProfileRequest true "Профиль"
// @Success 200 {object} dto.OwnProfileResponse
// @Failure 400 {object} apperrors.ErrorResponse
// @Router /dashboard/profile [put]
func (h *ProfileHandler) UpdateMyProfile(c *gin.Context) {
	var req dto.UpdateProfileRequest
	if !h.BindBody(c, &req) {
		return
	}

	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	resp, err := h.profileService.UpdateProfile(h.GetDB(c), sessionOwner(c, userID), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ListMembers godoc
// @Summary Каталог участников
// @Tags profiles
// @Produce json
// @Param q query string false "Поиск по имени или навыку"
// @Param page query int false "Страница"
// @Param page_size query int false "Размер страницы"
// @Success 200 {object} dto.PaginatedResponse
// @Router /dashboard/members [get]
func (h *ProfileHandler) ListMembers(c *gin.Context) {
	var req dto.ListMembersRequest
	if !h.BindQuery(c, &req) {
		return
	}

	resp, err := h.profileService.ListMembers(h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *ProfileHandler) GetMember(c *gin.Context) {
	resp, err := h.profileService.GetMember(h.GetDB(c), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// sessionOwner собирает данные сессии, которые выставил RouteGuard
func sessionOwner(c *gin.Context, userID string) dto.ProfileOwner {
	return dto.ProfileOwner{
		ID:       userID,
		Email:    c.GetString(contextkeys.UserEmailKey),
		Name:     c.GetString(contextkeys.UserNameKey),
		PhotoURL: c.GetString(contextkeys.UserPhotoKey),
	}
}
