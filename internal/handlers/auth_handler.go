package handlers

import (
	"errors"
	"net/http"
	"net/url"
	"strings"

	"networknode/internal/identity"
	"networknode/internal/logger"
	"networknode/internal/services"
	"networknode/internal/services/dto"
	"networknode/pkg/apperrors"
	"networknode/pkg/contextkeys"

	"github.com/gin-gonic/gin"
)

// callbackPath - адрес, на который провайдер возвращает пользователя после OAuth
const callbackPath = "/auth/callback"

// oauthProviders - поддерживаемые OAuth провайдеры и их параметры авторизации
var oauthProviders = map[string]map[string]string{
	"google": {
		"access_type": "offline",
		"prompt":      "consent",
	},
}

type AuthHandler struct {
	*BaseHandler
	authService services.AuthService
	sessions    *identity.SessionManager
	siteURL     string
}

func NewAuthHandler(base *BaseHandler, authService services.AuthService, sessions *identity.SessionManager, siteURL string) *AuthHandler {
	return &AuthHandler{
		BaseHandler: base,
		authService: authService,
		sessions:    sessions,
		siteURL:     strings.TrimRight(siteURL, "/"),
	}
}

// RegisterRoutes - страницы входа и обратный вызов провайдера
func (h *AuthHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/signup", h.SignUp)
	r.POST("/signin", h.SignIn)
	r.GET("/signin/oauth/:provider", h.SignInWithOAuth)
	r.POST("/signout", h.SignOut)
	r.GET(callbackPath, h.Callback)
}

// RegisterAPIRoutes - JSON API (/api/v1)
func (h *AuthHandler) RegisterAPIRoutes(api *gin.RouterGroup) {
	api.GET("/auth/me", h.Me)
}

// SignUp godoc
// @Summary Регистрация по email и паролю
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.SignUpRequest true "Данные регистрации"
// @Success 201 {object} dto.SignUpResponse
// @Failure 400 {object} apperrors.ErrorResponse
// @Failure 409 {object} apperrors.ErrorResponse
// @Router /signup [post]
func (h *AuthHandler) SignUp(c *gin.Context) {
	var req dto.SignUpRequest
	if !h.BindBody(c, &req) {
		return
	}

	result, err := h.sessions.SignUp(c, req.Email, req.Password, map[string]interface{}{"name": req.Name})
	if err != nil {
		h.HandleServiceError(c, mapIdentityError(err))
		return
	}

	resp := dto.SignUpResponse{RequiresConfirmation: result.Session == nil}
	if result.Session != nil {
		user := result.Session.User
		resp.RedirectTo = h.authService.CompleteSignIn(c.Request.Context(), h.GetDB(c), profileOwner(&user, req.Name), "")
	}

	c.JSON(http.StatusCreated, resp)
}

// SignIn godoc
// @Summary Вход по email и паролю
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.SignInRequest true "Учетные данные"
// @Param redirect query string false "Куда вернуться после входа"
// @Success 200 {object} dto.SignInResponse
// @Failure 401 {object} apperrors.ErrorResponse
// @Router /signin [post]
func (h *AuthHandler) SignIn(c *gin.Context) {
	var req dto.SignInRequest
	if !h.BindBody(c, &req) {
		return
	}

	session, err := h.sessions.SignIn(c, req.Email, req.Password)
	if err != nil {
		h.HandleServiceError(c, mapIdentityError(err))
		return
	}

	user := session.User
	dest := h.authService.CompleteSignIn(c.Request.Context(), h.GetDB(c), profileOwner(&user, ""), c.Query("redirect"))

	c.JSON(http.StatusOK, dto.SignInResponse{RedirectTo: dest})
}

// SignInWithOAuth отправляет пользователя на страницу авторизации провайдера
func (h *AuthHandler) SignInWithOAuth(c *gin.Context) {
	provider := c.Param("provider")
	params, ok := oauthProviders[provider]
	if !ok {
		h.HandleServiceError(c, apperrors.ErrUnsupportedProvider)
		return
	}

	redirectTo := h.siteURL + callbackPath
	if safe, ok := services.SafeRedirect(c.Query("redirect")); ok {
		redirectTo += "?redirect=" + url.QueryEscape(safe)
	}

	authURL, err := h.sessions.BeginOAuth(c, provider, redirectTo, params)
	if err != nil {
		logger.CtxWithError(c.Request.Context(), "failed to start oauth", err, "provider", provider)
		h.HandleServiceError(c, mapIdentityError(err))
		return
	}

	c.Redirect(http.StatusSeeOther, authURL)
}

// Callback завершает OAuth вход: обмен кода, профиль, выбор страницы.
// Все переходы через 303.
func (h *AuthHandler) Callback(c *gin.Context) {
	ctx := c.Request.Context()

	code := c.Query("code")
	if code == "" {
		c.Redirect(http.StatusSeeOther, services.PathRoot)
		return
	}

	session, err := h.sessions.ExchangeCode(c, code)
	if err != nil {
		logger.CtxWarn(ctx, "auth code exchange failed", "error", err)
		c.Redirect(http.StatusSeeOther, services.PathRoot+"?error=auth_failed")
		return
	}

	user := session.User
	dest := h.authService.CompleteSignIn(ctx, h.GetDB(c), profileOwner(&user, ""), c.Query("redirect"))
	c.Redirect(http.StatusSeeOther, dest)
}

// SignOut godoc
// @Summary Выход
// @Tags auth
// @Success 303
// @Router /signout [post]
func (h *AuthHandler) SignOut(c *gin.Context) {
	h.sessions.SignOut(c)
	c.Redirect(http.StatusSeeOther, services.PathRoot)
}

// Me godoc
// @Summary Текущий пользователь
// @Tags auth
// @Produce json
// @Success 200 {object} dto.MeResponse
// @Failure 401 {object} apperrors.ErrorResponse
// @Router /api/v1/auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	status := h.authService.CompletionStatus(c.Request.Context(), userID)
	c.JSON(http.StatusOK, dto.MeResponse{
		ID:         userID,
		Email:      c.GetString(contextkeys.UserEmailKey),
		Name:       c.GetString(contextkeys.UserNameKey),
		Completion: &status,
	})
}

// profileOwner - поля новой строки профиля из пользователя провайдера.
// fallbackName берется из формы регистрации, если в метаданных имени нет.
func profileOwner(u *identity.User, fallbackName string) dto.ProfileOwner {
	name := u.DisplayName()
	if name == "" {
		name = fallbackName
	}
	return dto.ProfileOwner{
		ID:       u.ID,
		Email:    u.Email,
		Name:     name,
		PhotoURL: u.AvatarURL(),
	}
}

// mapIdentityError переводит ошибки провайдера в ошибки API
func mapIdentityError(err error) error {
	var apiErr *identity.APIError
	switch {
	case errors.Is(err, identity.ErrInvalidCredentials):
		return apperrors.ErrInvalidCredentials
	case errors.Is(err, identity.ErrUserExists):
		return apperrors.ErrUserAlreadyRegistered
	case errors.Is(err, identity.ErrInvalidToken):
		return apperrors.ErrInvalidToken
	case errors.Is(err, identity.ErrUnavailable):
		return apperrors.ErrIdentityUnavailable(err)
	case errors.As(err, &apiErr) && apiErr.Status < http.StatusInternalServerError:
		return apperrors.NewBadRequestError(apiErr.Message)
	}
	return apperrors.ErrAuthFailed.WithError(err)
}
