package services

import (
	"context"
	"net/url"
	"strings"

	"networknode/internal/completion"
	"networknode/internal/logger"
	"networknode/internal/services/dto"

	"gorm.io/gorm"
)

const (
	PathRoot      = "/"
	PathDashboard = "/dashboard"
	PathMembers   = "/dashboard/members"
	PathMeetings  = "/dashboard/meetings"
	PathProfile   = completion.ProfilePath
)

// AuthService - серверная часть входа: профиль и выбор страницы после входа.
// Cookie и обмен токенов живут в identity.SessionManager.
type AuthService interface {
	// CompleteSignIn создает профиль при первом входе и возвращает путь,
	// куда отправить пользователя.
	CompleteSignIn(ctx context.Context, db *gorm.DB, owner dto.ProfileOwner, redirect string) string
	CompletionStatus(ctx context.Context, userID string) completion.Status
}

type AuthServiceImpl struct {
	profileService ProfileService
	checker        completion.Checker
}

func NewAuthService(profileService ProfileService, checker completion.Checker) AuthService {
	return &AuthServiceImpl{
		profileService: profileService,
		checker:        checker,
	}
}

func (s *AuthServiceImpl) CompleteSignIn(ctx context.Context, db *gorm.DB, owner dto.ProfileOwner, redirect string) string {
	if err := s.profileService.EnsureProfile(db, owner); err != nil {
		// страница профиля создаст строку при первом открытии
		logger.CtxWarn(ctx, "failed to ensure profile row", "user_id", owner.ID, "error", err)
	}

	status := s.checker.Check(ctx, owner.ID)
	return PostLoginDestination(status, redirect)
}

func (s *AuthServiceImpl) CompletionStatus(ctx context.Context, userID string) completion.Status {
	return s.checker.Check(ctx, userID)
}

// PostLoginDestination: заполненный профиль идет в каталог (или на безопасный
// redirect), незаполненный всегда на страницу профиля.
func PostLoginDestination(status completion.Status, redirect string) string {
	if !status.IsComplete {
		return PathProfile
	}
	if safe, ok := SafeRedirect(redirect); ok {
		return safe
	}
	return PathMembers
}

// SafeRedirect принимает только локальные пути внутри /dashboard
func SafeRedirect(redirect string) (string, bool) {
	if redirect == "" || strings.ContainsAny(redirect, "\\\r\n") || strings.HasPrefix(redirect, "//") {
		return "", false
	}
	u, err := url.Parse(redirect)
	if err != nil || u.IsAbs() || u.Host != "" {
		return "", false
	}
	if u.Path != PathDashboard && !strings.HasPrefix(u.Path, PathDashboard+"/") {
		return "", false
	}
	if strings.Contains(u.Path, "..") {
		return "", false
	}
	return u.RequestURI(), true
}
