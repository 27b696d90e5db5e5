package services

import (
	"errors"
	"strings"

	"networknode/internal/models"
	"networknode/internal/repositories"
	"networknode/internal/services/dto"
	"networknode/internal/validator"
	"networknode/pkg/apperrors"

	"gorm.io/gorm"
)

type StartupService interface {
	CreateStartup(db *gorm.DB, userID string, req *dto.StartupRequest) (*models.Startup, error)
	ListStartups(db *gorm.DB, page, pageSize int) (*dto.PaginatedResponse, error)
	// GetForEdit отдает стартап только владельцу
	GetForEdit(db *gorm.DB, id, userID string) (*models.Startup, error)
	// UpdateStartup меняет стартап только владельца; иначе 404 без изменений
	UpdateStartup(db *gorm.DB, id, userID string, req *dto.StartupRequest) (*models.Startup, error)
}

type StartupServiceImpl struct {
	startupRepo repositories.StartupRepository
}

func NewStartupService(startupRepo repositories.StartupRepository) StartupService {
	return &StartupServiceImpl{startupRepo: startupRepo}
}

func (s *StartupServiceImpl) CreateStartup(db *gorm.DB, userID string, req *dto.StartupRequest) (*models.Startup, error) {
	startup := &models.Startup{UserID: userID}
	if err := applyStartupRequest(startup, req); err != nil {
		return nil, err
	}

	if err := s.startupRepo.Create(db, startup); err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return startup, nil
}

func (s *StartupServiceImpl) ListStartups(db *gorm.DB, page, pageSize int) (*dto.PaginatedResponse, error) {
	page, pageSize = normalizePage(page, pageSize)

	startups, total, err := s.startupRepo.List(db, page, pageSize)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return dto.NewPaginatedResponse(startups, total, page, pageSize), nil
}

func (s *StartupServiceImpl) GetForEdit(db *gorm.DB, id, userID string) (*models.Startup, error) {
	startup, err := s.startupRepo.FindOwned(db, id, userID)
	if err != nil {
		return nil, handleStartupError(err)
	}
	return startup, nil
}

func (s *StartupServiceImpl) UpdateStartup(db *gorm.DB, id, userID string, req *dto.StartupRequest) (*models.Startup, error) {
	startup, err := s.startupRepo.FindOwned(db, id, userID)
	if err != nil {
		return nil, handleStartupError(err)
	}

	if err := applyStartupRequest(startup, req); err != nil {
		return nil, err
	}

	// фильтр по владельцу повторяется в UPDATE
	if err := s.startupRepo.UpdateOwned(db, startup); err != nil {
		return nil, handleStartupError(err)
	}
	return startup, nil
}

func applyStartupRequest(startup *models.Startup, req *dto.StartupRequest) error {
	if validator.WordCount(req.Description) > dto.MaxStartupDescriptionWords {
		return apperrors.ErrDescriptionTooLong
	}

	status := models.HiringStatus(req.HiringStatus)
	if status == "" {
		status = models.HiringStatusNotHiring
	}
	if !status.Valid() {
		return apperrors.ErrInvalidOperation("startup", "Unknown hiring status")
	}

	startup.Title = strings.TrimSpace(req.Title)
	startup.Description = strings.TrimSpace(req.Description)
	startup.Tags = req.Tags.Normalize()
	startup.WebsiteURL = strings.TrimSpace(req.WebsiteURL)
	startup.PitchDeckURL = strings.TrimSpace(req.PitchDeckURL)
	startup.HiringStatus = status
	startup.RaisingFunds = req.RaisingFunds
	startup.LookingForCofounder = req.LookingForCofounder
	return nil
}

func handleStartupError(err error) error {
	if errors.Is(err, repositories.ErrStartupNotFound) {
		return apperrors.ErrStartupNotFound
	}
	return apperrors.DatabaseError(err)
}
