package services

import (
	"context"

	"networknode/internal/completion"
	"networknode/internal/repositories"
	"networknode/internal/services/dto"
	"networknode/pkg/apperrors"

	"gorm.io/gorm"
)

type DashboardService interface {
	Overview(ctx context.Context, db *gorm.DB, userID string) (*dto.DashboardResponse, error)
}

type DashboardServiceImpl struct {
	jobRepo     repositories.JobRepository
	startupRepo repositories.StartupRepository
	checker     completion.Checker
}

func NewDashboardService(
	jobRepo repositories.JobRepository,
	startupRepo repositories.StartupRepository,
	checker completion.Checker,
) DashboardService {
	return &DashboardServiceImpl{
		jobRepo:     jobRepo,
		startupRepo: startupRepo,
		checker:     checker,
	}
}

func (s *DashboardServiceImpl) Overview(ctx context.Context, db *gorm.DB, userID string) (*dto.DashboardResponse, error) {
	jobs, err := s.jobRepo.Latest(db, feedSize)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	startups, err := s.startupRepo.Latest(db, feedSize)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	return &dto.DashboardResponse{
		LatestJobs:     jobs,
		LatestStartups: startups,
		Completion:     s.checker.Check(ctx, userID),
	}, nil
}
