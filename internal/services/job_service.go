package services

import (
	"strings"

	"networknode/internal/models"
	"networknode/internal/repositories"
	"networknode/internal/services/dto"
	"networknode/pkg/apperrors"

	"gorm.io/gorm"
)

type JobService interface {
	CreateJob(db *gorm.DB, userID string, req *dto.CreateJobRequest) (*models.Job, error)
	ListJobs(db *gorm.DB, page, pageSize int) (*dto.PaginatedResponse, error)
}

type JobServiceImpl struct {
	jobRepo repositories.JobRepository
}

func NewJobService(jobRepo repositories.JobRepository) JobService {
	return &JobServiceImpl{jobRepo: jobRepo}
}

func (s *JobServiceImpl) CreateJob(db *gorm.DB, userID string, req *dto.CreateJobRequest) (*models.Job, error) {
	job := &models.Job{
		UserID:      userID,
		Title:       strings.TrimSpace(req.Title),
		Description: strings.TrimSpace(req.Description),
		Tags:        req.Tags.Normalize(),
		Location:    dto.NullableString(req.Location),
		IsRemote:    req.IsRemote,
	}
	if job.Title == "" || job.Description == "" {
		return nil, apperrors.ErrInvalidOperation("job", "Title and description are required")
	}

	if err := s.jobRepo.Create(db, job); err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return job, nil
}

func (s *JobServiceImpl) ListJobs(db *gorm.DB, page, pageSize int) (*dto.PaginatedResponse, error) {
	page, pageSize = normalizePage(page, pageSize)

	jobs, total, err := s.jobRepo.List(db, page, pageSize)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return dto.NewPaginatedResponse(jobs, total, page, pageSize), nil
}
