package services

import (
	"context"
	"errors"

	"networknode/internal/models"
	"networknode/internal/repositories"
	"networknode/internal/services/dto"
	"networknode/pkg/apperrors"

	"gorm.io/gorm"
)

type MeetingService interface {
	CreateMeetingRequest(ctx context.Context, db *gorm.DB, requesterID string, req *dto.CreateMeetingRequest) (*models.MeetingRequest, error)
	ListMeetingRequests(db *gorm.DB, userID string) (*dto.MeetingListResponse, error)
}

type MeetingServiceImpl struct {
	meetingRepo  repositories.MeetingRepository
	profileRepo  repositories.ProfileRepository
	emailService *EmailService
}

func NewMeetingService(
	meetingRepo repositories.MeetingRepository,
	profileRepo repositories.ProfileRepository,
	emailService *EmailService,
) MeetingService {
	return &MeetingServiceImpl{
		meetingRepo:  meetingRepo,
		profileRepo:  profileRepo,
		emailService: emailService,
	}
}

func (s *MeetingServiceImpl) CreateMeetingRequest(ctx context.Context, db *gorm.DB, requesterID string, req *dto.CreateMeetingRequest) (*models.MeetingRequest, error) {
	if req.RecipientID == requesterID {
		return nil, apperrors.ErrCannotMeetSelf
	}

	meetingType := models.MeetingType(req.MeetingType)
	if !meetingType.Valid() {
		return nil, apperrors.ErrInvalidOperation("meeting", "Unknown meeting type")
	}

	location := dto.NullableString(req.Location)
	if meetingType == models.MeetingTypeInPerson && location == nil {
		return nil, apperrors.ErrLocationRequired
	}

	recipient, err := s.profileRepo.FindByID(db, req.RecipientID)
	if err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrRecipientNotFound
		}
		return nil, apperrors.DatabaseError(err)
	}

	meeting := &models.MeetingRequest{
		RequesterID: requesterID,
		RecipientID: recipient.ID,
		JobID:       dto.NullableString(req.JobID),
		StartupID:   dto.NullableString(req.StartupID),
		Message:     dto.NullableString(req.Message),
		MeetingType: meetingType,
		Location:    location,
		Status:      models.MeetingStatusPending,
	}
	if err := s.meetingRepo.Create(db, meeting); err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	s.notifyRecipient(ctx, db, meeting, recipient)
	return meeting, nil
}

func (s *MeetingServiceImpl) notifyRecipient(ctx context.Context, db *gorm.DB, meeting *models.MeetingRequest, recipient *models.Profile) {
	var requesterName string
	if requester, err := s.profileRepo.FindByID(db, meeting.RequesterID); err == nil {
		requesterName = requester.Name
	}
	s.emailService.NotifyMeetingRequest(ctx, meeting, recipient, requesterName)
}

func (s *MeetingServiceImpl) ListMeetingRequests(db *gorm.DB, userID string) (*dto.MeetingListResponse, error) {
	sent, err := s.meetingRepo.ListSent(db, userID)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	received, err := s.meetingRepo.ListReceived(db, userID)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return &dto.MeetingListResponse{Sent: sent, Received: received}, nil
}
