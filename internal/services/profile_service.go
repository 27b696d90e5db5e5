package services

import (
	"errors"

	"networknode/internal/completion"
	"networknode/internal/models"
	"networknode/internal/repositories"
	"networknode/internal/services/dto"
	"networknode/pkg/apperrors"

	"gorm.io/gorm"
)

// Все методы принимают 'db *gorm.DB' (пул или транзакция из DBMiddleware)
type ProfileService interface {
	// EnsureProfile создает строку профиля, если ее еще нет
	EnsureProfile(db *gorm.DB, owner dto.ProfileOwner) error
	// GetOwnProfile и UpdateProfile создают строку, если вход прошел без нее
	GetOwnProfile(db *gorm.DB, owner dto.ProfileOwner) (*dto.OwnProfileResponse, error)
	UpdateProfile(db *gorm.DB, owner dto.ProfileOwner, req *dto.UpdateProfileRequest) (*dto.OwnProfileResponse, error)
	ListMembers(db *gorm.DB, req *dto.ListMembersRequest) (*dto.PaginatedResponse, error)
	GetMember(db *gorm.DB, id string) (*dto.MemberResponse, error)
}

type ProfileServiceImpl struct {
	profileRepo repositories.ProfileRepository
	invalidator completion.Invalidator
	rules       []completion.FieldRule
}

func NewProfileService(
	profileRepo repositories.ProfileRepository,
	invalidator completion.Invalidator,
) ProfileService {
	return &ProfileServiceImpl{
		profileRepo: profileRepo,
		invalidator: invalidator,
		rules:       completion.RequiredProfileFields,
	}
}

func (s *ProfileServiceImpl) EnsureProfile(db *gorm.DB, owner dto.ProfileOwner) error {
	if owner.ID == "" {
		return apperrors.NewUnauthorizedError("User not authenticated")
	}

	exists, err := s.profileRepo.Exists(db, owner.ID)
	if err != nil {
		return apperrors.DatabaseError(err)
	}
	if exists {
		return nil
	}

	err = s.profileRepo.Create(db, &models.Profile{
		ID:       owner.ID,
		Email:    owner.Email,
		Name:     owner.Name,
		PhotoURL: owner.PhotoURL,
	})
	if err != nil && !errors.Is(err, repositories.ErrProfileAlreadyExists) {
		return apperrors.DatabaseError(err)
	}
	return nil
}

func (s *ProfileServiceImpl) GetOwnProfile(db *gorm.DB, owner dto.ProfileOwner) (*dto.OwnProfileResponse, error) {
	profile, err := s.findOrCreateOwn(db, owner)
	if err != nil {
		return nil, err
	}
	return s.ownProfileResponse(profile), nil
}

func (s *ProfileServiceImpl) UpdateProfile(db *gorm.DB, owner dto.ProfileOwner, req *dto.UpdateProfileRequest) (*dto.OwnProfileResponse, error) {
	profile, err := s.findOrCreateOwn(db, owner)
	if err != nil {
		return nil, err
	}

	profile.Name = req.Name
	profile.Bio = req.Bio
	profile.Skills = dto.NormalizeSkills(req.Skills)
	profile.DiscordUsername = req.DiscordUsername
	profile.WhatsappCountryCode = req.WhatsappCountryCode
	profile.WhatsappNumber = req.WhatsappNumber
	profile.LinkedinURL = req.LinkedinURL
	profile.TwitterURL = req.TwitterURL
	profile.GithubURL = req.GithubURL
	profile.CalendlyURL = req.CalendlyURL
	profile.PhotoURL = req.PhotoURL
	profile.OpenToCollaborate = req.OpenToCollaborate
	profile.OpenToJobs = req.OpenToJobs
	profile.HiringTalent = req.HiringTalent

	if err := s.profileRepo.Update(db, profile); err != nil {
		return nil, handleProfileError(err)
	}

	// следующая проверка гейта должна увидеть эту запись
	s.invalidator.Invalidate(owner.ID)

	return s.ownProfileResponse(profile), nil
}

func (s *ProfileServiceImpl) ListMembers(db *gorm.DB, req *dto.ListMembersRequest) (*dto.PaginatedResponse, error) {
	page, pageSize := normalizePage(req.Page, req.PageSize)

	profiles, total, err := s.profileRepo.List(db, repositories.ProfileSearchCriteria{
		Query:    req.Query,
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	members := make([]*dto.MemberResponse, 0, len(profiles))
	for i := range profiles {
		members = append(members, dto.NewMemberResponse(&profiles[i]))
	}
	return dto.NewPaginatedResponse(members, total, page, pageSize), nil
}

func (s *ProfileServiceImpl) GetMember(db *gorm.DB, id string) (*dto.MemberResponse, error) {
	profile, err := s.profileRepo.FindByID(db, id)
	if err != nil {
		return nil, handleProfileError(err)
	}
	return dto.NewMemberResponse(profile), nil
}

// findOrCreateOwn читает свой профиль. Если при входе строку создать не удалось,
// она создается здесь, иначе страница профиля осталась бы тупиком.
func (s *ProfileServiceImpl) findOrCreateOwn(db *gorm.DB, owner dto.ProfileOwner) (*models.Profile, error) {
	profile, err := s.profileRepo.FindByID(db, owner.ID)
	if err == nil {
		return profile, nil
	}
	if appErr := handleProfileError(err); !errors.Is(appErr, apperrors.ErrProfileNotFound) {
		return nil, appErr
	}

	if err := s.EnsureProfile(db, owner); err != nil {
		return nil, err
	}
	profile, err = s.profileRepo.FindByID(db, owner.ID)
	if err != nil {
		return nil, handleProfileError(err)
	}
	return profile, nil
}

func (s *ProfileServiceImpl) ownProfileResponse(p *models.Profile) *dto.OwnProfileResponse {
	if p.Skills == nil {
		p.Skills = []string{}
	}
	return &dto.OwnProfileResponse{
		Profile:    p,
		Completion: completion.Evaluate(p, s.rules),
	}
}

func handleProfileError(err error) error {
	if errors.Is(err, repositories.ErrProfileNotFound) || errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.ErrProfileNotFound
	}
	return apperrors.DatabaseError(err)
}
