package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/studysphere/studysphere/internal/app/models/dto"
	"github.com/studysphere/studysphere/internal/app/repositories"
)

// ProfileService defines the interface for profile operations
type ProfileService interface {
	GetProfile(ctx context.Context, userID int64) (*dto.ProfileDetailResponse, error)
	UpdateProfile(ctx context.Context, userID int64, req *dto.UpdateProfileRequest) (*dto.UpdateProfileResponse, error)
}

type profileService struct {
	profileRepo repositories.IProfileRepository
	userRepo    repositories.IUserRepository
	logger      zerolog.Logger
}

// NewProfileService creates a new ProfileService instance
func NewProfileService(profileRepo repositories.IProfileRepository, userRepo repositories.IUserRepository, logger zerolog.Logger) ProfileService {
	return &profileService{
		profileRepo: profileRepo,
		userRepo:    userRepo,
		logger:      logger,
	}
}

// GetProfile returns the user's profile, creating an empty one on first access
func (s *profileService) GetProfile(ctx context.Context, userID int64) (*dto.ProfileDetailResponse, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	profile, err := s.profileRepo.GetOrCreate(ctx, userID)
	if err != nil {
		s.logger.Error().Err(err).Int64("userID", userID).Msg("Failed to load profile")
		return nil, err
	}

	return &dto.ProfileDetailResponse{
		User:    *toUserResponse(user),
		Profile: toProfileResponse(profile),
	}, nil
}

// UpdateProfile applies a partial update to the user's profile
func (s *profileService) UpdateProfile(ctx context.Context, userID int64, req *dto.UpdateProfileRequest) (*dto.UpdateProfileResponse, error) {
	profile, err := s.profileRepo.Update(ctx, userID, req.Bio, req.Skills, req.Interests)
	if err != nil {
		s.logger.Error().Err(err).Int64("userID", userID).Msg("Failed to update profile")
		return nil, err
	}

	return &dto.UpdateProfileResponse{
		Message: "Profile updated successfully",
		Profile: toProfileResponse(profile),
	}, nil
}
