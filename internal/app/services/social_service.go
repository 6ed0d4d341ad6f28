package services

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/studysphere/studysphere/internal/app/models"
	"github.com/studysphere/studysphere/internal/app/models/dto"
	"github.com/studysphere/studysphere/internal/app/repositories"
	"github.com/studysphere/studysphere/internal/pkg/apperrors"
)

// SocialService defines the interface for friend request operations
type SocialService interface {
	SendFriendRequest(ctx context.Context, senderID int64, req *dto.SendFriendRequestRequest) (*dto.SendFriendRequestResponse, error)
	ListPendingRequests(ctx context.Context, userID int64) ([]dto.FriendRequestResponse, error)
	RespondToRequest(ctx context.Context, userID, requestID int64, req *dto.RespondFriendRequestRequest) (*dto.FriendRequestResponse, error)
	ListFriends(ctx context.Context, userID int64) ([]*dto.UserResponse, error)
}

type socialService struct {
	friendRequestRepo repositories.IFriendRequestRepository
	userRepo          repositories.IUserRepository
	logger            zerolog.Logger
}

// NewSocialService creates a new SocialService instance
func NewSocialService(friendRequestRepo repositories.IFriendRequestRepository, userRepo repositories.IUserRepository, logger zerolog.Logger) SocialService {
	return &socialService{
		friendRequestRepo: friendRequestRepo,
		userRepo:          userRepo,
		logger:            logger,
	}
}

// SendFriendRequest creates a pending request from the sender to another
// user. A non-rejected request from the sender to the same receiver blocks a
// new one; a request in the opposite direction does not.
func (s *socialService) SendFriendRequest(ctx context.Context, senderID int64, req *dto.SendFriendRequestRequest) (*dto.SendFriendRequestResponse, error) {
	if req.ReceiverID == senderID {
		return nil, apperrors.NewValidationError("You cannot send a friend request to yourself.")
	}

	receiver, err := s.userRepo.GetUserByID(ctx, req.ReceiverID)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.NewResourceNotFoundError("User not found.")
		}
		return nil, err
	}

	exists, err := s.friendRequestRepo.HasActiveRequest(ctx, senderID, req.ReceiverID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.NewConflictError("A friend request to this user already exists.")
	}

	sender, err := s.userRepo.GetUserByID(ctx, senderID)
	if err != nil {
		return nil, err
	}

	request := &models.FriendRequest{
		SenderID:   senderID,
		ReceiverID: req.ReceiverID,
		Sender:     sender,
		Receiver:   receiver,
	}
	if err := s.friendRequestRepo.Create(ctx, request); err != nil {
		s.logger.Error().Err(err).Int64("senderID", senderID).Int64("receiverID", req.ReceiverID).Msg("Failed to create friend request")
		return nil, err
	}

	return &dto.SendFriendRequestResponse{
		Message: "Friend request sent",
		Request: toFriendRequestResponse(request),
	}, nil
}

// ListPendingRequests lists pending requests addressed to the user
func (s *socialService) ListPendingRequests(ctx context.Context, userID int64) ([]dto.FriendRequestResponse, error) {
	requests, err := s.friendRequestRepo.ListPendingByReceiver(ctx, userID)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.FriendRequestResponse, 0, len(requests))
	for _, request := range requests {
		responses = append(responses, toFriendRequestResponse(request))
	}
	return responses, nil
}

// RespondToRequest accepts or rejects a request addressed to the user.
// A request that was already answered can be answered again.
func (s *socialService) RespondToRequest(ctx context.Context, userID, requestID int64, req *dto.RespondFriendRequestRequest) (*dto.FriendRequestResponse, error) {
	var status models.FriendRequestStatus
	switch req.Action {
	case "accept":
		status = models.FriendRequestStatusAccepted
	case "reject":
		status = models.FriendRequestStatusRejected
	default:
		return nil, apperrors.NewValidationError("Action must be 'accept' or 'reject'.")
	}

	request, err := s.friendRequestRepo.GetByIDAndReceiver(ctx, requestID, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			return nil, apperrors.NewResourceNotFoundError("Friend request not found.")
		}
		return nil, err
	}

	if err := s.friendRequestRepo.UpdateStatus(ctx, requestID, status); err != nil {
		return nil, err
	}
	request.Status = status

	s.logger.Info().Int64("requestID", requestID).Str("action", req.Action).Msg("Friend request answered")

	resp := toFriendRequestResponse(request)
	return &resp, nil
}

// ListFriends lists the users connected to the given user through accepted
// requests in either direction
func (s *socialService) ListFriends(ctx context.Context, userID int64) ([]*dto.UserResponse, error) {
	friends, err := s.friendRequestRepo.ListFriends(ctx, userID)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.UserResponse, 0, len(friends))
	for _, friend := range friends {
		responses = append(responses, toUserResponse(friend))
	}
	return responses, nil
}
