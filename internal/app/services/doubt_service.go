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

// DoubtService defines the interface for doubt and reply operations
type DoubtService interface {
	CreateDoubt(ctx context.Context, userID int64, req *dto.CreateDoubtRequest) (*dto.DoubtResponse, error)
	ListDoubts(ctx context.Context, groupID *int64) ([]*dto.DoubtResponse, error)
	ListAssignedDoubts(ctx context.Context, userID int64) ([]*dto.DoubtResponse, error)
	ReplyToDoubt(ctx context.Context, userID, doubtID int64, req *dto.DoubtReplyRequest) (*dto.DoubtReplyResponse, error)
	MarkSolution(ctx context.Context, userID, doubtID int64, req *dto.MarkSolutionRequest) (*dto.DoubtResponse, error)
}

type doubtService struct {
	doubtRepo      repositories.IDoubtRepository
	groupRepo      repositories.IGroupRepository
	membershipRepo repositories.IMembershipRepository
	userRepo       repositories.IUserRepository
	logger         zerolog.Logger
}

// NewDoubtService creates a new DoubtService instance
func NewDoubtService(
	doubtRepo repositories.IDoubtRepository,
	groupRepo repositories.IGroupRepository,
	membershipRepo repositories.IMembershipRepository,
	userRepo repositories.IUserRepository,
	logger zerolog.Logger,
) DoubtService {
	return &doubtService{
		doubtRepo:      doubtRepo,
		groupRepo:      groupRepo,
		membershipRepo: membershipRepo,
		userRepo:       userRepo,
		logger:         logger,
	}
}

// CreateDoubt posts a doubt to a group the asker belongs to. When the doubt
// is directed at a member, that user must exist and belong to the same group.
func (s *doubtService) CreateDoubt(ctx context.Context, userID int64, req *dto.CreateDoubtRequest) (*dto.DoubtResponse, error) {
	if _, err := s.groupRepo.GetByID(ctx, req.GroupID); err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			return nil, apperrors.NewResourceNotFoundError("Group not found.")
		}
		return nil, err
	}

	isMember, err := s.membershipRepo.IsMember(ctx, req.GroupID, userID)
	if err != nil {
		return nil, err
	}
	if !isMember {
		return nil, apperrors.NewForbiddenError("You must be a member of the group to post a doubt.")
	}

	if req.DirectedToID != nil {
		if _, err := s.userRepo.GetUserByID(ctx, *req.DirectedToID); err != nil {
			if errors.Is(err, apperrors.ErrUserNotFound) {
				return nil, apperrors.NewResourceNotFoundError("User not found.")
			}
			return nil, err
		}

		targetIsMember, err := s.membershipRepo.IsMember(ctx, req.GroupID, *req.DirectedToID)
		if err != nil {
			return nil, err
		}
		if !targetIsMember {
			return nil, apperrors.NewValidationError("The selected user is not a member of this group.")
		}
	}

	doubt := &models.Doubt{
		GroupID:      req.GroupID,
		AskedByID:    userID,
		DirectedToID: req.DirectedToID,
		Title:        req.Title,
		Body:         req.Body,
		Status:       models.DoubtStatusOpen,
	}

	if err := s.doubtRepo.Create(ctx, doubt); err != nil {
		s.logger.Error().Err(err).Int64("userID", userID).Int64("groupID", req.GroupID).Msg("Failed to create doubt")
		return nil, err
	}

	s.logger.Info().Int64("doubtID", doubt.ID).Int64("groupID", req.GroupID).Msg("Doubt created")

	created, err := s.doubtRepo.GetByID(ctx, doubt.ID)
	if err != nil {
		return nil, err
	}
	return toDoubtResponse(created), nil
}

// ListDoubts lists doubts newest first, optionally filtered by group
func (s *doubtService) ListDoubts(ctx context.Context, groupID *int64) ([]*dto.DoubtResponse, error) {
	doubts, err := s.doubtRepo.List(ctx, groupID)
	if err != nil {
		return nil, err
	}
	return mapDoubts(doubts), nil
}

// ListAssignedDoubts lists the doubts directed at the user, newest first
func (s *doubtService) ListAssignedDoubts(ctx context.Context, userID int64) ([]*dto.DoubtResponse, error) {
	doubts, err := s.doubtRepo.ListByDirectedTo(ctx, userID)
	if err != nil {
		return nil, err
	}
	return mapDoubts(doubts), nil
}

// ReplyToDoubt adds a reply to a doubt. The replier must belong to the
// doubt's group.
func (s *doubtService) ReplyToDoubt(ctx context.Context, userID, doubtID int64, req *dto.DoubtReplyRequest) (*dto.DoubtReplyResponse, error) {
	doubt, err := s.doubtRepo.GetByID(ctx, doubtID)
	if err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			return nil, apperrors.NewResourceNotFoundError("Doubt not found.")
		}
		return nil, err
	}

	isMember, err := s.membershipRepo.IsMember(ctx, doubt.GroupID, userID)
	if err != nil {
		return nil, err
	}
	if !isMember {
		return nil, apperrors.NewForbiddenError("You must be a member of the group to reply.")
	}

	reply := &models.DoubtReply{
		DoubtID: doubtID,
		UserID:  userID,
		Text:    req.Text,
	}

	if err := s.doubtRepo.CreateReply(ctx, reply); err != nil {
		s.logger.Error().Err(err).Int64("doubtID", doubtID).Msg("Failed to create reply")
		return nil, err
	}

	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	reply.User = user

	resp := toDoubtReplyResponse(reply)
	return &resp, nil
}

// MarkSolution marks a reply as the doubt's solution. Only the asker may do
// this; any previously marked reply is unmarked and the doubt moves to the
// answered status.
func (s *doubtService) MarkSolution(ctx context.Context, userID, doubtID int64, req *dto.MarkSolutionRequest) (*dto.DoubtResponse, error) {
	doubt, err := s.doubtRepo.GetByID(ctx, doubtID)
	if err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			return nil, apperrors.NewResourceNotFoundError("Doubt not found.")
		}
		return nil, err
	}

	if doubt.AskedByID != userID {
		return nil, apperrors.NewForbiddenError("Only the asker can mark a solution.")
	}

	if _, err := s.doubtRepo.GetReplyByID(ctx, doubtID, req.ReplyID); err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			return nil, apperrors.NewResourceNotFoundError("Reply not found.")
		}
		return nil, err
	}

	if err := s.doubtRepo.MarkSolution(ctx, doubtID, req.ReplyID); err != nil {
		s.logger.Error().Err(err).Int64("doubtID", doubtID).Int64("replyID", req.ReplyID).Msg("Failed to mark solution")
		return nil, err
	}

	s.logger.Info().Int64("doubtID", doubtID).Int64("replyID", req.ReplyID).Msg("Solution marked")

	updated, err := s.doubtRepo.GetByID(ctx, doubtID)
	if err != nil {
		return nil, err
	}
	return toDoubtResponse(updated), nil
}

func mapDoubts(doubts []*models.Doubt) []*dto.DoubtResponse {
	responses := make([]*dto.DoubtResponse, 0, len(doubts))
	for _, doubt := range doubts {
		responses = append(responses, toDoubtResponse(doubt))
	}
	return responses
}
