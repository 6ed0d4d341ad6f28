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

// GroupService defines the interface for group operations
type GroupService interface {
	CreateGroup(ctx context.Context, userID int64, req *dto.CreateGroupRequest) (*dto.GroupResponse, error)
	ListGroups(ctx context.Context) ([]*dto.GroupResponse, error)
	ListMyGroups(ctx context.Context, userID int64) ([]*dto.GroupResponse, error)
	JoinGroup(ctx context.Context, groupID, userID int64) (*dto.JoinGroupResponse, error)
	LeaveGroup(ctx context.Context, groupID, userID int64) (*dto.MessageResponse, error)
}

type groupService struct {
	groupRepo      repositories.IGroupRepository
	membershipRepo repositories.IMembershipRepository
	userRepo       repositories.IUserRepository
	logger         zerolog.Logger
}

// NewGroupService creates a new GroupService instance
func NewGroupService(
	groupRepo repositories.IGroupRepository,
	membershipRepo repositories.IMembershipRepository,
	userRepo repositories.IUserRepository,
	logger zerolog.Logger,
) GroupService {
	return &groupService{
		groupRepo:      groupRepo,
		membershipRepo: membershipRepo,
		userRepo:       userRepo,
		logger:         logger,
	}
}

// CreateGroup creates a group and enrolls the creator as its first member
func (s *groupService) CreateGroup(ctx context.Context, userID int64, req *dto.CreateGroupRequest) (*dto.GroupResponse, error) {
	group := &models.Group{
		Name:        req.Name,
		Description: req.Description,
		CreatedByID: userID,
	}

	if err := s.groupRepo.CreateWithOwner(ctx, group); err != nil {
		s.logger.Error().Err(err).Int64("userID", userID).Msg("Failed to create group")
		return nil, err
	}

	s.logger.Info().Int64("groupID", group.ID).Int64("userID", userID).Msg("Group created")

	created, err := s.groupRepo.GetByID(ctx, group.ID)
	if err != nil {
		return nil, err
	}
	return toGroupResponse(created), nil
}

// ListGroups lists all groups, newest first
func (s *groupService) ListGroups(ctx context.Context) ([]*dto.GroupResponse, error) {
	groups, err := s.groupRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return mapGroups(groups), nil
}

// ListMyGroups lists the groups the user belongs to
func (s *groupService) ListMyGroups(ctx context.Context, userID int64) ([]*dto.GroupResponse, error) {
	groups, err := s.groupRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return mapGroups(groups), nil
}

// JoinGroup adds the user as a member of the group. Joining a group the user
// already belongs to is a conflict.
func (s *groupService) JoinGroup(ctx context.Context, groupID, userID int64) (*dto.JoinGroupResponse, error) {
	if _, err := s.groupRepo.GetByID(ctx, groupID); err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			return nil, apperrors.NewResourceNotFoundError("Group not found.")
		}
		return nil, err
	}

	membership, err := s.membershipRepo.Add(ctx, groupID, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			return nil, apperrors.NewConflictError("You are already a member of this group.")
		}
		return nil, err
	}

	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &dto.JoinGroupResponse{
		Message: "Joined group successfully",
		Membership: dto.MembershipResponse{
			ID:       membership.ID,
			GroupID:  membership.GroupID,
			User:     toUserResponse(user),
			JoinedAt: membership.JoinedAt,
		},
	}, nil
}

// LeaveGroup removes the user's membership. Leaving a group the user is not
// a member of is a conflict. The last member may leave; the group remains.
func (s *groupService) LeaveGroup(ctx context.Context, groupID, userID int64) (*dto.MessageResponse, error) {
	if _, err := s.groupRepo.GetByID(ctx, groupID); err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			return nil, apperrors.NewResourceNotFoundError("Group not found.")
		}
		return nil, err
	}

	if err := s.membershipRepo.Remove(ctx, groupID, userID); err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			return nil, apperrors.NewConflictError("You are not a member of this group.")
		}
		return nil, err
	}

	resp := dto.NewMessageResponse("Left group successfully")
	return &resp, nil
}

func mapGroups(groups []*models.Group) []*dto.GroupResponse {
	responses := make([]*dto.GroupResponse, 0, len(groups))
	for _, group := range groups {
		responses = append(responses, toGroupResponse(group))
	}
	return responses
}
