package repositories

import (
	"context"

	"github.com/studysphere/studysphere/internal/app/models"
	"github.com/studysphere/studysphere/internal/db"
	"github.com/studysphere/studysphere/internal/pkg/apperrors"
	"github.com/studysphere/studysphere/internal/pkg/dberrors"
)

// IMembershipRepository defines the interface for membership-related database operations
type IMembershipRepository interface {
	IsMember(ctx context.Context, groupID, userID int64) (bool, error)
	Add(ctx context.Context, groupID, userID int64) (*models.Membership, error)
	Remove(ctx context.Context, groupID, userID int64) error
}

// MembershipRepository handles database operations for group memberships
type MembershipRepository struct {
	db *db.PostgresDB
}

// NewMembershipRepository creates a new MembershipRepository instance
func NewMembershipRepository(db *db.PostgresDB) *MembershipRepository {
	return &MembershipRepository{db: db}
}

// IsMember reports whether a user belongs to a group
func (r *MembershipRepository) IsMember(ctx context.Context, groupID, userID int64) (bool, error) {
	var exists bool
	err := r.db.Pool.QueryRow(ctx,
		"SELECT EXISTS(SELECT 1 FROM memberships WHERE group_id = $1 AND user_id = $2)",
		groupID, userID,
	).Scan(&exists)
	return exists, err
}

// Add creates a membership for a user in a group. Returns a conflict error
// when the membership already exists.
func (r *MembershipRepository) Add(ctx context.Context, groupID, userID int64) (*models.Membership, error) {
	membership := &models.Membership{GroupID: groupID, UserID: userID}
	err := r.db.Pool.QueryRow(ctx, `
		INSERT INTO memberships (group_id, user_id, joined_at)
		VALUES ($1, $2, NOW())
		RETURNING id, joined_at`,
		groupID, userID,
	).Scan(&membership.ID, &membership.JoinedAt)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.ErrConflict
		}
		return nil, err
	}
	return membership, nil
}

// Remove deletes a user's membership in a group. Returns a conflict error
// when no membership exists.
func (r *MembershipRepository) Remove(ctx context.Context, groupID, userID int64) error {
	tag, err := r.db.Pool.Exec(ctx,
		"DELETE FROM memberships WHERE group_id = $1 AND user_id = $2",
		groupID, userID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrConflict
	}
	return nil
}
