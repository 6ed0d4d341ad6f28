package repositories

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/studysphere/studysphere/internal/app/models"
	"github.com/studysphere/studysphere/internal/db"
	"github.com/studysphere/studysphere/internal/pkg/apperrors"
)

// IGroupRepository defines the interface for group-related database operations
type IGroupRepository interface {
	CreateWithOwner(ctx context.Context, group *models.Group) error
	GetAll(ctx context.Context) ([]*models.Group, error)
	GetByID(ctx context.Context, id int64) (*models.Group, error)
	GetByUserID(ctx context.Context, userID int64) ([]*models.Group, error)
}

// GroupRepository handles database operations for study groups
type GroupRepository struct {
	db *db.PostgresDB
}

// NewGroupRepository creates a new GroupRepository instance
func NewGroupRepository(db *db.PostgresDB) *GroupRepository {
	return &GroupRepository{db: db}
}

const groupSelectBase = `
	SELECT g.id, g.name, g.description, g.created_by_id, g.created_at,
	       u.id, u.username, u.email,
	       (SELECT COUNT(*) FROM memberships m WHERE m.group_id = g.id) AS members_count
	FROM groups g
	JOIN users u ON u.id = g.created_by_id`

// CreateWithOwner inserts a group and its creator's membership in one
// transaction. Either both rows are written or neither is.
func (r *GroupRepository) CreateWithOwner(ctx context.Context, group *models.Group) error {
	return r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		err := tx.QueryRow(ctx, `
			INSERT INTO groups (name, description, created_by_id, created_at)
			VALUES ($1, $2, $3, NOW())
			RETURNING id, created_at`,
			group.Name, group.Description, group.CreatedByID,
		).Scan(&group.ID, &group.CreatedAt)
		if err != nil {
			return err
		}

		_, err = tx.Exec(ctx, `
			INSERT INTO memberships (group_id, user_id, joined_at)
			VALUES ($1, $2, NOW())`,
			group.ID, group.CreatedByID,
		)
		return err
	})
}

// GetAll lists all groups, newest first, with creator and member counts
func (r *GroupRepository) GetAll(ctx context.Context) ([]*models.Group, error) {
	rows, err := r.db.Pool.Query(ctx, groupSelectBase+" ORDER BY g.created_at DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanGroups(rows)
}

// GetByID retrieves a single group with its creator and member count
func (r *GroupRepository) GetByID(ctx context.Context, id int64) (*models.Group, error) {
	row := r.db.Pool.QueryRow(ctx, groupSelectBase+" WHERE g.id = $1", id)

	group, err := scanGroup(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrResourceNotFound
		}
		return nil, err
	}
	return group, nil
}

// GetByUserID lists the groups a user is a member of, newest membership first
func (r *GroupRepository) GetByUserID(ctx context.Context, userID int64) ([]*models.Group, error) {
	query := groupSelectBase + `
	JOIN memberships mem ON mem.group_id = g.id
	WHERE mem.user_id = $1
	ORDER BY mem.joined_at DESC`

	rows, err := r.db.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanGroups(rows)
}

func scanGroup(row pgx.Row) (*models.Group, error) {
	group := &models.Group{CreatedBy: &models.User{}}
	err := row.Scan(
		&group.ID, &group.Name, &group.Description, &group.CreatedByID, &group.CreatedAt,
		&group.CreatedBy.ID, &group.CreatedBy.Username, &group.CreatedBy.Email,
		&group.MembersCount,
	)
	if err != nil {
		return nil, err
	}
	return group, nil
}

func scanGroups(rows pgx.Rows) ([]*models.Group, error) {
	groups := make([]*models.Group, 0)
	for rows.Next() {
		group, err := scanGroup(rows)
		if err != nil {
			return nil, err
		}
		groups = append(groups, group)
	}
	return groups, rows.Err()
}
