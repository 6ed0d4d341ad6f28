package repositories

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/studysphere/studysphere/internal/app/models"
	"github.com/studysphere/studysphere/internal/db"
	"github.com/studysphere/studysphere/internal/pkg/apperrors"
)

// IDoubtRepository defines the interface for doubt-related database operations
type IDoubtRepository interface {
	Create(ctx context.Context, doubt *models.Doubt) error
	GetByID(ctx context.Context, id int64) (*models.Doubt, error)
	List(ctx context.Context, groupID *int64) ([]*models.Doubt, error)
	ListByDirectedTo(ctx context.Context, userID int64) ([]*models.Doubt, error)
	CreateReply(ctx context.Context, reply *models.DoubtReply) error
	GetReplyByID(ctx context.Context, doubtID, replyID int64) (*models.DoubtReply, error)
	MarkSolution(ctx context.Context, doubtID, replyID int64) error
}

// DoubtRepository handles database operations for doubts and their replies
type DoubtRepository struct {
	db *db.PostgresDB
}

// NewDoubtRepository creates a new DoubtRepository instance
func NewDoubtRepository(db *db.PostgresDB) *DoubtRepository {
	return &DoubtRepository{db: db}
}

// Create inserts a new doubt
func (r *DoubtRepository) Create(ctx context.Context, doubt *models.Doubt) error {
	return r.db.Pool.QueryRow(ctx, `
		INSERT INTO doubts (group_id, asked_by_id, directed_to_id, title, body, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING id, created_at`,
		doubt.GroupID, doubt.AskedByID, doubt.DirectedToID, doubt.Title, doubt.Body, doubt.Status,
	).Scan(&doubt.ID, &doubt.CreatedAt)
}

// GetByID retrieves a doubt with its asker, addressee and replies
func (r *DoubtRepository) GetByID(ctx context.Context, id int64) (*models.Doubt, error) {
	doubts, err := r.list(ctx, sq.Eq{"d.id": id})
	if err != nil {
		return nil, err
	}
	if len(doubts) == 0 {
		return nil, apperrors.ErrResourceNotFound
	}
	return doubts[0], nil
}

// List returns doubts newest first, optionally filtered by group
func (r *DoubtRepository) List(ctx context.Context, groupID *int64) ([]*models.Doubt, error) {
	if groupID != nil {
		return r.list(ctx, sq.Eq{"d.group_id": *groupID})
	}
	return r.list(ctx, nil)
}

// ListByDirectedTo returns doubts directed at the given user, newest first
func (r *DoubtRepository) ListByDirectedTo(ctx context.Context, userID int64) ([]*models.Doubt, error) {
	return r.list(ctx, sq.Eq{"d.directed_to_id": userID})
}

func (r *DoubtRepository) list(ctx context.Context, where interface{}) ([]*models.Doubt, error) {
	query := sq.Select(
		"d.id", "d.group_id", "d.asked_by_id", "d.directed_to_id",
		"d.title", "d.body", "d.status", "d.created_at",
		"g.name", "g.description", "g.created_by_id", "g.created_at",
		"c.id", "c.username", "c.email",
		"(SELECT COUNT(*) FROM memberships m WHERE m.group_id = g.id) AS members_count",
		"a.id", "a.username", "a.email",
		"t.id", "t.username", "t.email",
	).
		From("doubts d").
		Join("groups g ON g.id = d.group_id").
		Join("users c ON c.id = g.created_by_id").
		Join("users a ON a.id = d.asked_by_id").
		LeftJoin("users t ON t.id = d.directed_to_id").
		OrderBy("d.created_at DESC").
		PlaceholderFormat(sq.Dollar)

	if where != nil {
		query = query.Where(where)
	}

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Pool.Query(ctx, sqlQuery, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	doubts := make([]*models.Doubt, 0)
	byID := make(map[int64]*models.Doubt)
	for rows.Next() {
		doubt := &models.Doubt{
			Group:   &models.Group{CreatedBy: &models.User{}},
			AskedBy: &models.User{},
		}
		var dirUsername, dirEmail *string
		var dirUserID *int64
		err := rows.Scan(
			&doubt.ID, &doubt.GroupID, &doubt.AskedByID, &doubt.DirectedToID,
			&doubt.Title, &doubt.Body, &doubt.Status, &doubt.CreatedAt,
			&doubt.Group.Name, &doubt.Group.Description, &doubt.Group.CreatedByID, &doubt.Group.CreatedAt,
			&doubt.Group.CreatedBy.ID, &doubt.Group.CreatedBy.Username, &doubt.Group.CreatedBy.Email,
			&doubt.Group.MembersCount,
			&doubt.AskedBy.ID, &doubt.AskedBy.Username, &doubt.AskedBy.Email,
			&dirUserID, &dirUsername, &dirEmail,
		)
		if err != nil {
			return nil, err
		}
		doubt.Group.ID = doubt.GroupID
		if dirUserID != nil {
			doubt.DirectedTo = &models.User{ID: *dirUserID, Username: *dirUsername, Email: *dirEmail}
		}
		doubt.Replies = make([]*models.DoubtReply, 0)
		doubts = append(doubts, doubt)
		byID[doubt.ID] = doubt
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(doubts) == 0 {
		return doubts, nil
	}

	ids := make([]int64, 0, len(doubts))
	for _, d := range doubts {
		ids = append(ids, d.ID)
	}
	if err := r.attachReplies(ctx, byID, ids); err != nil {
		return nil, err
	}
	return doubts, nil
}

func (r *DoubtRepository) attachReplies(ctx context.Context, byID map[int64]*models.Doubt, doubtIDs []int64) error {
	query := sq.Select(
		"dr.id", "dr.doubt_id", "dr.user_id", "dr.text", "dr.is_solution", "dr.created_at",
		"u.id", "u.username", "u.email",
	).
		From("doubt_replies dr").
		Join("users u ON u.id = dr.user_id").
		Where(sq.Eq{"dr.doubt_id": doubtIDs}).
		OrderBy("dr.created_at ASC").
		PlaceholderFormat(sq.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return err
	}

	rows, err := r.db.Pool.Query(ctx, sqlQuery, args...)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		reply := &models.DoubtReply{User: &models.User{}}
		err := rows.Scan(
			&reply.ID, &reply.DoubtID, &reply.UserID, &reply.Text, &reply.IsSolution, &reply.CreatedAt,
			&reply.User.ID, &reply.User.Username, &reply.User.Email,
		)
		if err != nil {
			return err
		}
		if doubt, ok := byID[reply.DoubtID]; ok {
			doubt.Replies = append(doubt.Replies, reply)
		}
	}
	return rows.Err()
}

// CreateReply inserts a reply on a doubt
func (r *DoubtRepository) CreateReply(ctx context.Context, reply *models.DoubtReply) error {
	return r.db.Pool.QueryRow(ctx, `
		INSERT INTO doubt_replies (doubt_id, user_id, text, is_solution, created_at)
		VALUES ($1, $2, $3, false, NOW())
		RETURNING id, created_at`,
		reply.DoubtID, reply.UserID, reply.Text,
	).Scan(&reply.ID, &reply.CreatedAt)
}

// GetReplyByID retrieves a reply that belongs to the given doubt
func (r *DoubtRepository) GetReplyByID(ctx context.Context, doubtID, replyID int64) (*models.DoubtReply, error) {
	reply := &models.DoubtReply{}
	err := r.db.Pool.QueryRow(ctx, `
		SELECT id, doubt_id, user_id, text, is_solution, created_at
		FROM doubt_replies
		WHERE id = $1 AND doubt_id = $2`,
		replyID, doubtID,
	).Scan(&reply.ID, &reply.DoubtID, &reply.UserID, &reply.Text, &reply.IsSolution, &reply.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrResourceNotFound
		}
		return nil, err
	}
	return reply, nil
}

// MarkSolution clears any previous solution on the doubt, marks the given
// reply as the solution and moves the doubt to the answered status. The three
// writes happen in one transaction so the doubt never carries two solutions.
func (r *DoubtRepository) MarkSolution(ctx context.Context, doubtID, replyID int64) error {
	return r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if _, err := tx.Exec(ctx,
			"UPDATE doubt_replies SET is_solution = false WHERE doubt_id = $1", doubtID,
		); err != nil {
			return err
		}

		tag, err := tx.Exec(ctx,
			"UPDATE doubt_replies SET is_solution = true WHERE id = $1 AND doubt_id = $2",
			replyID, doubtID,
		)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return apperrors.ErrResourceNotFound
		}

		_, err = tx.Exec(ctx,
			"UPDATE doubts SET status = $1 WHERE id = $2",
			models.DoubtStatusAnswered, doubtID,
		)
		return err
	})
}
