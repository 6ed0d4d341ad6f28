package repositories

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/studysphere/studysphere/internal/app/models"
	"github.com/studysphere/studysphere/internal/db"
	"github.com/studysphere/studysphere/internal/pkg/apperrors"
)

// IFriendRequestRepository defines the interface for friend request database operations
type IFriendRequestRepository interface {
	Create(ctx context.Context, request *models.FriendRequest) error
	HasActiveRequest(ctx context.Context, senderID, receiverID int64) (bool, error)
	ListPendingByReceiver(ctx context.Context, receiverID int64) ([]*models.FriendRequest, error)
	GetByIDAndReceiver(ctx context.Context, id, receiverID int64) (*models.FriendRequest, error)
	UpdateStatus(ctx context.Context, id int64, status models.FriendRequestStatus) error
	ListFriends(ctx context.Context, userID int64) ([]*models.User, error)
}

// FriendRequestRepository handles database operations for friend requests
type FriendRequestRepository struct {
	db *db.PostgresDB
}

// NewFriendRequestRepository creates a new FriendRequestRepository instance
func NewFriendRequestRepository(db *db.PostgresDB) *FriendRequestRepository {
	return &FriendRequestRepository{db: db}
}

// Create inserts a new friend request in the pending status
func (r *FriendRequestRepository) Create(ctx context.Context, request *models.FriendRequest) error {
	request.Status = models.FriendRequestStatusPending
	return r.db.Pool.QueryRow(ctx, `
		INSERT INTO friend_requests (sender_id, receiver_id, status, created_at)
		VALUES ($1, $2, $3, NOW())
		RETURNING id, created_at`,
		request.SenderID, request.ReceiverID, request.Status,
	).Scan(&request.ID, &request.CreatedAt)
}

// HasActiveRequest reports whether a non-rejected request already exists from
// the sender to the receiver. The check runs in that direction only; a request
// the other way does not count.
func (r *FriendRequestRepository) HasActiveRequest(ctx context.Context, senderID, receiverID int64) (bool, error) {
	var exists bool
	err := r.db.Pool.QueryRow(ctx, `
		SELECT EXISTS(
			SELECT 1 FROM friend_requests
			WHERE sender_id = $1 AND receiver_id = $2 AND status <> $3
		)`,
		senderID, receiverID, models.FriendRequestStatusRejected,
	).Scan(&exists)
	return exists, err
}

const friendRequestSelect = `
	SELECT fr.id, fr.sender_id, fr.receiver_id, fr.status, fr.created_at,
	       s.id, s.username, s.email,
	       rcv.id, rcv.username, rcv.email
	FROM friend_requests fr
	JOIN users s ON s.id = fr.sender_id
	JOIN users rcv ON rcv.id = fr.receiver_id`

// ListPendingByReceiver returns the pending requests addressed to a user,
// newest first
func (r *FriendRequestRepository) ListPendingByReceiver(ctx context.Context, receiverID int64) ([]*models.FriendRequest, error) {
	rows, err := r.db.Pool.Query(ctx,
		friendRequestSelect+" WHERE fr.receiver_id = $1 AND fr.status = $2 ORDER BY fr.created_at DESC",
		receiverID, models.FriendRequestStatusPending,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	requests := make([]*models.FriendRequest, 0)
	for rows.Next() {
		request, err := scanFriendRequest(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, request)
	}
	return requests, rows.Err()
}

// GetByIDAndReceiver retrieves a request only when it is addressed to the
// given user
func (r *FriendRequestRepository) GetByIDAndReceiver(ctx context.Context, id, receiverID int64) (*models.FriendRequest, error) {
	row := r.db.Pool.QueryRow(ctx,
		friendRequestSelect+" WHERE fr.id = $1 AND fr.receiver_id = $2",
		id, receiverID,
	)

	request, err := scanFriendRequest(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrResourceNotFound
		}
		return nil, err
	}
	return request, nil
}

// UpdateStatus sets the status of a friend request
func (r *FriendRequestRepository) UpdateStatus(ctx context.Context, id int64, status models.FriendRequestStatus) error {
	tag, err := r.db.Pool.Exec(ctx,
		"UPDATE friend_requests SET status = $1 WHERE id = $2", status, id,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrResourceNotFound
	}
	return nil
}

// ListFriends returns the users connected to the given user through an
// accepted request in either direction
func (r *FriendRequestRepository) ListFriends(ctx context.Context, userID int64) ([]*models.User, error) {
	rows, err := r.db.Pool.Query(ctx, `
		SELECT DISTINCT u.id, u.username, u.email
		FROM friend_requests fr
		JOIN users u ON u.id = CASE WHEN fr.sender_id = $1 THEN fr.receiver_id ELSE fr.sender_id END
		WHERE (fr.sender_id = $1 OR fr.receiver_id = $1) AND fr.status = $2
		ORDER BY u.username`,
		userID, models.FriendRequestStatusAccepted,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	friends := make([]*models.User, 0)
	for rows.Next() {
		user := &models.User{}
		if err := rows.Scan(&user.ID, &user.Username, &user.Email); err != nil {
			return nil, err
		}
		friends = append(friends, user)
	}
	return friends, rows.Err()
}

func scanFriendRequest(row pgx.Row) (*models.FriendRequest, error) {
	request := &models.FriendRequest{Sender: &models.User{}, Receiver: &models.User{}}
	err := row.Scan(
		&request.ID, &request.SenderID, &request.ReceiverID, &request.Status, &request.CreatedAt,
		&request.Sender.ID, &request.Sender.Username, &request.Sender.Email,
		&request.Receiver.ID, &request.Receiver.Username, &request.Receiver.Email,
	)
	if err != nil {
		return nil, err
	}
	return request, nil
}
