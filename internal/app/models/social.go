package models

import "time"

// FriendRequestStatus defines the lifecycle state of a friend request
type FriendRequestStatus string

const (
	FriendRequestStatusPending  FriendRequestStatus = "pending"
	FriendRequestStatusAccepted FriendRequestStatus = "accepted"
	FriendRequestStatusRejected FriendRequestStatus = "rejected"
)

// FriendRequest represents a directional friendship proposal between two users.
// Only a rejected request frees the (sender, receiver) pair for resubmission.
type FriendRequest struct {
	ID         int64               `json:"id" db:"id"`
	SenderID   int64               `json:"sender_id" db:"sender_id"`
	ReceiverID int64               `json:"receiver_id" db:"receiver_id"`
	Status     FriendRequestStatus `json:"status" db:"status"`
	CreatedAt  time.Time           `json:"created_at" db:"created_at"`

	// Related entities
	Sender   *User `json:"sender,omitempty"`
	Receiver *User `json:"receiver,omitempty"`
}
