package dto

import "time"

// SendFriendRequestRequest represents a request to send a friend request
type SendFriendRequestRequest struct {
	ReceiverID int64 `json:"receiver_id" binding:"required"`
}

// FriendRequestResponse represents a friend request between two users
type FriendRequestResponse struct {
	ID        int64         `json:"id"`
	Sender    *UserResponse `json:"sender,omitempty"`
	Receiver  *UserResponse `json:"receiver,omitempty"`
	Status    string        `json:"status"`
	CreatedAt time.Time     `json:"created_at"`
}

// RespondFriendRequestRequest represents an accept/reject decision on a friend request
type RespondFriendRequestRequest struct {
	Action string `json:"action" binding:"required"`
}

// SendFriendRequestResponse wraps the confirmation message for a sent request
type SendFriendRequestResponse struct {
	Message string                `json:"message"`
	Request FriendRequestResponse `json:"request"`
}
