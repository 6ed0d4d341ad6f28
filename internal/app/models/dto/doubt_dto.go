package dto

import "time"

// CreateDoubtRequest represents a request to post a doubt to a group
type CreateDoubtRequest struct {
	GroupID      int64  `json:"group_id" binding:"required"`
	Title        string `json:"title" binding:"required"`
	Body         string `json:"body" binding:"required"`
	DirectedToID *int64 `json:"directed_to_id"`
}

// DoubtResponse represents a doubt with its group, users and replies
type DoubtResponse struct {
	ID         int64                `json:"id"`
	Title      string               `json:"title"`
	Body       string               `json:"body"`
	Group      *GroupResponse       `json:"group,omitempty"`
	AskedBy    *UserResponse        `json:"asked_by,omitempty"`
	DirectedTo *UserResponse        `json:"directed_to,omitempty"`
	Status     string               `json:"status"`
	CreatedAt  time.Time            `json:"created_at"`
	Replies    []DoubtReplyResponse `json:"replies"`
}

// DoubtReplyRequest represents a request to reply to a doubt
type DoubtReplyRequest struct {
	Text string `json:"text" binding:"required"`
}

// DoubtReplyResponse represents a single reply on a doubt
type DoubtReplyResponse struct {
	ID         int64         `json:"id"`
	User       *UserResponse `json:"user,omitempty"`
	Text       string        `json:"text"`
	IsSolution bool          `json:"is_solution"`
	CreatedAt  time.Time     `json:"created_at"`
}

// MarkSolutionRequest represents a request to mark a reply as the solution
type MarkSolutionRequest struct {
	ReplyID int64 `json:"reply_id" binding:"required"`
}
