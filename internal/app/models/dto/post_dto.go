package dto

import "time"

// CreatePostRequest represents a multipart request to create a post.
// An image file may accompany the form fields.
type CreatePostRequest struct {
	Content  string `form:"content" binding:"required"`
	PostType string `form:"post_type"`
	GroupID  *int64 `form:"group_id"`
}

// PostResponse represents a post with its author, comments and reaction count
type PostResponse struct {
	ID                int64             `json:"id"`
	Author            *UserResponse     `json:"author,omitempty"`
	Group             *int64            `json:"group"`
	GroupName         *string           `json:"group_name"`
	Content           string            `json:"content"`
	PostType          string            `json:"post_type"`
	Image             *string           `json:"image"`
	CreatedAt         time.Time         `json:"created_at"`
	Comments          []CommentResponse `json:"comments"`
	InteractionsCount int               `json:"interactions_count"`
}

// CommentRequest represents a request to comment on a post
type CommentRequest struct {
	Text string `json:"text" binding:"required"`
}

// CommentResponse represents a single comment on a post
type CommentResponse struct {
	ID        int64         `json:"id"`
	User      *UserResponse `json:"user,omitempty"`
	Text      string        `json:"text"`
	CreatedAt time.Time     `json:"created_at"`
}

// ReactionRequest represents a request to react to a post
type ReactionRequest struct {
	Reaction string `json:"reaction" binding:"required"`
}

// ReactionResponse wraps the stored reaction confirmation
type ReactionResponse struct {
	Message  string `json:"message"`
	Reaction string `json:"reaction"`
}
