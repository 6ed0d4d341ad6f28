package models

import "time"

// PostType defines the known post categories. Post creation does not reject
// values outside this set; the column stores whatever the client sent.
type PostType string

const (
	PostTypeQuestion PostType = "question"
	PostTypeTip      PostType = "tip"
	PostTypeProject  PostType = "project"
)

// Reaction defines the per-user sentiment tags for a post
type Reaction string

const (
	ReactionHelpful  Reaction = "helpful"
	ReactionNotClear Reaction = "not_clear"
)

// Post represents a feed entry, optionally scoped to a group
type Post struct {
	ID        int64     `json:"id" db:"id"`
	AuthorID  int64     `json:"author_id" db:"author_id"`
	GroupID   *int64    `json:"group_id,omitempty" db:"group_id"`
	Content   string    `json:"content" db:"content"`
	PostType  string    `json:"post_type" db:"post_type"`
	ImageURL  *string   `json:"image,omitempty" db:"image_url"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`

	// Related entities
	Author            *User      `json:"author,omitempty"`
	GroupName         *string    `json:"group_name,omitempty"`
	Comments          []*Comment `json:"comments,omitempty"`
	InteractionsCount int        `json:"interactions_count"`
}

// Comment represents a comment on a post
type Comment struct {
	ID        int64     `json:"id" db:"id"`
	PostID    int64     `json:"post_id" db:"post_id"`
	UserID    int64     `json:"user_id" db:"user_id"`
	Text      string    `json:"text" db:"text"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`

	// Related entities
	User *User `json:"user,omitempty"`
}

// PostInteraction represents a user's reaction to a post.
// At most one interaction exists per (post, user) pair; re-reacting overwrites.
type PostInteraction struct {
	ID        int64     `json:"id" db:"id"`
	PostID    int64     `json:"post_id" db:"post_id"`
	UserID    int64     `json:"user_id" db:"user_id"`
	Reaction  Reaction  `json:"reaction" db:"reaction"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
