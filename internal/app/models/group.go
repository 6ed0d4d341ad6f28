package models

import "time"

// Group represents a study group
type Group struct {
	ID          int64     `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Description string    `json:"description" db:"description"`
	CreatedByID int64     `json:"created_by_id" db:"created_by_id"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`

	// Related entities
	CreatedBy    *User `json:"created_by,omitempty"`
	MembersCount int   `json:"members_count"`
}

// Membership represents a user belonging to a group.
// At most one membership exists per (group, user) pair.
type Membership struct {
	ID       int64     `json:"id" db:"id"`
	GroupID  int64     `json:"group_id" db:"group_id"`
	UserID   int64     `json:"user_id" db:"user_id"`
	JoinedAt time.Time `json:"joined_at" db:"joined_at"`

	// Related entities
	User *User `json:"user,omitempty"`
}
