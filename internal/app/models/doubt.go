package models

import "time"

// DoubtStatus defines the lifecycle state of a doubt
type DoubtStatus string

const (
	DoubtStatusOpen     DoubtStatus = "open"
	DoubtStatusAnswered DoubtStatus = "answered"
	DoubtStatusClosed   DoubtStatus = "closed"
)

// Doubt represents a question posted within a group, optionally directed
// at a specific member.
type Doubt struct {
	ID           int64       `json:"id" db:"id"`
	GroupID      int64       `json:"group_id" db:"group_id"`
	AskedByID    int64       `json:"asked_by_id" db:"asked_by_id"`
	DirectedToID *int64      `json:"directed_to_id,omitempty" db:"directed_to_id"`
	Title        string      `json:"title" db:"title"`
	Body         string      `json:"body" db:"body"`
	Status       DoubtStatus `json:"status" db:"status"`
	CreatedAt    time.Time   `json:"created_at" db:"created_at"`

	// Related entities
	Group      *Group        `json:"group,omitempty"`
	AskedBy    *User         `json:"asked_by,omitempty"`
	DirectedTo *User         `json:"directed_to,omitempty"`
	Replies    []*DoubtReply `json:"replies,omitempty"`
}

// DoubtReply represents an answer to a doubt. At most one reply per doubt
// carries IsSolution = true.
type DoubtReply struct {
	ID         int64     `json:"id" db:"id"`
	DoubtID    int64     `json:"doubt_id" db:"doubt_id"`
	UserID     int64     `json:"user_id" db:"user_id"`
	Text       string    `json:"text" db:"text"`
	IsSolution bool      `json:"is_solution" db:"is_solution"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`

	// Related entities
	User *User `json:"user,omitempty"`
}
