package dto

import "time"

// CreateGroupRequest represents a request to create a new group
type CreateGroupRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// GroupResponse represents a group with its creator and member count
type GroupResponse struct {
	ID           int64         `json:"id"`
	Name         string        `json:"name"`
	Description  string        `json:"description"`
	CreatedBy    *UserResponse `json:"created_by,omitempty"`
	CreatedAt    time.Time     `json:"created_at"`
	MembersCount int           `json:"members_count"`
}

// MembershipResponse represents a group membership record
type MembershipResponse struct {
	ID       int64         `json:"id"`
	GroupID  int64         `json:"group_id"`
	User     *UserResponse `json:"user,omitempty"`
	JoinedAt time.Time     `json:"joined_at"`
}

// JoinGroupResponse wraps the created membership with a confirmation message
type JoinGroupResponse struct {
	Message    string             `json:"message"`
	Membership MembershipResponse `json:"membership"`
}
