package dto

import "time"

// ProfileResponse represents a user's profile record
type ProfileResponse struct {
	ID        int64     `json:"id"`
	Bio       string    `json:"bio"`
	Skills    string    `json:"skills"`
	Interests string    `json:"interests"`
	CreatedAt time.Time `json:"created_at"`
}

// ProfileDetailResponse bundles the user with their profile
type ProfileDetailResponse struct {
	User    UserResponse    `json:"user"`
	Profile ProfileResponse `json:"profile"`
}

// UpdateProfileRequest represents a partial profile update. Nil fields are
// left untouched; unknown fields are ignored by the JSON decoder.
type UpdateProfileRequest struct {
	Bio       *string `json:"bio"`
	Skills    *string `json:"skills" binding:"omitempty,max=200"`
	Interests *string `json:"interests" binding:"omitempty,max=200"`
}

// UpdateProfileResponse wraps the updated profile with a confirmation message
type UpdateProfileResponse struct {
	Message string          `json:"message"`
	Profile ProfileResponse `json:"profile"`
}
