package models

import "time"

// User defines the user model based on the 'users' table
type User struct {
	ID        int64     `json:"id" db:"id"`
	Username  string    `json:"username" db:"username"`
	Email     string    `json:"email" db:"email"`
	Password  string    `json:"-" db:"password"` // hashed credential, excluded from JSON
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// Profile defines the one-to-one profile record based on the 'profiles' table.
// A profile is created lazily on first access, so a user may not have one yet.
type Profile struct {
	ID        int64     `json:"id" db:"id"`
	UserID    int64     `json:"user_id" db:"user_id"`
	Bio       string    `json:"bio" db:"bio"`
	Skills    string    `json:"skills" db:"skills"`
	Interests string    `json:"interests" db:"interests"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
