package repositories

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	"github.com/studysphere/studysphere/internal/app/models"
	"github.com/studysphere/studysphere/internal/db"
)

// IProfileRepository defines the interface for profile-related database operations
type IProfileRepository interface {
	GetOrCreate(ctx context.Context, userID int64) (*models.Profile, error)
	Update(ctx context.Context, userID int64, bio, skills, interests *string) (*models.Profile, error)
}

// ProfileRepository handles database operations for user profiles
type ProfileRepository struct {
	db *db.PostgresDB
}

// NewProfileRepository creates a new ProfileRepository instance
func NewProfileRepository(db *db.PostgresDB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

// GetOrCreate returns the profile for a user, creating an empty one if none exists.
// The insert relies on the unique constraint on user_id so concurrent calls
// converge on a single row.
func (r *ProfileRepository) GetOrCreate(ctx context.Context, userID int64) (*models.Profile, error) {
	insert := `
		INSERT INTO profiles (user_id, bio, skills, interests, created_at)
		VALUES ($1, '', '', '', NOW())
		ON CONFLICT (user_id) DO NOTHING`

	if _, err := r.db.Pool.Exec(ctx, insert, userID); err != nil {
		return nil, err
	}

	profile := &models.Profile{}
	err := r.db.Pool.QueryRow(ctx, `
		SELECT id, user_id, bio, skills, interests, created_at
		FROM profiles WHERE user_id = $1`, userID,
	).Scan(&profile.ID, &profile.UserID, &profile.Bio, &profile.Skills, &profile.Interests, &profile.CreatedAt)
	if err != nil {
		return nil, err
	}
	return profile, nil
}

// Update applies the provided fields to a user's profile. Nil fields keep
// their current value.
func (r *ProfileRepository) Update(ctx context.Context, userID int64, bio, skills, interests *string) (*models.Profile, error) {
	// Ensure the row exists before updating
	if _, err := r.GetOrCreate(ctx, userID); err != nil {
		return nil, err
	}

	update := sq.Update("profiles").
		Where(sq.Eq{"user_id": userID}).
		PlaceholderFormat(sq.Dollar)

	changed := false
	if bio != nil {
		update = update.Set("bio", *bio)
		changed = true
	}
	if skills != nil {
		update = update.Set("skills", *skills)
		changed = true
	}
	if interests != nil {
		update = update.Set("interests", *interests)
		changed = true
	}

	if changed {
		sqlQuery, args, err := update.ToSql()
		if err != nil {
			return nil, err
		}
		if _, err := r.db.Pool.Exec(ctx, sqlQuery, args...); err != nil {
			return nil, err
		}
	}

	return r.GetOrCreate(ctx, userID)
}
