package repositories

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/studysphere/studysphere/internal/app/models"
	"github.com/studysphere/studysphere/internal/db"
	"github.com/studysphere/studysphere/internal/pkg/apperrors"
)

// IPostRepository defines the interface for post-related database operations
type IPostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, id int64) (*models.Post, error)
	GetAll(ctx context.Context) ([]*models.Post, error)
	Exists(ctx context.Context, id int64) (bool, error)
	CreateComment(ctx context.Context, comment *models.Comment) error
	UpsertReaction(ctx context.Context, interaction *models.PostInteraction) error
}

// PostRepository handles database operations for posts, comments and reactions
type PostRepository struct {
	db *db.PostgresDB
}

// NewPostRepository creates a new PostRepository instance
func NewPostRepository(db *db.PostgresDB) *PostRepository {
	return &PostRepository{db: db}
}

// Create inserts a new post
func (r *PostRepository) Create(ctx context.Context, post *models.Post) error {
	return r.db.Pool.QueryRow(ctx, `
		INSERT INTO posts (author_id, group_id, content, post_type, image_url, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING id, created_at`,
		post.AuthorID, post.GroupID, post.Content, post.PostType, post.ImageURL,
	).Scan(&post.ID, &post.CreatedAt)
}

// GetByID retrieves a post with its author, group name, comments and
// interaction count
func (r *PostRepository) GetByID(ctx context.Context, id int64) (*models.Post, error) {
	posts, err := r.list(ctx, sq.Eq{"p.id": id})
	if err != nil {
		return nil, err
	}
	if len(posts) == 0 {
		return nil, apperrors.ErrResourceNotFound
	}
	return posts[0], nil
}

// GetAll lists all posts, newest first
func (r *PostRepository) GetAll(ctx context.Context) ([]*models.Post, error) {
	return r.list(ctx, nil)
}

func (r *PostRepository) list(ctx context.Context, where interface{}) ([]*models.Post, error) {
	query := sq.Select(
		"p.id", "p.author_id", "p.group_id", "p.content", "p.post_type", "p.image_url", "p.created_at",
		"u.id", "u.username", "u.email",
		"g.name",
		"(SELECT COUNT(*) FROM post_interactions pi WHERE pi.post_id = p.id)",
	).
		From("posts p").
		Join("users u ON u.id = p.author_id").
		LeftJoin("groups g ON g.id = p.group_id").
		OrderBy("p.created_at DESC").
		PlaceholderFormat(sq.Dollar)

	if where != nil {
		query = query.Where(where)
	}

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Pool.Query(ctx, sqlQuery, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	posts := make([]*models.Post, 0)
	byID := make(map[int64]*models.Post)
	for rows.Next() {
		post := &models.Post{Author: &models.User{}}
		err := rows.Scan(
			&post.ID, &post.AuthorID, &post.GroupID, &post.Content, &post.PostType, &post.ImageURL, &post.CreatedAt,
			&post.Author.ID, &post.Author.Username, &post.Author.Email,
			&post.GroupName,
			&post.InteractionsCount,
		)
		if err != nil {
			return nil, err
		}
		post.Comments = make([]*models.Comment, 0)
		posts = append(posts, post)
		byID[post.ID] = post
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(posts) == 0 {
		return posts, nil
	}

	ids := make([]int64, 0, len(posts))
	for _, p := range posts {
		ids = append(ids, p.ID)
	}
	if err := r.attachComments(ctx, byID, ids); err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *PostRepository) attachComments(ctx context.Context, byID map[int64]*models.Post, postIDs []int64) error {
	query := sq.Select(
		"c.id", "c.post_id", "c.user_id", "c.text", "c.created_at",
		"u.id", "u.username", "u.email",
	).
		From("comments c").
		Join("users u ON u.id = c.user_id").
		Where(sq.Eq{"c.post_id": postIDs}).
		OrderBy("c.created_at ASC").
		PlaceholderFormat(sq.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return err
	}

	rows, err := r.db.Pool.Query(ctx, sqlQuery, args...)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		comment := &models.Comment{User: &models.User{}}
		err := rows.Scan(
			&comment.ID, &comment.PostID, &comment.UserID, &comment.Text, &comment.CreatedAt,
			&comment.User.ID, &comment.User.Username, &comment.User.Email,
		)
		if err != nil {
			return err
		}
		if post, ok := byID[comment.PostID]; ok {
			post.Comments = append(post.Comments, comment)
		}
	}
	return rows.Err()
}

// Exists reports whether a post with the given ID exists
func (r *PostRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.Pool.QueryRow(ctx,
		"SELECT EXISTS(SELECT 1 FROM posts WHERE id = $1)", id,
	).Scan(&exists)
	return exists, err
}

// CreateComment inserts a comment on a post
func (r *PostRepository) CreateComment(ctx context.Context, comment *models.Comment) error {
	err := r.db.Pool.QueryRow(ctx, `
		INSERT INTO comments (post_id, user_id, text, created_at)
		VALUES ($1, $2, $3, NOW())
		RETURNING id, created_at`,
		comment.PostID, comment.UserID, comment.Text,
	).Scan(&comment.ID, &comment.CreatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return apperrors.ErrResourceNotFound
		}
		return err
	}
	return nil
}

// UpsertReaction stores a user's reaction to a post, replacing any previous
// reaction by the same user in a single statement.
func (r *PostRepository) UpsertReaction(ctx context.Context, interaction *models.PostInteraction) error {
	err := r.db.Pool.QueryRow(ctx, `
		INSERT INTO post_interactions (post_id, user_id, reaction, created_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (post_id, user_id)
		DO UPDATE SET reaction = EXCLUDED.reaction
		RETURNING id, created_at`,
		interaction.PostID, interaction.UserID, interaction.Reaction,
	).Scan(&interaction.ID, &interaction.CreatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return apperrors.ErrResourceNotFound
		}
		return err
	}
	return nil
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23503"
}
