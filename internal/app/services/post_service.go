package services

import (
	"context"
	"errors"
	"mime/multipart"

	"github.com/rs/zerolog"

	"github.com/studysphere/studysphere/internal/app/models"
	"github.com/studysphere/studysphere/internal/app/models/dto"
	"github.com/studysphere/studysphere/internal/app/repositories"
	"github.com/studysphere/studysphere/internal/pkg/apperrors"
	"github.com/studysphere/studysphere/internal/pkg/filestorage"
)

// PostService defines the interface for feed operations
type PostService interface {
	CreatePost(ctx context.Context, userID int64, req *dto.CreatePostRequest, image *multipart.FileHeader) (*dto.PostResponse, error)
	ListPosts(ctx context.Context) ([]*dto.PostResponse, error)
	AddComment(ctx context.Context, userID, postID int64, req *dto.CommentRequest) (*dto.CommentResponse, error)
	ReactToPost(ctx context.Context, userID, postID int64, req *dto.ReactionRequest) (*dto.ReactionResponse, error)
}

type postService struct {
	postRepo  repositories.IPostRepository
	groupRepo repositories.IGroupRepository
	userRepo  repositories.IUserRepository
	storage   filestorage.FileStorage
	logger    zerolog.Logger
}

// NewPostService creates a new PostService instance
func NewPostService(
	postRepo repositories.IPostRepository,
	groupRepo repositories.IGroupRepository,
	userRepo repositories.IUserRepository,
	storage filestorage.FileStorage,
	logger zerolog.Logger,
) PostService {
	return &postService{
		postRepo:  postRepo,
		groupRepo: groupRepo,
		userRepo:  userRepo,
		storage:   storage,
		logger:    logger,
	}
}

// CreatePost creates a feed post, optionally scoped to a group and carrying
// an uploaded image. The post type is stored as sent; an empty value falls
// back to "question".
func (s *postService) CreatePost(ctx context.Context, userID int64, req *dto.CreatePostRequest, image *multipart.FileHeader) (*dto.PostResponse, error) {
	if req.GroupID != nil {
		if _, err := s.groupRepo.GetByID(ctx, *req.GroupID); err != nil {
			if errors.Is(err, apperrors.ErrResourceNotFound) {
				return nil, apperrors.NewResourceNotFoundError("Group not found.")
			}
			return nil, err
		}
	}

	postType := req.PostType
	if postType == "" {
		postType = string(models.PostTypeQuestion)
	}

	post := &models.Post{
		AuthorID: userID,
		GroupID:  req.GroupID,
		Content:  req.Content,
		PostType: postType,
	}

	if image != nil {
		path, err := s.storage.SaveFileWithPath(image, "posts")
		if err != nil {
			s.logger.Error().Err(err).Int64("userID", userID).Msg("Failed to store post image")
			return nil, err
		}
		post.ImageURL = &path
	}

	if err := s.postRepo.Create(ctx, post); err != nil {
		s.logger.Error().Err(err).Int64("userID", userID).Msg("Failed to create post")
		return nil, err
	}

	s.logger.Info().Int64("postID", post.ID).Int64("userID", userID).Msg("Post created")

	created, err := s.postRepo.GetByID(ctx, post.ID)
	if err != nil {
		return nil, err
	}
	return toPostResponse(created), nil
}

// ListPosts lists all posts newest first, with comments and reaction counts
func (s *postService) ListPosts(ctx context.Context) ([]*dto.PostResponse, error) {
	posts, err := s.postRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.PostResponse, 0, len(posts))
	for _, post := range posts {
		responses = append(responses, toPostResponse(post))
	}
	return responses, nil
}

// AddComment adds a comment to a post
func (s *postService) AddComment(ctx context.Context, userID, postID int64, req *dto.CommentRequest) (*dto.CommentResponse, error) {
	exists, err := s.postRepo.Exists(ctx, postID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperrors.NewResourceNotFoundError("Post not found.")
	}

	comment := &models.Comment{
		PostID: postID,
		UserID: userID,
		Text:   req.Text,
	}
	if err := s.postRepo.CreateComment(ctx, comment); err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			return nil, apperrors.NewResourceNotFoundError("Post not found.")
		}
		s.logger.Error().Err(err).Int64("postID", postID).Msg("Failed to create comment")
		return nil, err
	}

	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	comment.User = user

	resp := toCommentResponse(comment)
	return &resp, nil
}

// ReactToPost stores the user's reaction to a post. Reacting again replaces
// the previous reaction.
func (s *postService) ReactToPost(ctx context.Context, userID, postID int64, req *dto.ReactionRequest) (*dto.ReactionResponse, error) {
	reaction := models.Reaction(req.Reaction)
	if reaction != models.ReactionHelpful && reaction != models.ReactionNotClear {
		return nil, apperrors.NewValidationError("Reaction must be 'helpful' or 'not_clear'.")
	}

	exists, err := s.postRepo.Exists(ctx, postID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperrors.NewResourceNotFoundError("Post not found.")
	}

	interaction := &models.PostInteraction{
		PostID:   postID,
		UserID:   userID,
		Reaction: reaction,
	}
	if err := s.postRepo.UpsertReaction(ctx, interaction); err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			return nil, apperrors.NewResourceNotFoundError("Post not found.")
		}
		s.logger.Error().Err(err).Int64("postID", postID).Msg("Failed to store reaction")
		return nil, err
	}

	return &dto.ReactionResponse{
		Message:  "Reaction saved",
		Reaction: string(interaction.Reaction),
	}, nil
}
