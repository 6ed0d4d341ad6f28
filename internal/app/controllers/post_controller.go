package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/studysphere/studysphere/internal/app/models/dto"
	"github.com/studysphere/studysphere/internal/app/services"
	"github.com/studysphere/studysphere/internal/middleware"
)

// PostController handles feed operations
type PostController struct {
	postService services.PostService
}

// NewPostController creates a new PostController
func NewPostController(postService services.PostService) *PostController {
	return &PostController{postService: postService}
}

// ListPosts lists all posts
// @Summary List posts
// @Description Lists all posts newest first, with comments and reaction counts
// @Tags posts
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.PostResponse
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /posts/ [get]
func (c *PostController) ListPosts(ctx *gin.Context) {
	posts, err := c.postService.ListPosts(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, posts)
}

// CreatePost creates a post
// @Summary Create a post
// @Description Creates a feed post, optionally scoped to a group and carrying an image
// @Tags posts
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param content formData string true "Post content"
// @Param post_type formData string false "Post type"
// @Param group_id formData int false "Group scope"
// @Param image formData file false "Image attachment"
// @Success 201 {object} dto.PostResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Group not found"
// @Router /posts/ [post]
func (c *PostController) CreatePost(ctx *gin.Context) {
	userID, _ := middleware.GetUserID(ctx)

	var req dto.CreatePostRequest
	if err := ctx.ShouldBind(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	// Image is optional; a missing form file is not an error
	image, _ := ctx.FormFile("image")

	post, err := c.postService.CreatePost(ctx, userID, &req, image)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, post)
}

// AddComment comments on a post
// @Summary Comment on a post
// @Description Adds a comment to a post
// @Tags posts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Post ID"
// @Param request body dto.CommentRequest true "Comment text"
// @Success 201 {object} dto.CommentResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Post not found"
// @Router /posts/{id}/comment/ [post]
func (c *PostController) AddComment(ctx *gin.Context) {
	userID, _ := middleware.GetUserID(ctx)

	postID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.ErrorCodeValidationFailed, "Post ID must be a valid number."))
		return
	}

	var req dto.CommentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	comment, err := c.postService.AddComment(ctx, userID, postID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, comment)
}

// ReactToPost reacts to a post
// @Summary React to a post
// @Description Stores the caller's reaction; reacting again replaces the previous one
// @Tags posts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Post ID"
// @Param request body dto.ReactionRequest true "helpful or not_clear"
// @Success 200 {object} dto.ReactionResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid reaction"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Post not found"
// @Router /posts/{id}/react/ [post]
func (c *PostController) ReactToPost(ctx *gin.Context) {
	userID, _ := middleware.GetUserID(ctx)

	postID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.ErrorCodeValidationFailed, "Post ID must be a valid number."))
		return
	}

	var req dto.ReactionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	resp, err := c.postService.ReactToPost(ctx, userID, postID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}
