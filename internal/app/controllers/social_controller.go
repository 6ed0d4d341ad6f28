package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/studysphere/studysphere/internal/app/models/dto"
	"github.com/studysphere/studysphere/internal/app/services"
	"github.com/studysphere/studysphere/internal/middleware"
)

// SocialController handles friend request operations
type SocialController struct {
	socialService services.SocialService
}

// NewSocialController creates a new SocialController
func NewSocialController(socialService services.SocialService) *SocialController {
	return &SocialController{socialService: socialService}
}

// SendFriendRequest sends a friend request
// @Summary Send a friend request
// @Description Creates a pending friend request to another user
// @Tags friends
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.SendFriendRequestRequest true "Receiver"
// @Success 201 {object} dto.SendFriendRequestResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid receiver or duplicate request"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Receiver not found"
// @Router /friends/send/ [post]
func (c *SocialController) SendFriendRequest(ctx *gin.Context) {
	userID, _ := middleware.GetUserID(ctx)

	var req dto.SendFriendRequestRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	resp, err := c.socialService.SendFriendRequest(ctx, userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, resp)
}

// ListPendingRequests lists pending friend requests addressed to the caller
// @Summary List pending friend requests
// @Description Lists the friend requests waiting for the authenticated user's answer
// @Tags friends
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.FriendRequestResponse
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /friends/requests/ [get]
func (c *SocialController) ListPendingRequests(ctx *gin.Context) {
	userID, _ := middleware.GetUserID(ctx)

	requests, err := c.socialService.ListPendingRequests(ctx, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, requests)
}

// RespondToRequest accepts or rejects a friend request
// @Summary Respond to a friend request
// @Description Accepts or rejects a request addressed to the authenticated user
// @Tags friends
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Request ID"
// @Param request body dto.RespondFriendRequestRequest true "accept or reject"
// @Success 200 {object} dto.FriendRequestResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid action"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Request not found"
// @Router /friends/requests/{id}/respond/ [post]
func (c *SocialController) RespondToRequest(ctx *gin.Context) {
	userID, _ := middleware.GetUserID(ctx)

	requestID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.ErrorCodeValidationFailed, "Request ID must be a valid number."))
		return
	}

	var req dto.RespondFriendRequestRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	resp, err := c.socialService.RespondToRequest(ctx, userID, requestID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// ListFriends lists the caller's friends
// @Summary List friends
// @Description Lists the users connected to the caller through accepted requests
// @Tags friends
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.UserResponse
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /friends/ [get]
func (c *SocialController) ListFriends(ctx *gin.Context) {
	userID, _ := middleware.GetUserID(ctx)

	friends, err := c.socialService.ListFriends(ctx, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, friends)
}
