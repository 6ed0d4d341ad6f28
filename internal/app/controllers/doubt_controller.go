package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/studysphere/studysphere/internal/app/models/dto"
	"github.com/studysphere/studysphere/internal/app/services"
	"github.com/studysphere/studysphere/internal/middleware"
)

// DoubtController handles doubt and reply operations
type DoubtController struct {
	doubtService services.DoubtService
}

// NewDoubtController creates a new DoubtController
func NewDoubtController(doubtService services.DoubtService) *DoubtController {
	return &DoubtController{doubtService: doubtService}
}

// ListDoubts lists doubts
// @Summary List doubts
// @Description Lists doubts with their replies, newest first, optionally filtered by group
// @Tags doubts
// @Produce json
// @Security BearerAuth
// @Param group_id query int false "Filter by group"
// @Success 200 {array} dto.DoubtResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid group filter"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /doubts/ [get]
func (c *DoubtController) ListDoubts(ctx *gin.Context) {
	var groupID *int64
	if raw := ctx.Query("group_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.ErrorCodeValidationFailed, "group_id must be a valid number."))
			return
		}
		groupID = &id
	}

	doubts, err := c.doubtService.ListDoubts(ctx, groupID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, doubts)
}

// CreateDoubt posts a doubt to a group
// @Summary Create a doubt
// @Description Posts a question to a group the caller belongs to, optionally directed at a member
// @Tags doubts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateDoubtRequest true "Doubt data"
// @Success 201 {object} dto.DoubtResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Not a group member"
// @Failure 404 {object} dto.ErrorResponse "Group or target user not found"
// @Router /doubts/ [post]
func (c *DoubtController) CreateDoubt(ctx *gin.Context) {
	userID, _ := middleware.GetUserID(ctx)

	var req dto.CreateDoubtRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	doubt, err := c.doubtService.CreateDoubt(ctx, userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, doubt)
}

// ListAssignedDoubts lists doubts directed at the caller
// @Summary List assigned doubts
// @Description Lists the doubts directed at the authenticated user, newest first
// @Tags doubts
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.DoubtResponse
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /doubts/assigned/ [get]
func (c *DoubtController) ListAssignedDoubts(ctx *gin.Context) {
	userID, _ := middleware.GetUserID(ctx)

	doubts, err := c.doubtService.ListAssignedDoubts(ctx, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, doubts)
}

// ReplyToDoubt adds a reply to a doubt
// @Summary Reply to a doubt
// @Description Adds a reply; the caller must belong to the doubt's group
// @Tags doubts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Doubt ID"
// @Param request body dto.DoubtReplyRequest true "Reply text"
// @Success 201 {object} dto.DoubtReplyResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Not a group member"
// @Failure 404 {object} dto.ErrorResponse "Doubt not found"
// @Router /doubts/{id}/reply/ [post]
func (c *DoubtController) ReplyToDoubt(ctx *gin.Context) {
	userID, _ := middleware.GetUserID(ctx)

	doubtID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.ErrorCodeValidationFailed, "Doubt ID must be a valid number."))
		return
	}

	var req dto.DoubtReplyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	reply, err := c.doubtService.ReplyToDoubt(ctx, userID, doubtID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, reply)
}

// MarkSolution marks a reply as the doubt's solution
// @Summary Mark a solution
// @Description Marks one reply as the accepted answer; only the asker may do this
// @Tags doubts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Doubt ID"
// @Param request body dto.MarkSolutionRequest true "Reply to mark"
// @Success 200 {object} dto.DoubtResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Caller is not the asker"
// @Failure 404 {object} dto.ErrorResponse "Doubt or reply not found"
// @Router /doubts/{id}/solution/ [post]
func (c *DoubtController) MarkSolution(ctx *gin.Context) {
	userID, _ := middleware.GetUserID(ctx)

	doubtID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.ErrorCodeValidationFailed, "Doubt ID must be a valid number."))
		return
	}

	var req dto.MarkSolutionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	doubt, err := c.doubtService.MarkSolution(ctx, userID, doubtID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, doubt)
}
