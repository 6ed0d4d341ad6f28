package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/studysphere/studysphere/internal/app/models/dto"
	"github.com/studysphere/studysphere/internal/app/services"
	"github.com/studysphere/studysphere/internal/middleware"
)

// GroupController handles study group operations
type GroupController struct {
	groupService services.GroupService
}

// NewGroupController creates a new GroupController
func NewGroupController(groupService services.GroupService) *GroupController {
	return &GroupController{groupService: groupService}
}

// ListGroups lists all groups
// @Summary List groups
// @Description Lists all study groups, newest first
// @Tags groups
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.GroupResponse
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /groups/ [get]
func (c *GroupController) ListGroups(ctx *gin.Context) {
	groups, err := c.groupService.ListGroups(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, groups)
}

// CreateGroup creates a group
// @Summary Create a group
// @Description Creates a study group and enrolls the creator as its first member
// @Tags groups
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateGroupRequest true "Group data"
// @Success 201 {object} dto.GroupResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /groups/ [post]
func (c *GroupController) CreateGroup(ctx *gin.Context) {
	userID, _ := middleware.GetUserID(ctx)

	var req dto.CreateGroupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	group, err := c.groupService.CreateGroup(ctx, userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, group)
}

// ListMyGroups lists the caller's groups
// @Summary List own groups
// @Description Lists the groups the authenticated user belongs to
// @Tags groups
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.GroupResponse
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /groups/my/ [get]
func (c *GroupController) ListMyGroups(ctx *gin.Context) {
	userID, _ := middleware.GetUserID(ctx)

	groups, err := c.groupService.ListMyGroups(ctx, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, groups)
}

// JoinGroup joins a group
// @Summary Join a group
// @Description Adds the authenticated user to the group's members
// @Tags groups
// @Produce json
// @Security BearerAuth
// @Param id path int true "Group ID"
// @Success 201 {object} dto.JoinGroupResponse
// @Failure 400 {object} dto.ErrorResponse "Already a member"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Group not found"
// @Router /groups/{id}/join/ [post]
func (c *GroupController) JoinGroup(ctx *gin.Context) {
	userID, _ := middleware.GetUserID(ctx)

	groupID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.ErrorCodeValidationFailed, "Group ID must be a valid number."))
		return
	}

	resp, err := c.groupService.JoinGroup(ctx, groupID, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, resp)
}

// LeaveGroup leaves a group
// @Summary Leave a group
// @Description Removes the authenticated user from the group's members
// @Tags groups
// @Produce json
// @Security BearerAuth
// @Param id path int true "Group ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse "Not a member"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Group not found"
// @Router /groups/{id}/leave/ [post]
func (c *GroupController) LeaveGroup(ctx *gin.Context) {
	userID, _ := middleware.GetUserID(ctx)

	groupID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.ErrorCodeValidationFailed, "Group ID must be a valid number."))
		return
	}

	resp, err := c.groupService.LeaveGroup(ctx, groupID, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}
