package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/studysphere/studysphere/internal/app/models/dto"
	"github.com/studysphere/studysphere/internal/app/services"
	"github.com/studysphere/studysphere/internal/middleware"
)

// ProfileController handles profile operations
type ProfileController struct {
	profileService services.ProfileService
}

// NewProfileController creates a new ProfileController
func NewProfileController(profileService services.ProfileService) *ProfileController {
	return &ProfileController{profileService: profileService}
}

// GetProfile returns the caller's profile
// @Summary Get own profile
// @Description Returns the authenticated user's profile, creating an empty one on first access
// @Tags accounts
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.ProfileDetailResponse
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /accounts/profile/ [get]
func (c *ProfileController) GetProfile(ctx *gin.Context) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(dto.ErrorCodeUnauthorized, "Authentication required."))
		return
	}

	resp, err := c.profileService.GetProfile(ctx, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// UpdateProfile applies a partial update to the caller's profile
// @Summary Update own profile
// @Description Updates bio, skills and interests; omitted fields keep their value
// @Tags accounts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpdateProfileRequest true "Profile fields"
// @Success 200 {object} dto.UpdateProfileResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /accounts/profile/ [put]
func (c *ProfileController) UpdateProfile(ctx *gin.Context) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(dto.ErrorCodeUnauthorized, "Authentication required."))
		return
	}

	var req dto.UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	resp, err := c.profileService.UpdateProfile(ctx, userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}
