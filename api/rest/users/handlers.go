package users

import (
	"context"
	"errors"
	"net/http"

	"github.com/daytask/server/daytask/users"
	"github.com/daytask/server/internal/auth"
	apierrors "github.com/daytask/server/internal/errors"
	"github.com/gin-gonic/gin"
)

// the subset of the account directory the user handlers need
type UserStore interface {
	FindByID(ctx context.Context, id string) (*users.User, error)
	UpdateProfile(ctx context.Context, id, name, profileImg, userType string) (*users.User, error)
}

// GetCurrentUserHandler godoc
// @Summary Get current user
// @Description Return the authenticated user's profile
// @Tags users
// @Produce json
// @Success 200 {object} UserResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /api/v1/user [get]
// @Security BearerAuth
func GetCurrentUserHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := auth.CurrentUser(c)
		if !ok {
			apierrors.Unauthorized(c, "")
			return
		}

		c.JSON(http.StatusOK, UserResponse{User: user})
	}
}

// EditCurrentUserHandler godoc
// @Summary Edit current user
// @Description Update the authenticated user's name, profile image and account type
// @Tags users
// @Accept json
// @Produce json
// @Param request body EditUserRequest true "Profile update"
// @Success 200 {object} UserResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /api/v1/user/edit [put]
// @Security BearerAuth
func EditCurrentUserHandler(store UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := auth.UserID(c)
		if !ok {
			apierrors.Unauthorized(c, "")
			return
		}

		var req EditUserRequest

		if err := c.ShouldBindJSON(&req); err != nil {
			apierrors.ValidationError(c, err)
			return
		}

		user, err := store.UpdateProfile(c.Request.Context(), userID, req.Name, req.ProfileImg, req.UserType)
		if err != nil {
			if errors.Is(err, users.ErrNotFound) {
				apierrors.NotFound(c, "user")
				return
			}

			apierrors.InternalError(c, "failed to update profile", err)

			return
		}

		c.JSON(http.StatusOK, UserResponse{User: user})
	}
}

// GetUserByIDHandler godoc
// @Summary Get a user by id
// @Description Return another user's public profile; requires a valid token but no principal resolution
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} UserResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /api/v1/users/{id} [get]
// @Security BearerAuth
func GetUserByIDHandler(store UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := apierrors.ValidatePathUUID(c, "id")
		if !ok {
			return
		}

		user, err := store.FindByID(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, users.ErrNotFound) {
				apierrors.NotFound(c, "user")
				return
			}

			apierrors.InternalError(c, "failed to fetch user", err)

			return
		}

		c.JSON(http.StatusOK, UserResponse{User: user})
	}
}
