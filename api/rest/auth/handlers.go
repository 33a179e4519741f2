package auth

import (
	"context"
	"errors"
	"net/http"

	"github.com/daytask/server/daytask/users"
	"github.com/daytask/server/internal/auth"
	apierrors "github.com/daytask/server/internal/errors"
	"github.com/daytask/server/internal/googleauth"
	"github.com/daytask/server/internal/logger"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/markbates/goth/gothic"
)

// bearer token type returned with every issued token
const tokenType = "bearer"

// the subset of the account directory the auth handlers need
type UserStore interface {
	Create(ctx context.Context, email, passwordHash, name string) (*users.User, error)
	FindByEmail(ctx context.Context, email string) (*users.User, error)
	UpdatePassword(ctx context.Context, email, passwordHash string) error
	FindOrCreateByEmail(ctx context.Context, email, passwordHash, name, profileImg, userType string) (*users.User, error)
}

// trades a provider authorization code for a profile
type Exchanger interface {
	Exchange(ctx context.Context, code string) (*googleauth.Profile, error)
}

// LoginHandler godoc
// @Summary Log in with email and password
// @Description Verify credentials and issue a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} AuthResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /api/v1/auth/login [post]
func LoginHandler(store UserStore, tokens *auth.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest

		if err := c.ShouldBindJSON(&req); err != nil {
			apierrors.ValidationError(c, err)
			return
		}

		user, err := store.FindByEmail(c.Request.Context(), req.Email)
		if err != nil {
			if errors.Is(err, users.ErrNotFound) {
				apierrors.NotFound(c, "email")
				return
			}

			apierrors.InternalError(c, "failed to look up user", err)

			return
		}

		if !auth.CheckPassword(req.Password, user.Password) {
			apierrors.Unauthorized(c, "invalid credentials")
			return
		}

		issueAuthResponse(c, tokens, user, http.StatusOK)
	}
}

// RegisterHandler godoc
// @Summary Register a new account
// @Description Create a password-based account and issue a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "New account"
// @Success 201 {object} AuthResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /api/v1/auth/register [post]
func RegisterHandler(store UserStore, tokens *auth.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RegisterRequest

		if err := c.ShouldBindJSON(&req); err != nil {
			apierrors.ValidationError(c, err)
			return
		}

		hash, err := auth.HashPassword(req.Password)
		if err != nil {
			apierrors.InternalError(c, "failed to hash password", err)
			return
		}

		user, err := store.Create(c.Request.Context(), req.Email, hash, req.Name)
		if err != nil {
			if errors.Is(err, users.ErrDuplicateEmail) {
				apierrors.Conflict(c, "email already exists")
				return
			}

			apierrors.InternalError(c, "failed to create user", err)

			return
		}

		issueAuthResponse(c, tokens, user, http.StatusCreated)
	}
}

// ChangePasswordHandler godoc
// @Summary Change account password
// @Description Replace the password after verifying the current one
// @Tags auth
// @Accept json
// @Produce json
// @Param request body ChangePasswordRequest true "Password change"
// @Success 200 {object} ChangePasswordResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /api/v1/auth/change-password [post]
func ChangePasswordHandler(store UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ChangePasswordRequest

		if err := c.ShouldBindJSON(&req); err != nil {
			apierrors.ValidationError(c, err)
			return
		}

		user, err := store.FindByEmail(c.Request.Context(), req.Email)
		if err != nil {
			if errors.Is(err, users.ErrNotFound) {
				apierrors.NotFound(c, "email")
				return
			}

			apierrors.InternalError(c, "failed to look up user", err)

			return
		}

		if !auth.CheckPassword(req.OldPassword, user.Password) {
			apierrors.Unauthorized(c, "incorrect current password")
			return
		}

		hash, err := auth.HashPassword(req.NewPassword)
		if err != nil {
			apierrors.InternalError(c, "failed to hash password", err)
			return
		}

		if err := store.UpdatePassword(c.Request.Context(), req.Email, hash); err != nil {
			apierrors.InternalError(c, "failed to update password", err)
			return
		}

		c.JSON(http.StatusOK, ChangePasswordResponse{
			Success: true,
			Message: "password updated successfully",
		})
	}
}

// CheckTokenHandler godoc
// @Summary Check token validity
// @Description Returns 200 when the bearer token verifies
// @Tags auth
// @Produce json
// @Success 200 {object} MessageResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /api/v1/auth/check [get]
// @Security BearerAuth
func CheckTokenHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, MessageResponse{Message: "token is valid"})
	}
}

// GoogleExchangeHandler godoc
// @Summary Exchange a Google authorization code
// @Description Trade an authorization code obtained out of band (mobile clients) for a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body GoogleExchangeRequest true "Authorization code"
// @Success 200 {object} AuthResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 502 {object} errors.ErrorResponse
// @Router /api/v1/auth/google/exchange [post]
func GoogleExchangeHandler(store UserStore, tokens *auth.TokenService, exchanger Exchanger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req GoogleExchangeRequest

		if err := c.ShouldBindJSON(&req); err != nil {
			apierrors.ValidationError(c, err)
			return
		}

		profile, err := exchanger.Exchange(c.Request.Context(), req.Code)
		if err != nil {
			switch {
			case errors.Is(err, googleauth.ErrMissingEmail):
				apierrors.BadRequest(c, "provider profile has no email", err)
			case errors.Is(err, googleauth.ErrCodeRejected):
				apierrors.BadRequest(c, "authorization code rejected", err)
			default:
				apierrors.UpstreamError(c, "identity provider unavailable", err)
			}

			return
		}

		resolveGoogleUser(c, store, tokens, profile)
	}
}

// BeginGoogleHandler godoc
// @Summary Start Google OAuth
// @Description Redirect the browser to Google's consent screen
// @Tags auth
// @Success 302 {string} string "Redirect to Google"
// @Router /api/v1/auth/google [get]
func BeginGoogleHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		setProviderParam(c)
		gothic.BeginAuthHandler(c.Writer, c.Request)
	}
}

// GoogleCallbackHandler godoc
// @Summary Google OAuth callback
// @Description Complete the browser OAuth flow and issue a bearer token
// @Tags auth
// @Produce json
// @Success 200 {object} AuthResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 502 {object} errors.ErrorResponse
// @Router /api/v1/auth/google/callback [get]
func GoogleCallbackHandler(store UserStore, tokens *auth.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		setProviderParam(c)

		gothUser, err := gothic.CompleteUserAuth(c.Writer, c.Request)
		if err != nil {
			apierrors.UpstreamError(c, "authentication with provider failed", err)
			return
		}

		profile, err := googleauth.ProfileFromUser(gothUser)
		if err != nil {
			apierrors.BadRequest(c, "provider profile has no email", err)
			return
		}

		resolveGoogleUser(c, store, tokens, profile)
	}
}

// LogoutHandler godoc
// @Summary Logout
// @Description Clear the OAuth browser session. Issued bearer tokens stay valid until expiry.
// @Tags auth
// @Produce json
// @Success 200 {object} MessageResponse
// @Router /api/v1/auth/logout [post]
func LogoutHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := gothic.Logout(c.Writer, c.Request); err != nil {
			logger.ErrorErr(err, "failed to clear oauth session")
		}

		c.JSON(http.StatusOK, MessageResponse{Message: "logged out successfully"})
	}
}

// upserts the principal for a provider profile and issues a token.
// First login creates the account with an unusable placeholder credential;
// later logins reuse the account unchanged.
func resolveGoogleUser(c *gin.Context, store UserStore, tokens *auth.TokenService, profile *googleauth.Profile) {
	placeholder, err := auth.HashPassword(uuid.NewString())
	if err != nil {
		apierrors.InternalError(c, "failed to create placeholder credential", err)
		return
	}

	user, err := store.FindOrCreateByEmail(
		c.Request.Context(),
		profile.Email,
		placeholder,
		profile.Name,
		profile.AvatarURL,
		users.TypeGoogle,
	)

	if err != nil {
		apierrors.InternalError(c, "failed to resolve user", err)
		return
	}

	issueAuthResponse(c, tokens, user, http.StatusOK)
}

// issues a token for the user and writes the auth response
func issueAuthResponse(c *gin.Context, tokens *auth.TokenService, user *users.User, status int) {
	token, err := tokens.Issue(user.ID)
	if err != nil {
		apierrors.InternalError(c, "failed to generate token", err)
		return
	}

	c.JSON(status, AuthResponse{
		AccessToken: token,
		TokenType:   tokenType,
		User:        user,
	})
}

// gothic resolves the provider from the query string
func setProviderParam(c *gin.Context) {
	q := c.Request.URL.Query()
	q.Add("provider", "google")
	c.Request.URL.RawQuery = q.Encode()
}
