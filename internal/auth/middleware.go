package auth

import (
	"context"
	"strings"

	"github.com/daytask/server/daytask/users"
	"github.com/daytask/server/internal/errors"
	"github.com/daytask/server/internal/logger"
	"github.com/gin-gonic/gin"
)

// context keys set by the gates
const (
	ctxUserIDKey = "user_id"
	ctxUserKey   = "current_user"
)

// looks up a principal by id for the full-resolution gate
type UserFinder interface {
	FindByID(ctx context.Context, id string) (*users.User, error)
}

// validity-only gate: verifies the bearer token and stores the subject id
// in the context. Every failure collapses to a single 401; the internal
// failure kind is logged only.
func RequireToken(tokens *TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := verifyRequest(c, tokens)
		if !ok {
			return
		}

		c.Set(ctxUserIDKey, claims.UserID)
		c.Next()
	}
}

// full-resolution gate: verifies the bearer token and resolves the acting
// principal. A valid token whose principal no longer exists is rejected
// exactly like an invalid token.
func RequireUser(tokens *TokenService, finder UserFinder) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := verifyRequest(c, tokens)
		if !ok {
			return
		}

		user, err := finder.FindByID(c.Request.Context(), claims.UserID)
		if err != nil {
			logger.Debug("rejected token for unresolvable user", "user_id", claims.UserID)
			errors.Unauthorized(c, "invalid or expired token")
			c.Abort()

			return
		}

		c.Set(ctxUserIDKey, user.ID)
		c.Set(ctxUserKey, user)
		c.Next()
	}
}

// extracts and verifies the bearer token, writing the 401 on failure
func verifyRequest(c *gin.Context, tokens *TokenService) (*Claims, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		errors.Unauthorized(c, "authorization header required")
		c.Abort()

		return nil, false
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		errors.Unauthorized(c, "invalid authorization header format")
		c.Abort()

		return nil, false
	}

	claims, err := tokens.Verify(parts[1])
	if err != nil {
		logger.Debug("token verification failed", "reason", err)
		errors.Unauthorized(c, "invalid or expired token")
		c.Abort()

		return nil, false
	}

	return claims, true
}

// extracts the acting user id from context after a gate
func UserID(c *gin.Context) (string, bool) {
	userID, exists := c.Get(ctxUserIDKey)
	if !exists {
		return "", false
	}

	return userID.(string), true
}

// extracts the resolved principal from context after RequireUser
func CurrentUser(c *gin.Context) (*users.User, bool) {
	value, exists := c.Get(ctxUserKey)
	if !exists {
		return nil, false
	}

	user, ok := value.(*users.User)

	return user, ok
}
