package users

import (
	"github.com/daytask/server/internal/auth"
	"github.com/gin-gonic/gin"
)

// registers the user routes. Reading another user's profile only needs a
// valid token; acting on the current user resolves the principal.
func RegisterRoutes(
	router *gin.RouterGroup,
	store UserStore,
	tokens *auth.TokenService,
	finder auth.UserFinder,
) {
	router.GET("/user", auth.RequireUser(tokens, finder), GetCurrentUserHandler())
	router.PUT("/user/edit", auth.RequireUser(tokens, finder), EditCurrentUserHandler(store))
	router.GET("/users/:id", auth.RequireToken(tokens), GetUserByIDHandler(store))
}
