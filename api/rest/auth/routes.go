package auth

import (
	"github.com/daytask/server/internal/auth"
	"github.com/gin-gonic/gin"
)

// registers all authentication routes. The credential endpoints sit
// behind the rate limiter to slow brute forcing.
func RegisterRoutes(
	router *gin.RouterGroup,
	store UserStore,
	tokens *auth.TokenService,
	exchanger Exchanger,
	rateLimit gin.HandlerFunc,
) {
	authGroup := router.Group("/auth")
	{
		authGroup.POST("/login", rateLimit, LoginHandler(store, tokens))
		authGroup.POST("/register", rateLimit, RegisterHandler(store, tokens))
		authGroup.POST("/change-password", rateLimit, ChangePasswordHandler(store))
		authGroup.GET("/check", auth.RequireToken(tokens), CheckTokenHandler())
		authGroup.GET("/google", BeginGoogleHandler())
		authGroup.GET("/google/callback", GoogleCallbackHandler(store, tokens))
		authGroup.POST("/google/exchange", GoogleExchangeHandler(store, tokens, exchanger))
		authGroup.POST("/logout", LogoutHandler())
	}
}
