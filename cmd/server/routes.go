package main

import (
	"github.com/daytask/server/api/rest/auth"
	"github.com/daytask/server/api/rest/health"
	"github.com/daytask/server/api/rest/tasks"
	"github.com/daytask/server/api/rest/users"
	"github.com/daytask/server/internal/logger"
	"github.com/daytask/server/internal/metrics"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	limitergin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// per-client budget for the credential endpoints
const credentialRateLimit = "10-M"

// sets up all API routes and middleware
func RegisterRoutes(router *gin.Engine, server *Server) {
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")

	router.Use(cors.New(corsConfig))
	router.Use(metrics.Middleware())

	router.GET("/health", health.Handler)
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	v1 := router.Group("/api/v1")

	{
		v1.GET("/ping", health.PingHandler)

		auth.RegisterRoutes(v1, server.userRepo, server.tokens, server.exchanger, credentialLimiter())
		users.RegisterRoutes(v1, server.userRepo, server.tokens, server.userRepo)
		tasks.RegisterRoutes(v1, server.taskRepo, server.tokens, server.userRepo)
	}
}

// builds the in-memory rate limiter for login, register and password change
func credentialLimiter() gin.HandlerFunc {
	rate, err := limiter.NewRateFromFormatted(credentialRateLimit)
	if err != nil {
		logger.FatalErr(err, "invalid rate limit format")
	}

	return limitergin.NewMiddleware(limiter.New(memory.NewStore(), rate))
}
