package main

import (
	"github.com/daytask/server/daytask/tasks"
	"github.com/daytask/server/daytask/users"
	"github.com/daytask/server/internal/auth"
	"github.com/daytask/server/internal/config"
	"github.com/daytask/server/internal/googleauth"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// holds all dependencies and state for the API server
type Server struct {
	db        *pgxpool.Pool
	config    *config.Config
	userRepo  *users.Repository
	taskRepo  *tasks.Repository
	tokens    *auth.TokenService
	exchanger *googleauth.Exchanger
	router    *gin.Engine
}
