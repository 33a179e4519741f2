package main

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/daytask/server/daytask/tasks"
	"github.com/daytask/server/daytask/users"
	"github.com/daytask/server/internal/auth"
	"github.com/daytask/server/internal/config"
	"github.com/daytask/server/internal/googleauth"
	"github.com/daytask/server/migrations"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// creates and configures a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	ctx := context.Background()

	if err := runMigrations(ctx, cfg.DatabaseURL); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	poolConfig, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}

	poolConfig.MaxConns = 10
	poolConfig.MinConns = 1
	poolConfig.MaxConnLifetime = 30 * time.Minute
	poolConfig.MaxConnIdleTime = 5 * time.Minute
	poolConfig.HealthCheckPeriod = 1 * time.Minute

	db, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create database pool: %w", err)
	}

	if err := db.Ping(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	tokens, err := auth.NewTokenService(cfg.JWTSecret, cfg.JWTAlgorithm, cfg.TokenExpiresDays)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create token service: %w", err)
	}

	googleConfig := googleauth.Config{
		ClientID:      cfg.GoogleClientID,
		ClientSecret:  cfg.GoogleClientSecret,
		RedirectURL:   cfg.GoogleRedirectURL,
		SessionSecret: cfg.SessionSecret,
		SecureCookies: cfg.IsProduction(),
	}

	if err := googleauth.Init(googleConfig); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize google auth: %w", err)
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	server := &Server{
		db:        db,
		config:    cfg,
		userRepo:  users.NewRepository(db),
		taskRepo:  tasks.NewRepository(db),
		tokens:    tokens,
		exchanger: googleauth.NewExchanger(googleConfig),
		router:    gin.Default(),
	}

	RegisterRoutes(server.router, server)

	return server, nil
}

// applies embedded goose migrations over the stdlib pgx driver
func runMigrations(ctx context.Context, dsn string) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("db open error: %w", err)
	}
	defer db.Close() //nolint:errcheck,gosec // migration connection is short-lived

	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}

	return goose.UpContext(ctx, db, ".")
}
