package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	defaultAlgorithm   = "HS256"
	defaultExpiresDays = 7
	defaultPort        = "8080"
)

// loads configuration from environment variables
func LoadEnvironmentVariables() (*Config, error) {
	_ = godotenv.Load() // .env is optional in production

	databaseURL := os.Getenv("DATABASE_URL")
	jwtSecret := os.Getenv("JWT_SECRET")
	sessionSecret := os.Getenv("SESSION_SECRET")
	googleClientID := os.Getenv("GOOGLE_CLIENT_ID")
	googleClientSecret := os.Getenv("GOOGLE_CLIENT_SECRET")

	if databaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}

	if jwtSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable is required")
	}

	if sessionSecret == "" {
		return nil, fmt.Errorf("SESSION_SECRET environment variable is required")
	}

	if googleClientID == "" || googleClientSecret == "" {
		return nil, fmt.Errorf("GOOGLE_CLIENT_ID and GOOGLE_CLIENT_SECRET environment variables are required")
	}

	algorithm := os.Getenv("JWT_ALGORITHM")
	if algorithm == "" {
		algorithm = defaultAlgorithm
	}

	expiresDays := defaultExpiresDays

	if raw := os.Getenv("TOKEN_EXPIRES_DAYS"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			return nil, fmt.Errorf("TOKEN_EXPIRES_DAYS must be a positive integer, got %q", raw)
		}

		expiresDays = parsed
	}

	environment := os.Getenv("ENVIRONMENT")
	if environment == "" {
		environment = "development"
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = defaultPort
	}

	redirectURL := os.Getenv("GOOGLE_REDIRECT_URL")
	if redirectURL == "" {
		redirectURL = fmt.Sprintf("http://localhost:%s/api/v1/auth/google/callback", port)
	}

	return &Config{
		DatabaseURL:        databaseURL,
		JWTSecret:          jwtSecret,
		JWTAlgorithm:       algorithm,
		TokenExpiresDays:   expiresDays,
		GoogleClientID:     googleClientID,
		GoogleClientSecret: googleClientSecret,
		GoogleRedirectURL:  redirectURL,
		SessionSecret:      sessionSecret,
		Environment:        environment,
		Port:               port,
	}, nil
}
