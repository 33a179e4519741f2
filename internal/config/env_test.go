package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/daytask")
	t.Setenv("JWT_SECRET", "test-jwt-secret")
	t.Setenv("SESSION_SECRET", "test-session-secret")
	t.Setenv("GOOGLE_CLIENT_ID", "client-id")
	t.Setenv("GOOGLE_CLIENT_SECRET", "client-secret")
}

func TestLoadEnvironmentVariables_Defaults(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("JWT_ALGORITHM", "")
	t.Setenv("TOKEN_EXPIRES_DAYS", "")
	t.Setenv("ENVIRONMENT", "")
	t.Setenv("PORT", "")
	t.Setenv("GOOGLE_REDIRECT_URL", "")

	cfg, err := LoadEnvironmentVariables()

	require.NoError(t, err)
	assert.Equal(t, "HS256", cfg.JWTAlgorithm)
	assert.Equal(t, 7, cfg.TokenExpiresDays)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "http://localhost:8080/api/v1/auth/google/callback", cfg.GoogleRedirectURL)
	assert.False(t, cfg.IsProduction())
}

func TestLoadEnvironmentVariables_MissingRequired(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("JWT_SECRET", "")

	_, err := LoadEnvironmentVariables()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")
}

func TestLoadEnvironmentVariables_InvalidExpiresDays(t *testing.T) {
	setRequiredEnv(t)

	for _, raw := range []string{"zero", "-1", "0"} {
		t.Setenv("TOKEN_EXPIRES_DAYS", raw)

		_, err := LoadEnvironmentVariables()
		assert.Error(t, err, "TOKEN_EXPIRES_DAYS=%q should be rejected", raw)
	}
}

func TestLoadEnvironmentVariables_Overrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("JWT_ALGORITHM", "HS512")
	t.Setenv("TOKEN_EXPIRES_DAYS", "30")
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("GOOGLE_REDIRECT_URL", "https://daytask.app/api/v1/auth/google/callback")

	cfg, err := LoadEnvironmentVariables()

	require.NoError(t, err)
	assert.Equal(t, "HS512", cfg.JWTAlgorithm)
	assert.Equal(t, 30, cfg.TokenExpiresDays)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "https://daytask.app/api/v1/auth/google/callback", cfg.GoogleRedirectURL)
}
