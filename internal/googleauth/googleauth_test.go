package googleauth

import (
	"testing"

	"github.com/markbates/goth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileFromUser_MissingEmail(t *testing.T) {
	_, err := ProfileFromUser(goth.User{Name: "No Email"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingEmail)
}

func TestProfileFromUser_NamePlaceholder(t *testing.T) {
	profile, err := ProfileFromUser(goth.User{Email: "alice@example.com"})

	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", profile.Email)
	assert.Equal(t, defaultDisplayName, profile.Name)
}

func TestProfileFromUser_FullProfile(t *testing.T) {
	profile, err := ProfileFromUser(goth.User{
		Email:     "alice@example.com",
		Name:      "Alice",
		AvatarURL: "https://lh3.googleusercontent.com/a/photo",
	})

	require.NoError(t, err)
	assert.Equal(t, "Alice", profile.Name)
	assert.Equal(t, "https://lh3.googleusercontent.com/a/photo", profile.AvatarURL)
}

func TestInit_RequiresSessionSecret(t *testing.T) {
	err := Init(Config{ClientID: "id", ClientSecret: "secret"})

	assert.Error(t, err)
}

func TestNewExchanger_SetsProviderTimeout(t *testing.T) {
	exchanger := NewExchanger(Config{
		ClientID:     "id",
		ClientSecret: "secret",
		RedirectURL:  "http://localhost:8080/api/v1/auth/google/callback",
	})

	require.NotNil(t, exchanger.provider.HTTPClient)
	assert.Equal(t, providerTimeout, exchanger.provider.HTTPClient.Timeout)
}
