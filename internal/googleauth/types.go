package googleauth

import "errors"

// failure kinds of the two-step identity exchange
var (
	// the provider refused to exchange the authorization code
	ErrCodeRejected = errors.New("provider rejected authorization code")

	// the provider accepted the code but the profile fetch failed
	ErrProfileUnavailable = errors.New("provider profile unavailable")

	// the provider profile carries no email, the minimum required claim
	ErrMissingEmail = errors.New("provider profile missing email")
)

// provider credentials and cookie settings, injected from configuration
type Config struct {
	ClientID      string
	ClientSecret  string
	RedirectURL   string
	SessionSecret string
	SecureCookies bool
}

// the subset of the provider profile the account directory needs
type Profile struct {
	Email     string `json:"email"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url"`
}
