package googleauth

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/gorilla/sessions"
	"github.com/markbates/goth"
	"github.com/markbates/goth/gothic"
	"github.com/markbates/goth/providers/google"
)

// placeholder display name when the provider omits one
const defaultDisplayName = "DayTask User"

// bound on each outbound provider round-trip; there are two per exchange
// and no retries, so a hung provider holds a request for at most twice this
const providerTimeout = 10 * time.Second

// sets up the goth google provider and the gothic cookie store used by
// the browser redirect flow
func Init(cfg Config) error {
	if cfg.SessionSecret == "" {
		return fmt.Errorf("session secret must be set")
	}

	store := sessions.NewCookieStore([]byte(cfg.SessionSecret))

	// cookie only needs to survive the OAuth redirect round-trip
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   300,
		HttpOnly: true,
		Secure:   cfg.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	}

	gothic.Store = store

	goth.UseProviders(newProvider(cfg))

	return nil
}

// performs the two-step code exchange against Google for clients that
// obtained an authorization code out of band (mobile apps)
type Exchanger struct {
	provider *google.Provider
}

// creates an exchanger with its own provider instance
func NewExchanger(cfg Config) *Exchanger {
	return &Exchanger{provider: newProvider(cfg)}
}

// exchanges an authorization code for a provider profile. Step 1 trades
// the code for a provider access token, step 2 fetches the profile with
// it. Both calls are synchronous and bounded by the provider timeout.
func (e *Exchanger) Exchange(ctx context.Context, code string) (*Profile, error) {
	params := url.Values{}
	params.Set("code", code)

	session := &google.Session{}

	if _, err := session.Authorize(e.provider, params); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCodeRejected, err)
	}

	gothUser, err := e.provider.FetchUser(session)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProfileUnavailable, err)
	}

	return ProfileFromUser(gothUser)
}

// ProfileFromUser validates a fetched provider identity and shapes it
// into a Profile. Both the code exchange and the browser callback flow
// pass through here.
func ProfileFromUser(user goth.User) (*Profile, error) {
	if user.Email == "" {
		return nil, ErrMissingEmail
	}

	name := user.Name
	if name == "" {
		name = defaultDisplayName
	}

	return &Profile{
		Email:     user.Email,
		Name:      name,
		AvatarURL: user.AvatarURL,
	}, nil
}

func newProvider(cfg Config) *google.Provider {
	provider := google.New(
		cfg.ClientID,
		cfg.ClientSecret,
		cfg.RedirectURL,
		"email", "profile",
	)

	provider.HTTPClient = &http.Client{Timeout: providerTimeout}

	return provider
}
