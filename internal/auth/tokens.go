package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// classified token verification failures. Handlers collapse all three
// to a single 401; the distinction exists for logging only.
var (
	ErrTokenInvalid   = errors.New("token signature invalid")
	ErrTokenExpired   = errors.New("token expired")
	ErrTokenMalformed = errors.New("token malformed")
)

// issues and verifies signed access tokens. Holds the signing secret,
// method and validity window injected from configuration; business code
// never reads ambient state.
type TokenService struct {
	secret   []byte
	method   jwt.SigningMethod
	validity time.Duration
}

// creates a token service for the given HMAC algorithm (HS256, HS384 or HS512)
func NewTokenService(secret, algorithm string, validityDays int) (*TokenService, error) {
	if secret == "" {
		return nil, fmt.Errorf("signing secret must not be empty")
	}

	if validityDays <= 0 {
		return nil, fmt.Errorf("token validity must be at least one day, got %d", validityDays)
	}

	method := jwt.GetSigningMethod(algorithm)
	if method == nil {
		return nil, fmt.Errorf("unknown signing algorithm %q", algorithm)
	}

	if _, ok := method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("signing algorithm %q is not HMAC-based", algorithm)
	}

	return &TokenService{
		secret:   []byte(secret),
		method:   method,
		validity: time.Duration(validityDays) * 24 * time.Hour,
	}, nil
}

// creates a signed token for the user
func (s *TokenService) Issue(userID string) (string, error) {
	now := time.Now()

	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.validity)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	return jwt.NewWithClaims(s.method, claims).SignedString(s.secret)
}

// validates a token and returns the claims. The subject must be a
// well-formed user UUID; anything else is a malformed token.
func (s *TokenService) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(
		tokenString,
		&Claims{},
		func(token *jwt.Token) (any, error) {
			return s.secret, nil
		},
		jwt.WithValidMethods([]string{s.method.Alg()}),
	)

	if err != nil {
		return nil, classifyParseError(err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrTokenInvalid
	}

	if claims.UserID == "" {
		return nil, fmt.Errorf("%w: missing user_id claim", ErrTokenMalformed)
	}

	if _, err := uuid.Parse(claims.UserID); err != nil {
		return nil, fmt.Errorf("%w: user_id is not a valid UUID", ErrTokenMalformed)
	}

	return claims, nil
}

// maps golang-jwt parse errors onto the service's error kinds
func classifyParseError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenMalformed):
		return fmt.Errorf("%w: %v", ErrTokenMalformed, err)
	case errors.Is(err, jwt.ErrTokenExpired):
		return fmt.Errorf("%w: %v", ErrTokenExpired, err)
	default:
		return fmt.Errorf("%w: %v", ErrTokenInvalid, err)
	}
}
