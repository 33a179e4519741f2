package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-for-testing"

func newTestService(t *testing.T) *TokenService {
	t.Helper()

	service, err := NewTokenService(testSecret, "HS256", 7)
	require.NoError(t, err)

	return service
}

func TestNewTokenService_Validation(t *testing.T) {
	testCases := []struct {
		name      string
		secret    string
		algorithm string
		days      int
	}{
		{"empty secret", "", "HS256", 7},
		{"unknown algorithm", testSecret, "HS9000", 7},
		{"non-HMAC algorithm", testSecret, "RS256", 7},
		{"none algorithm", testSecret, "none", 7},
		{"zero validity", testSecret, "HS256", 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewTokenService(tc.secret, tc.algorithm, tc.days)
			assert.Error(t, err)
		})
	}
}

func TestIssueVerify_Success(t *testing.T) {
	service := newTestService(t)
	userID := uuid.NewString()

	token, err := service.Issue(userID)
	require.NoError(t, err)
	assert.Equal(t, 3, len(strings.Split(token, ".")), "JWT should have 3 parts")

	claims, err := service.Verify(token)

	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
}

func TestIssue_ExpirySetFromValidityWindow(t *testing.T) {
	service, err := NewTokenService(testSecret, "HS256", 3)
	require.NoError(t, err)

	token, err := service.Issue(uuid.NewString())
	require.NoError(t, err)

	claims, err := service.Verify(token)
	require.NoError(t, err)

	expected := time.Now().Add(3 * 24 * time.Hour)
	assert.Less(t, claims.ExpiresAt.Time.Sub(expected).Abs(), 5*time.Second)
}

func TestVerify_ExpiredToken(t *testing.T) {
	service := newTestService(t)

	claims := Claims{
		UserID: uuid.NewString(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-1 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		},
	}

	tokenString, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = service.Verify(tokenString)

	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestVerify_WrongSecret(t *testing.T) {
	service := newTestService(t)

	foreign, err := NewTokenService("different-secret-key", "HS256", 7)
	require.NoError(t, err)

	token, err := foreign.Issue(uuid.NewString())
	require.NoError(t, err)

	_, err = service.Verify(token)

	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestVerify_TamperedToken(t *testing.T) {
	service := newTestService(t)

	token, err := service.Issue(uuid.NewString())
	require.NoError(t, err)

	tampered := token[:len(token)-5] + "XXXXX"

	_, err = service.Verify(tampered)
	assert.Error(t, err)
}

func TestVerify_AlgorithmConfusionAttack(t *testing.T) {
	service := newTestService(t)

	claims := Claims{
		UserID: uuid.NewString(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodNone, claims)
	tokenString, _ := token.SignedString(jwt.UnsafeAllowNoneSignatureType) //nolint:errcheck // test code

	_, err := service.Verify(tokenString)
	assert.Error(t, err, "token with 'none' algorithm should be rejected")
}

func TestVerify_MalformedTokens(t *testing.T) {
	service := newTestService(t)

	malformedTokens := []string{
		"",
		"not.a.jwt",
		"only.two",
		"too.many.parts.in.this.token",
		"<script>alert('xss')</script>",
	}

	for _, token := range malformedTokens {
		_, err := service.Verify(token)
		assert.ErrorIs(t, err, ErrTokenMalformed, "token %q should classify as malformed", token)
	}
}

func TestVerify_MissingSubjectClaim(t *testing.T) {
	service := newTestService(t)

	// well-signed token without a user_id claim
	claims := jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}

	tokenString, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = service.Verify(tokenString)

	assert.ErrorIs(t, err, ErrTokenMalformed)
}

func TestVerify_SubjectNotAUUID(t *testing.T) {
	service := newTestService(t)

	token, err := service.Issue("definitely-not-a-uuid")
	require.NoError(t, err)

	_, err = service.Verify(token)

	assert.ErrorIs(t, err, ErrTokenMalformed)
}
