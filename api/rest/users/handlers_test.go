package users

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/daytask/server/daytask/users"
	"github.com/daytask/server/internal/auth"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// in-memory directory serving both the handler store and the auth gate
type fakeUserStore struct {
	byID map[string]*users.User
}

func newFakeUserStore(seed ...*users.User) *fakeUserStore {
	store := &fakeUserStore{byID: map[string]*users.User{}}
	for _, user := range seed {
		store.byID[user.ID] = user
	}

	return store
}

func (s *fakeUserStore) FindByID(_ context.Context, id string) (*users.User, error) {
	user, ok := s.byID[id]
	if !ok {
		return nil, users.ErrNotFound
	}

	return user, nil
}

func (s *fakeUserStore) UpdateProfile(_ context.Context, id, name, profileImg, userType string) (*users.User, error) {
	user, ok := s.byID[id]
	if !ok {
		return nil, users.ErrNotFound
	}

	user.Name = name
	user.ProfileImg = profileImg
	user.UserType = userType

	return user, nil
}

func setupUserRouter(t *testing.T, store *fakeUserStore) (*gin.Engine, *auth.TokenService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	tokens, err := auth.NewTokenService("test-secret-key-for-testing", "HS256", 7)
	require.NoError(t, err)

	router := gin.New()
	v1 := router.Group("/api/v1")
	RegisterRoutes(v1, store, tokens, store)

	return router, tokens
}

func doAuthed(router *gin.Engine, method, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	return recorder
}

func TestGetCurrentUser_Success(t *testing.T) {
	alice := &users.User{ID: uuid.NewString(), Email: "alice@example.com", Name: "Alice"}
	router, tokens := setupUserRouter(t, newFakeUserStore(alice))

	token, err := tokens.Issue(alice.ID)
	require.NoError(t, err)

	recorder := doAuthed(router, http.MethodGet, "/api/v1/user", token)

	require.Equal(t, http.StatusOK, recorder.Code)

	var resp UserResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	assert.Equal(t, alice.ID, resp.User.ID)
	assert.Equal(t, "alice@example.com", resp.User.Email)
}

func TestGetCurrentUser_PrincipalDeleted(t *testing.T) {
	router, tokens := setupUserRouter(t, newFakeUserStore())

	// token for a user that no longer exists
	token, err := tokens.Issue(uuid.NewString())
	require.NoError(t, err)

	recorder := doAuthed(router, http.MethodGet, "/api/v1/user", token)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestGetCurrentUser_NoToken(t *testing.T) {
	router, _ := setupUserRouter(t, newFakeUserStore())

	recorder := doAuthed(router, http.MethodGet, "/api/v1/user", "")

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestGetUserByID_ValidityOnlyGate(t *testing.T) {
	alice := &users.User{ID: uuid.NewString(), Email: "alice@example.com", Name: "Alice"}
	bob := &users.User{ID: uuid.NewString(), Email: "bob@example.com", Name: "Bob"}
	router, tokens := setupUserRouter(t, newFakeUserStore(alice, bob))

	// bob's token grants access to alice's public profile
	token, err := tokens.Issue(bob.ID)
	require.NoError(t, err)

	recorder := doAuthed(router, http.MethodGet, "/api/v1/users/"+alice.ID, token)

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "alice@example.com")
}

func TestGetUserByID_InvalidUUID(t *testing.T) {
	alice := &users.User{ID: uuid.NewString(), Email: "alice@example.com", Name: "Alice"}
	router, tokens := setupUserRouter(t, newFakeUserStore(alice))

	token, err := tokens.Issue(alice.ID)
	require.NoError(t, err)

	recorder := doAuthed(router, http.MethodGet, "/api/v1/users/not-a-uuid", token)

	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestGetUserByID_Unknown(t *testing.T) {
	alice := &users.User{ID: uuid.NewString(), Email: "alice@example.com", Name: "Alice"}
	router, tokens := setupUserRouter(t, newFakeUserStore(alice))

	token, err := tokens.Issue(alice.ID)
	require.NoError(t, err)

	recorder := doAuthed(router, http.MethodGet, "/api/v1/users/"+uuid.NewString(), token)

	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestEditCurrentUser(t *testing.T) {
	alice := &users.User{ID: uuid.NewString(), Email: "alice@example.com", Name: "Alice", UserType: users.TypeEmail}
	store := newFakeUserStore(alice)
	router, tokens := setupUserRouter(t, store)

	token, err := tokens.Issue(alice.ID)
	require.NoError(t, err)

	body := `{"name":"Alice Cooper","profile_img":"https://example.com/a.png","user_type":"email"}`
	req := httptest.NewRequest(http.MethodPut, "/api/v1/user/edit", bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "Alice Cooper", store.byID[alice.ID].Name)
	assert.Equal(t, "https://example.com/a.png", store.byID[alice.ID].ProfileImg)
}
