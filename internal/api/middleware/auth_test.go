package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"message_board/internal/domain/model"
	"message_board/internal/domain/repository"

	"github.com/stretchr/testify/require"
)

// brokenUserRepository fails every lookup, standing in for a store that
// errors mid-query.
type brokenUserRepository struct{}

func (brokenUserRepository) Create(context.Context, *model.User) error {
	return errors.New("store down")
}

func (brokenUserRepository) FindByUserName(context.Context, string) (*model.User, error) {
	return nil, errors.New("store down")
}

func (brokenUserRepository) FindByAccessToken(context.Context, string) (*model.User, error) {
	return nil, errors.New("store down")
}

func TestAuthenticatorAttachesUser(t *testing.T) {
	users := repository.NewMemoryUserRepository()
	user := &model.User{UserName: "alice", Email: "a@x.com", Password: "hash", AccessToken: "tok"}
	require.NoError(t, users.Create(context.Background(), user))

	var seen *model.User
	h := Authenticator(users)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var ok bool
		seen, ok = GetUserFromContext(r.Context())
		require.True(t, ok)
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodPost, "/messages", nil)
	req.Header.Set("Authorization", "tok")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, seen)
	require.Equal(t, user.ID, seen.ID)
}

func TestAuthenticatorRejectsUnknownToken(t *testing.T) {
	users := repository.NewMemoryUserRepository()
	h := Authenticator(users)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run without a valid token")
	}))

	for _, token := range []string{"", "bogus"} {
		req := httptest.NewRequest(http.MethodPost, "/messages", nil)
		if token != "" {
			req.Header.Set("Authorization", token)
		}
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		require.Equal(t, http.StatusUnauthorized, rec.Code)

		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		require.Equal(t, true, body["loggedOut"])
		require.Equal(t, "Please try to log in", body["message"])
	}
}

func TestAuthenticatorLookupError(t *testing.T) {
	h := Authenticator(brokenUserRepository{})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run when the lookup fails")
	}))

	req := httptest.NewRequest(http.MethodPost, "/messages", nil)
	req.Header.Set("Authorization", "tok")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusForbidden, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "accesToken missing or wrong", body["message"])
	require.NotEmpty(t, body["errors"])
}

func TestReadinessGate(t *testing.T) {
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	Readiness(staticChecker(false))(inner).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "Service unavailabale", body["error"])

	rec = httptest.NewRecorder()
	Readiness(staticChecker(true))(inner).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, rec.Code)
}

type staticChecker bool

func (c staticChecker) Ready() bool { return bool(c) }
