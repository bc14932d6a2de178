package service

import (
	"context"
	"encoding/hex"
	"testing"

	"message_board/internal/common"
	"message_board/internal/domain/repository"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newAuthService(t *testing.T) *AuthService {
	t.Helper()
	return NewAuthService(repository.NewMemoryUserRepository(), bcrypt.MinCost)
}

func TestRegister(t *testing.T) {
	svc := newAuthService(t)

	user, err := svc.Register(context.Background(), RegisterRequest{
		UserName: "alice",
		Email:    "a@x.com",
		Password: "secret",
	})
	require.NoError(t, err)
	require.NotEmpty(t, user.ID)
	require.Equal(t, "alice", user.UserName)

	// Stored password is a hash, never the plaintext.
	require.NotEqual(t, "secret", user.Password)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("secret")))

	require.Len(t, user.AccessToken, 256)
	_, err = hex.DecodeString(user.AccessToken)
	require.NoError(t, err)
}

func TestRegisterValidation(t *testing.T) {
	svc := newAuthService(t)

	tests := []struct {
		name string
		req  RegisterRequest
	}{
		{"missing userName", RegisterRequest{Email: "a@x.com", Password: "secret"}},
		{"missing email", RegisterRequest{UserName: "alice", Password: "secret"}},
		{"short password", RegisterRequest{UserName: "alice", Email: "a@x.com", Password: "1234"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(context.Background(), tt.req)
			require.ErrorIs(t, err, common.ErrValidation)
		})
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := newAuthService(t)

	_, err := svc.Register(context.Background(), RegisterRequest{
		UserName: "alice", Email: "a@x.com", Password: "secret",
	})
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), RegisterRequest{
		UserName: "bob", Email: "a@x.com", Password: "hunter2",
	})
	require.ErrorIs(t, err, common.ErrConflict)
}

func TestLogin(t *testing.T) {
	svc := newAuthService(t)

	registered, err := svc.Register(context.Background(), RegisterRequest{
		UserName: "alice", Email: "a@x.com", Password: "secret",
	})
	require.NoError(t, err)

	resp, err := svc.Login(context.Background(), LoginRequest{UserName: "alice", Password: "secret"})
	require.NoError(t, err)
	require.Equal(t, registered.ID, resp.UserID)
	require.Equal(t, registered.AccessToken, resp.AccessToken)
	require.Equal(t, "alice", resp.UserName)
}

func TestLoginFailures(t *testing.T) {
	svc := newAuthService(t)

	_, err := svc.Register(context.Background(), RegisterRequest{
		UserName: "alice", Email: "a@x.com", Password: "secret",
	})
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), LoginRequest{UserName: "alice", Password: "wrong"})
	require.ErrorIs(t, err, common.ErrNotFound)

	_, err = svc.Login(context.Background(), LoginRequest{UserName: "nobody", Password: "secret"})
	require.ErrorIs(t, err, common.ErrNotFound)
}
