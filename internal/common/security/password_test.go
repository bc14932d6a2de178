package security

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("secret", bcrypt.MinCost)
	require.NoError(t, err)
	require.NotEqual(t, "secret", hash)

	require.True(t, CheckPasswordHash("secret", hash))
	require.False(t, CheckPasswordHash("wrong", hash))
}

func TestCheckPasswordHashRejectsGarbage(t *testing.T) {
	require.False(t, CheckPasswordHash("secret", "not a bcrypt hash"))
}
