package util

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestPassword(t *testing.T) {
	hashed, err := HashPassword("secret123")
	require.NoError(t, err)
	require.NotEqual(t, "secret123", hashed)

	require.NoError(t, CheckPassword("secret123", hashed))
	require.ErrorIs(t, CheckPassword("wrong", hashed), bcrypt.ErrMismatchedHashAndPassword)

	other, err := HashPassword("secret123")
	require.NoError(t, err)
	require.NotEqual(t, hashed, other)
}

func TestRandomToken(t *testing.T) {
	a, err := RandomToken(20)
	require.NoError(t, err)
	require.Len(t, a, 40)

	b, err := RandomToken(20)
	require.NoError(t, err)
	require.NotEqual(t, a, b)
}
