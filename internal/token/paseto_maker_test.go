package token

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

const testKey = "12345678901234567890123456789012"

func TestPasetoMaker(t *testing.T) {
	maker, err := NewPasetoMaker(testKey)
	require.NoError(t, err)

	userID := uuid.New()
	token, payload, err := maker.CreateToken(userID, "a@b.uz", "admin", time.Minute)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	got, err := maker.VerifyToken(token)
	require.NoError(t, err)
	require.Equal(t, payload.ID, got.ID)
	require.Equal(t, userID, got.UserID)
	require.Equal(t, "a@b.uz", got.Email)
	require.True(t, got.IsAdmin())
	require.WithinDuration(t, time.Now().Add(time.Minute), got.ExpiredAt, time.Second)
}

func TestPasetoMaker_Expired(t *testing.T) {
	maker, err := NewPasetoMaker(testKey)
	require.NoError(t, err)

	token, _, err := maker.CreateToken(uuid.New(), "a@b.uz", "user", -time.Minute)
	require.NoError(t, err)

	got, err := maker.VerifyToken(token)
	require.ErrorIs(t, err, ErrExpiredToken)
	require.Nil(t, got)
}

func TestPasetoMaker_Invalid(t *testing.T) {
	_, err := NewPasetoMaker("short")
	require.Error(t, err)

	maker, err := NewPasetoMaker(testKey)
	require.NoError(t, err)
	other, err := NewPasetoMaker(strings.Repeat("x", 32))
	require.NoError(t, err)

	token, _, err := other.CreateToken(uuid.New(), "a@b.uz", "user", time.Minute)
	require.NoError(t, err)

	_, err = maker.VerifyToken(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}
