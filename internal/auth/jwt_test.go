package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTManager_RoundTrip(t *testing.T) {
	m := NewJWTManager("secret")

	token, err := m.GenerateToken("u1", "Anna", time.Hour)
	require.NoError(t, err)

	claims, err := m.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)
	assert.Equal(t, "Anna", claims.Name)
	assert.Equal(t, "u1", claims.Subject)
}

func TestJWTManager_Expired(t *testing.T) {
	m := NewJWTManager("secret")

	token, err := m.GenerateToken("u1", "", -time.Minute)
	require.NoError(t, err)

	_, err = m.ValidateToken(token)
	require.ErrorIs(t, err, ErrExpiredToken)
}

func TestJWTManager_WrongKey(t *testing.T) {
	token, err := NewJWTManager("secret").GenerateToken("u1", "", time.Hour)
	require.NoError(t, err)

	_, err = NewJWTManager("other").ValidateToken(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTManager_Garbage(t *testing.T) {
	_, err := NewJWTManager("secret").ValidateToken("not-a-token")
	require.ErrorIs(t, err, ErrInvalidToken)
}
