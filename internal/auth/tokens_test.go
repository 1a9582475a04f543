package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	token, err := SignAccessToken("secret", "user-1", "session-1", time.Now().Add(time.Hour))
	require.NoError(t, err)

	claims, err := ParseAccessToken("secret", token)
	require.NoError(t, err)

	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "session-1", claims.SessionID)
}

func TestParseAccessTokenWrongSecret(t *testing.T) {
	token, err := SignAccessToken("secret", "user-1", "session-1", time.Now().Add(time.Hour))
	require.NoError(t, err)

	_, err = ParseAccessToken("other-secret", token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseAccessTokenExpired(t *testing.T) {
	token, err := SignAccessToken("secret", "user-1", "session-1", time.Now().Add(-time.Hour))
	require.NoError(t, err)

	_, err = ParseAccessToken("secret", token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseAccessTokenGarbage(t *testing.T) {
	_, err := ParseAccessToken("secret", "not-a-jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
