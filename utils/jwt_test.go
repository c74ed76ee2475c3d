package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken("ali@example.com", "Ali Ahmed", time.Hour)
	require.NoError(t, err)

	email, name, err := ExtractIdentityFromToken(token)
	require.NoError(t, err)
	assert.Equal(t, "ali@example.com", email)
	assert.Equal(t, "Ali Ahmed", name)
}

func TestExpiredTokenRejected(t *testing.T) {
	token, err := GenerateToken("ali@example.com", "Ali", -time.Hour)
	require.NoError(t, err)

	_, _, err = ExtractIdentityFromToken(token)
	assert.Error(t, err)
}

func TestTamperedTokenRejected(t *testing.T) {
	token, err := GenerateToken("ali@example.com", "Ali", time.Hour)
	require.NoError(t, err)

	_, _, err = ExtractIdentityFromToken(token + "x")
	assert.Error(t, err)
}

func TestGarbageTokenRejected(t *testing.T) {
	_, _, err := ExtractIdentityFromToken("not-a-token")
	assert.Error(t, err)
}
