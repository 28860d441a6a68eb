package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken("u-1", "manager", time.Hour)
	require.NoError(t, err)

	sub, role, err := ExtractClaimsFromToken(token)
	require.NoError(t, err)
	assert.Equal(t, "u-1", sub)
	assert.Equal(t, "manager", role)
}

func TestExpiredTokenRejected(t *testing.T) {
	token, err := GenerateToken("u-1", "manager", -time.Minute)
	require.NoError(t, err)

	_, _, err = ExtractClaimsFromToken(token)
	assert.Error(t, err)
}

func TestGarbageTokenRejected(t *testing.T) {
	_, _, err := ExtractClaimsFromToken("not-a-token")
	assert.Error(t, err)
}
