package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseJWT(t *testing.T) {
	token, err := GenerateJWT("user-1", "Customer", "alice", "test-secret")
	require.NoError(t, err)

	claims, err := ParseJWT(token, "test-secret")
	require.NoError(t, err)

	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, "Customer", claims.Role)
	assert.Equal(t, "alice", claims.Username)
	assert.NotEmpty(t, claims.ID) // jti is a fresh uuid per token

	// Expiry sits the fixed lifetime after issuance
	assert.WithinDuration(t, claims.IssuedAt.Add(TokenLifetime), claims.ExpiresAt.Time, time.Second)
}

func TestParseJWTWrongSecret(t *testing.T) {
	token, err := GenerateJWT("user-1", "Customer", "alice", "test-secret")
	require.NoError(t, err)

	_, err = ParseJWT(token, "other-secret")
	assert.Error(t, err)
}

func TestParseJWTGarbage(t *testing.T) {
	_, err := ParseJWT("not.a.token", "test-secret")
	assert.Error(t, err)
}

func TestTokenIDsAreUnique(t *testing.T) {
	first, err := GenerateJWT("user-1", "Customer", "alice", "test-secret")
	require.NoError(t, err)
	second, err := GenerateJWT("user-1", "Customer", "alice", "test-secret")
	require.NoError(t, err)

	firstClaims, err := ParseJWT(first, "test-secret")
	require.NoError(t, err)
	secondClaims, err := ParseJWT(second, "test-secret")
	require.NoError(t, err)

	assert.NotEqual(t, firstClaims.ID, secondClaims.ID)
}
