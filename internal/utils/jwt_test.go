package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func TestGenerateTokenRoundTrip(t *testing.T) {
	identity := map[string]interface{}{
		"email": "buyer@example.com",
		"name":  "Buyer",
	}

	token, err := GenerateToken(testSecret, identity, time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseToken(testSecret, token)
	require.NoError(t, err)

	assert.Equal(t, "buyer@example.com", claims["email"])
	assert.Equal(t, "Buyer", claims["name"])
	assert.NotEmpty(t, claims["jti"])
}

func TestGenerateTokenOverridesReservedClaims(t *testing.T) {
	// Callers must not be able to smuggle their own expiry or token id.
	identity := map[string]interface{}{
		"email": "buyer@example.com",
		"exp":   float64(time.Now().Add(100 * 24 * time.Hour).Unix()),
		"jti":   "attacker-chosen",
	}

	token, err := GenerateToken(testSecret, identity, time.Hour)
	require.NoError(t, err)

	claims, err := ParseToken(testSecret, token)
	require.NoError(t, err)

	exp, ok := claims["exp"].(float64)
	require.True(t, ok)
	assert.LessOrEqual(t, int64(exp), time.Now().Add(time.Hour+time.Minute).Unix())
	assert.NotEqual(t, "attacker-chosen", claims["jti"])
}

func TestParseTokenExpired(t *testing.T) {
	token, err := GenerateToken(testSecret, map[string]interface{}{"email": "a@b.c"}, -time.Minute)
	require.NoError(t, err)

	_, err = ParseToken(testSecret, token)
	assert.Error(t, err)
}

func TestParseTokenTamperedSignature(t *testing.T) {
	token, err := GenerateToken(testSecret, map[string]interface{}{"email": "a@b.c"}, time.Hour)
	require.NoError(t, err)

	_, err = ParseToken("a-different-secret", token)
	assert.Error(t, err)
}

func TestParseTokenGarbage(t *testing.T) {
	_, err := ParseToken(testSecret, "not.a.token")
	assert.Error(t, err)
}
