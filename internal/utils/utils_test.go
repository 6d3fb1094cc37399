package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTRoundTrip(t *testing.T) {
	now := time.Now()
	token, expiresAt, err := GenerateJWT("user-1", "secret", time.Hour, "ohada_ledger", now)
	require.NoError(t, err)
	assert.Equal(t, now.Add(time.Hour), expiresAt)

	claims, err := ParseAndValidateJWT(token, "secret", "ohada_ledger")
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.Subject)

	_, err = ParseAndValidateJWT(token, "other-secret", "ohada_ledger")
	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)

	_, err = ParseAndValidateJWT(token, "secret", "someone-else")
	assert.ErrorIs(t, err, jwt.ErrTokenInvalidIssuer)
}

func TestParseAndValidateJWT_Expired(t *testing.T) {
	token, _, err := GenerateJWT("user-1", "secret", time.Minute, "", time.Now().Add(-time.Hour))
	require.NoError(t, err)

	_, err = ParseAndValidateJWT(token, "secret", "")
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestPasswordHash(t *testing.T) {
	hash, err := HashPassword("correct horse battery")
	require.NoError(t, err)
	assert.True(t, CheckPasswordHash("correct horse battery", hash))
	assert.False(t, CheckPasswordHash("wrong", hash))
}
