package utils_test

import (
	"encoding/hex"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wishzy/wishzy-backend/internal/utils"
)

const (
	testSecret = "unit-test-secret"
	testIssuer = "wishzy-test"
)

func TestAccessJWTRoundTrip(t *testing.T) {
	token, err := utils.GenerateAccessJWT("user-1", "jane@example.com", "instructor", testSecret, testIssuer, time.Minute)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := utils.ParseAccessJWT(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, "jane@example.com", claims.Email)
	assert.Equal(t, "instructor", claims.Role)
	assert.Equal(t, testIssuer, claims.Issuer)
}

func TestAccessJWTWrongSecret(t *testing.T) {
	token, err := utils.GenerateAccessJWT("user-1", "jane@example.com", "user", testSecret, testIssuer, time.Minute)
	require.NoError(t, err)

	_, err = utils.ParseAccessJWT(token, "some-other-secret")
	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
}

func TestAccessJWTExpired(t *testing.T) {
	token, err := utils.GenerateAccessJWT("user-1", "jane@example.com", "user", testSecret, testIssuer, -time.Minute)
	require.NoError(t, err)

	_, err = utils.ParseAccessJWT(token, testSecret)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestRefreshJWTRoundTrip(t *testing.T) {
	token, err := utils.GenerateRefreshJWT("user-2", "john@example.com", testSecret, testIssuer, time.Hour)
	require.NoError(t, err)

	claims, err := utils.ParseRefreshJWT(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, "user-2", claims.Subject)
	assert.Equal(t, "john@example.com", claims.Email)
}

func TestRefreshJWTGarbageToken(t *testing.T) {
	_, err := utils.ParseRefreshJWT("not.a.token", testSecret)
	assert.Error(t, err)
}

func TestGenerateSecureRandomString(t *testing.T) {
	s, err := utils.GenerateSecureRandomString(32)
	require.NoError(t, err)
	assert.Len(t, s, 64)

	_, err = hex.DecodeString(s)
	assert.NoError(t, err)

	other, err := utils.GenerateSecureRandomString(32)
	require.NoError(t, err)
	assert.NotEqual(t, s, other)

	_, err = utils.GenerateSecureRandomString(0)
	assert.Error(t, err)
}
