package utils_test

import (
	"testing"
	"time"

	"github.com/askelio/askelio-backend/internal/utils"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-that-is-long-enough"

func TestGenerateAndParseJWT(t *testing.T) {
	userID := uuid.NewString()

	tokenString, err := utils.GenerateJWT(userID, testSecret, time.Hour, "askelio-backend")
	require.NoError(t, err)

	claims, err := utils.ParseAndValidateJWT(tokenString, testSecret)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.Subject)
	assert.Equal(t, "askelio-backend", claims.Issuer)
	assert.True(t, claims.ExpiresAt.After(time.Now()))
}

func TestParseAndValidateJWT_WrongSecret(t *testing.T) {
	tokenString, err := utils.GenerateJWT(uuid.NewString(), testSecret, time.Hour, "askelio-backend")
	require.NoError(t, err)

	claims, err := utils.ParseAndValidateJWT(tokenString, "a-different-secret-entirely")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestParseAndValidateJWT_Expired(t *testing.T) {
	tokenString, err := utils.GenerateJWT(uuid.NewString(), testSecret, -time.Minute, "askelio-backend")
	require.NoError(t, err)

	claims, err := utils.ParseAndValidateJWT(tokenString, testSecret)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
	assert.Nil(t, claims)
}

func TestParseAndValidateJWT_Garbage(t *testing.T) {
	claims, err := utils.ParseAndValidateJWT("not.a.token", testSecret)
	assert.Error(t, err)
	assert.Nil(t, claims)
}
