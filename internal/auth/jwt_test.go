package auth

import (
	"testing"

	"github.com/myysophia/poa-backend/internal/config"
	"github.com/myysophia/poa-backend/internal/db/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testUser() *models.User {
	user := &models.User{Username: "admin", Lang: "ar_EG"}
	user.ID = 7
	return user
}

func TestGenerateAndParseToken(t *testing.T) {
	cfg := &config.JWTConfig{SecretKey: "secret", ExpiresIn: 3600, Issuer: "poa-backend"}

	token, err := GenerateToken(testUser(), cfg)
	require.NoError(t, err)

	claims, err := ParseToken(token, cfg)
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, "admin", claims.Username)
	assert.Equal(t, "ar_EG", claims.Lang)
	assert.Equal(t, "7", claims.Subject)
	assert.Equal(t, "poa-backend", claims.Issuer)
}

func TestParseToken_Errors(t *testing.T) {
	cfg := &config.JWTConfig{SecretKey: "secret", ExpiresIn: 3600}

	t.Run("Wrong Secret", func(t *testing.T) {
		token, err := GenerateToken(testUser(), cfg)
		require.NoError(t, err)

		_, err = ParseToken(token, &config.JWTConfig{SecretKey: "other"})
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("Expired", func(t *testing.T) {
		expired := &config.JWTConfig{SecretKey: "secret", ExpiresIn: -60}
		token, err := GenerateToken(testUser(), expired)
		require.NoError(t, err)

		_, err = ParseToken(token, cfg)
		assert.ErrorIs(t, err, ErrExpiredToken)
	})

	t.Run("Garbage", func(t *testing.T) {
		_, err := ParseToken("invalid-token", cfg)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
