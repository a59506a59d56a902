package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenService(t *testing.T) {
	service := NewTokenService("test-secret")

	t.Run("Generates Pair Bound To User", func(t *testing.T) {
		pair, err := service.GenerateTokenPair(42, "test@example.com")
		require.NoError(t, err)
		require.NotEmpty(t, pair.AccessToken)
		require.NotEmpty(t, pair.RefreshToken)

		claims, err := service.ValidateToken(pair.AccessToken, "access")
		require.NoError(t, err)
		assert.Equal(t, "test@example.com", claims["email"])

		userID, err := UserIDFromClaims(claims)
		require.NoError(t, err)
		assert.Equal(t, uint(42), userID)
	})

	t.Run("Rejects Wrong Token Type", func(t *testing.T) {
		pair, err := service.GenerateTokenPair(1, "a@b.com")
		require.NoError(t, err)

		_, err = service.ValidateToken(pair.AccessToken, "refresh")
		assert.Error(t, err)

		_, err = service.ValidateToken(pair.RefreshToken, "access")
		assert.Error(t, err)
	})

	t.Run("Refresh Token Carries JTI", func(t *testing.T) {
		pair, err := service.GenerateTokenPair(1, "a@b.com")
		require.NoError(t, err)

		claims, err := service.ValidateToken(pair.RefreshToken, "refresh")
		require.NoError(t, err)
		assert.NotEmpty(t, claims["jti"])
	})

	t.Run("Rejects Foreign Signature", func(t *testing.T) {
		other := NewTokenService("different-secret")
		pair, err := other.GenerateTokenPair(1, "a@b.com")
		require.NoError(t, err)

		_, err = service.ValidateToken(pair.AccessToken, "access")
		assert.Error(t, err)
	})
}
