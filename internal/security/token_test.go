package security

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-at-least-32-characters!!"

func TestGenerateAndValidateToken(t *testing.T) {
	manager := NewTokenManager(testSecret, 60)

	token, err := manager.GenerateAccessToken(7, "desk@suncrest.example.com", []string{"admin"})
	require.NoError(t, err)

	claims, err := manager.ValidateToken(token)
	require.NoError(t, err)

	assert.Equal(t, int32(7), claims.UserID)
	assert.Equal(t, "desk@suncrest.example.com", claims.Email)
	assert.True(t, claims.HasRole("admin"))
	assert.False(t, claims.HasRole("superuser"))
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	manager := NewTokenManager(testSecret, 60)
	other := NewTokenManager("another-secret-also-32-characters!!!", 60)

	token, err := other.GenerateAccessToken(7, "desk@suncrest.example.com", []string{"admin"})
	require.NoError(t, err)

	_, err = manager.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	manager := NewTokenManager(testSecret, -1) // already expired at issue time

	token, err := manager.GenerateAccessToken(7, "desk@suncrest.example.com", []string{"admin"})
	require.NoError(t, err)

	_, err = manager.ValidateToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	manager := NewTokenManager(testSecret, 60)

	_, err := manager.ValidateToken("not.a.jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
