package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"showfolio/api/models"
)

func TestGenerateAndValidateJWT(t *testing.T) {
	user := &models.User{ID: 42, Email: "owner@example.com"}

	tokenString, err := GenerateJWT(user)
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	claims, err := ValidateJWT(tokenString)
	require.NoError(t, err)
	assert.Equal(t, 42, claims.UserID)
	assert.Equal(t, "owner@example.com", claims.Email)
	assert.Equal(t, "showfolio-api", claims.Issuer)
}

func TestValidateJWTRejectsGarbage(t *testing.T) {
	_, err := ValidateJWT("not-a-token")
	assert.Error(t, err)
}

func TestValidateJWTRejectsTampering(t *testing.T) {
	tokenString, err := GenerateJWT(&models.User{ID: 1, Email: "owner@example.com"})
	require.NoError(t, err)

	_, err = ValidateJWT(tokenString + "x")
	assert.Error(t, err)
}
