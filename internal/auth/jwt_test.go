package auth

import (
	"testing"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateToken_roundTrip(t *testing.T) {
	userID := uuid.New()

	signed, err := GenerateToken(userID)
	require.NoError(t, err)

	token, err := ValidatedToken(signed)
	require.NoError(t, err)
	assert.True(t, token.Valid)

	claims := token.Claims.(*jwt.RegisteredClaims)
	assert.Equal(t, JwtIssuer, claims.Issuer)
	assert.Equal(t, userID.String(), claims.Subject)
}

func TestValidatedToken_rejectsTampered(t *testing.T) {
	signed, err := GenerateToken(uuid.New())
	require.NoError(t, err)

	tampered := signed[:len(signed)-2] + "xx"
	_, err = ValidatedToken(tampered)
	assert.Error(t, err)
}

func TestValidatedToken_rejectsGarbage(t *testing.T) {
	_, err := ValidatedToken("not-a-token")
	assert.Error(t, err)
}
