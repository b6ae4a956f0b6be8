package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateJWTCarriesTenant(t *testing.T) {
	signed, err := GenerateJWT("user-1", "tenant-1", "secret", time.Hour, "pos-ledger")
	require.NoError(t, err)

	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(signed, claims, func(*jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	require.NoError(t, err)
	assert.True(t, token.Valid)
	assert.Equal(t, "user-1", claims["sub"])
	assert.Equal(t, "tenant-1", claims["tid"])
	assert.Equal(t, "pos-ledger", claims["iss"])
}

func TestGenerateJWTExpired(t *testing.T) {
	signed, err := GenerateJWT("user-1", "tenant-1", "secret", -time.Minute, "pos-ledger")
	require.NoError(t, err)

	_, err = jwt.Parse(signed, func(*jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}
