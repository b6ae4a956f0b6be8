package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// GenerateJWT signs an HS256 token whose subject is userID and whose tid claim is tenantID.
func GenerateJWT(userID, tenantID, secret string, expiryDuration time.Duration, issuer string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"iss": issuer,
		"sub": userID,
		"tid": tenantID,
		"exp": jwt.NewNumericDate(now.Add(expiryDuration)),
		"iat": jwt.NewNumericDate(now),
		"nbf": jwt.NewNumericDate(now),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
