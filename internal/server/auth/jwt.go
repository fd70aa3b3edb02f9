// Package auth issues and validates the signed access tokens that tie a
// browser to its server-side session.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/mkravets/promptease/internal/common"
)

// Claims extends the registered claims with the session identifier the
// token resolves to.
type Claims struct {
	jwt.RegisteredClaims
	SessionID string `json:"sid"`
}

// GenerateToken signs an HS256 token carrying the session ID.
func GenerateToken(sessionID string, secretKey []byte, validity time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(validity)),
		},
		SessionID: sessionID,
	})

	return token.SignedString(secretKey)
}

// SessionIDFromToken validates the token and returns the embedded session ID.
func SessionIDFromToken(tokenString string, secretKey []byte) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	})
	if err != nil {
		return "", err
	}

	if !token.Valid || claims.SessionID == "" {
		return "", common.ErrInvalidToken
	}

	return claims.SessionID, nil
}
