// Package auth holds the session token codec and the password hasher.
package auth

import (
	"github.com/golang-jwt/jwt/v5"

	"taskboard/internal/apperror"
)

// Claims is the session token payload. The subject of a session is the
// user's email; no expiry claim is set, sessions live until the secret
// rotates.
type Claims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
}

// IssueToken signs a session token bound to email with the shared secret.
func IssueToken(email string, secret []byte) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{Email: email})
	return token.SignedString(secret)
}

// VerifyToken checks the token signature against the shared secret and
// returns the email subject. It is a pure function of (secret, token).
func VerifyToken(tokenString string, secret []byte) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, apperror.NewAuth("unexpected signing method")
		}
		return secret, nil
	})
	if err != nil {
		return "", apperror.New(apperror.AuthError, "invalid token", err)
	}
	if !token.Valid || claims.Email == "" {
		return "", apperror.NewAuth("invalid token")
	}

	return claims.Email, nil
}
