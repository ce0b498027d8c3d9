// Package middleware provides the HTTP middlewares: session
// authentication, request logging and CORS.
package middleware

import (
	"context"
	"net/http"
	"strings"

	"taskboard/internal/auth"
)

type ctxKey string

const subjectKey ctxKey = "subject"

const bearerPrefix = "Bearer "

// AuthMiddleware guards protected routes with the session token codec.
type AuthMiddleware struct {
	jwtSecret []byte
}

func NewAuthMiddleware(jwtSecret []byte) *AuthMiddleware {
	return &AuthMiddleware{jwtSecret: jwtSecret}
}

// Authenticate extracts the bearer token from the Authorization header,
// verifies its signature and attaches the email subject to the request
// context. It does not check that the subject still exists as a user.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if !strings.HasPrefix(header, bearerPrefix) {
			unauthenticated(w)
			return
		}

		token := strings.TrimPrefix(header, bearerPrefix)
		if token == "" {
			unauthenticated(w)
			return
		}

		subject, err := auth.VerifyToken(token, m.jwtSecret)
		if err != nil {
			unauthenticated(w)
			return
		}

		ctx := context.WithValue(r.Context(), subjectKey, subject)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func unauthenticated(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	w.Write([]byte(`{"error":"unauthenticated","code":"unauthenticated"}`))
}

// SubjectFromContext returns the email subject attached by
// Authenticate, or an empty string on unauthenticated requests.
func SubjectFromContext(ctx context.Context) string {
	if s, ok := ctx.Value(subjectKey).(string); ok {
		return s
	}
	return ""
}
