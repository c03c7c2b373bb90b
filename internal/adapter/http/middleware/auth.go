package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/obinna/walletcore/internal/domain"
	"github.com/obinna/walletcore/internal/infrastructure/auth"
)

// ContextKey is the type for context keys.
type ContextKey string

// CallerContextKey is the context key for the authenticated caller.
const CallerContextKey ContextKey = "caller"

// Auth creates an authentication middleware. Verified claims become an
// AuthenticatedUser on the request context; the caller identity is never held
// on a shared service.
func Auth(jwtManager *auth.JWTManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				http.Error(w, "missing authorization header", http.StatusUnauthorized)
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" {
				http.Error(w, "invalid authorization header format", http.StatusUnauthorized)
				return
			}

			claims, err := jwtManager.Verify(parts[1])
			if err != nil {
				http.Error(w, "invalid or expired token", http.StatusUnauthorized)
				return
			}

			caller := domain.AuthenticatedUser{
				ID:            claims.UserID,
				Email:         claims.Email,
				FirstName:     claims.FirstName,
				LastName:      claims.LastName,
				AccountNumber: claims.AccountNumber,
			}

			ctx := context.WithValue(r.Context(), CallerContextKey, caller)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// CallerFromContext extracts the authenticated caller from context.
func CallerFromContext(ctx context.Context) (domain.AuthenticatedUser, bool) {
	caller, ok := ctx.Value(CallerContextKey).(domain.AuthenticatedUser)
	return caller, ok
}
