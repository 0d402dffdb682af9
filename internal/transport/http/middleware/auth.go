package middleware

import (
	"context"
	"net/http"
	"strings"

	"employeerecords/internal/domain/identity"
)

type ctxKey string

const ctxKeyIdentity ctxKey = "identity"

// TokenParser verifies a presented token and returns its claims. Satisfied by
// *identity.Issuer.
type TokenParser interface {
	Parse(tokenString string) (*identity.Claims, error)
}

// Identity is what the gate attaches to the request context once a token
// checks out.
type Identity struct {
	EmployeeID string
	Email      string
}

// Auth gates a route group: requests without a valid, unexpired bearer token
// are rejected with 401 before the handler ever runs. Routes that should stay
// open are simply wired outside the gated group.
func Auth(parser TokenParser) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				unauthorized(w)
				return
			}
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
				unauthorized(w)
				return
			}

			claims, err := parser.Parse(parts[1])
			if err != nil {
				unauthorized(w)
				return
			}

			ctx := context.WithValue(r.Context(), ctxKeyIdentity, Identity{
				EmployeeID: claims.Subject,
				Email:      claims.Email,
			})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func GetIdentity(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(ctxKeyIdentity).(Identity)
	return id, ok
}

func unauthorized(w http.ResponseWriter) {
	w.WriteHeader(http.StatusUnauthorized)
}
