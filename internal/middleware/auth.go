package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"carelink/internal/domain"
)

// PrincipalResolver turns a validated token subject into a principal.
// Tokens for deleted accounts fail here even when the signature is valid.
type PrincipalResolver func(ctx context.Context, subject string) (domain.ContextPrincipal, error)

// RequireAuth returns middleware that rejects requests without a valid
// Bearer access token. On success the resolved principal is stored in the
// request context for handlers to pass on explicitly.
func RequireAuth(validator JWTValidator, resolve PrincipalResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal, ok := authenticate(r, validator, resolve)
			if !ok {
				writeUnauthorized(w)
				return
			}
			next.ServeHTTP(w, r.WithContext(domain.WithPrincipal(r.Context(), principal)))
		})
	}
}

// OptionalAuth resolves a principal when a valid Bearer token is present
// but lets anonymous requests through. Used on publicly readable routes.
func OptionalAuth(validator JWTValidator, resolve PrincipalResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if principal, ok := authenticate(r, validator, resolve); ok {
				r = r.WithContext(domain.WithPrincipal(r.Context(), principal))
			}
			next.ServeHTTP(w, r)
		})
	}
}

func authenticate(r *http.Request, validator JWTValidator, resolve PrincipalResolver) (domain.ContextPrincipal, bool) {
	auth := r.Header.Get("Authorization")
	if !strings.HasPrefix(auth, "Bearer ") {
		return domain.ContextPrincipal{}, false
	}

	claims, err := validator.Validate(r.Context(), strings.TrimPrefix(auth, "Bearer "))
	if err != nil || claims.Subject == "" {
		return domain.ContextPrincipal{}, false
	}

	principal, err := resolve(r.Context(), claims.Subject)
	if err != nil {
		return domain.ContextPrincipal{}, false
	}
	return principal, true
}

func writeUnauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"code":    401,
		"message": "unauthorized: provide a valid Bearer token",
	})
}
