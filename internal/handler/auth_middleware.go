package handler

import (
	"context"
	"log/slog"
	"net/http"

	"contactdesk/internal/auth"
)

type contextKey string

const claimsContextKey contextKey = "claims"

// ClaimsFromContext extracts the verified session claims from the
// request context. Returns nil outside of RequireAuth-wrapped handlers.
func ClaimsFromContext(ctx context.Context) *auth.Claims {
	claims, _ := ctx.Value(claimsContextKey).(*auth.Claims)
	return claims
}

// RequireAuth protects a route with the bearer-token check. A missing
// token is 401; a present but invalid, malformed, or expired one is 403
// with the validation failure echoed in details. Valid claims are
// injected into the request context.
func (h *Handler) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := auth.BearerToken(r)
		if token == "" {
			writeError(w, http.StatusUnauthorized, "Access denied - No token provided")
			return
		}

		claims, err := auth.ValidateToken(token, h.jwtSecret)
		if err != nil {
			slog.Warn("token verification failed", "error", err)
			writeErrorDetails(w, http.StatusForbidden, "Invalid token", err)
			return
		}

		ctx := context.WithValue(r.Context(), claimsContextKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
