package http

import (
	"net/http"
	"strings"

	"suncrest-hotel-backend/internal/domain"
	"suncrest-hotel-backend/internal/security"
)

// AdminOnly gates a route on a bearer token carrying the admin role. This is
// the single role check; there is no finer-grained permission model.
func AdminOnly(tokenManager security.TokenManager, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			writeError(w, domain.ErrUnauthorized)
			return
		}

		claims, err := tokenManager.ValidateToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			writeError(w, domain.ErrUnauthorized)
			return
		}
		if !claims.HasRole(domain.RoleAdmin) {
			writeError(w, domain.ErrUnauthorized)
			return
		}

		next(w, r)
	}
}
