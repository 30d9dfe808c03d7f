package middlewares

import (
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/gw-travel-diary/internal/logger"
	"github.com/sbilibin2017/gw-travel-diary/internal/models"
)

// RequireAdmin returns a middleware that rejects requests whose
// authenticated identity does not carry the ADMIN role. It must run after
// AuthMiddleware.
func RequireAdmin() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := ClaimsFromContext(r.Context())
			if !ok {
				logger.Log.Errorw("admin check without identity in context")
				w.WriteHeader(http.StatusForbidden)
				json.NewEncoder(w).Encode(authErrorResponse{Error: "User not authenticated"})
				return
			}

			if models.Role(claims.Role) != models.RoleAdmin {
				logger.Log.Infow("admin access denied", "user_id", claims.UserID, "role", claims.Role)
				w.WriteHeader(http.StatusForbidden)
				json.NewEncoder(w).Encode(authErrorResponse{Error: "Access denied. Admin privileges required."})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
