package middlewares

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/gw-travel-diary/internal/jwt"
	"github.com/sbilibin2017/gw-travel-diary/internal/logger"
)

// Tokener defines the minimal token interface needed by the middleware.
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	Parse(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// Blacklister checks whether a token has been revoked.
type Blacklister interface {
	IsTokenBlacklisted(ctx context.Context, token string) (bool, error)
}

// contextKey is an unexported type for keys in context
type contextKey struct{ name string }

var (
	claimsKey = contextKey{"claims"}
	tokenKey  = contextKey{"token"}
)

// ContextWithClaims returns a context carrying the authenticated identity.
func ContextWithClaims(ctx context.Context, claims *jwt.Claims) context.Context {
	return context.WithValue(ctx, claimsKey, claims)
}

// ContextWithToken returns a context carrying the raw bearer token.
func ContextWithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey, token)
}

// ClaimsFromContext retrieves the authenticated identity from the context.
func ClaimsFromContext(ctx context.Context) (*jwt.Claims, bool) {
	claims, ok := ctx.Value(claimsKey).(*jwt.Claims)
	return claims, ok
}

// TokenFromContext retrieves the raw bearer token from the context.
func TokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(tokenKey).(string)
	return token, ok
}

type authErrorResponse struct {
	Error string `json:"error"`
}

// AuthMiddleware returns a middleware that authenticates requests: it
// extracts the bearer token, verifies signature and expiry, rejects revoked
// tokens and attaches the decoded identity to the request context.
func AuthMiddleware(tokener Tokener, blacklist Blacklister) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				logger.Log.Infow("authorization failed", "error", err)
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(authErrorResponse{Error: "Unauthorized"})
				return
			}

			claims, err := tokener.Parse(ctx, tokenString)
			if err != nil {
				logger.Log.Infow("authorization failed", "error", err)
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(authErrorResponse{Error: "Unauthorized"})
				return
			}

			revoked, err := blacklist.IsTokenBlacklisted(ctx, tokenString)
			if err != nil {
				logger.Log.Errorw("blacklist lookup failed", "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(authErrorResponse{Error: "Internal server error"})
				return
			}
			if revoked {
				logger.Log.Infow("authorization failed, token revoked", "user_id", claims.UserID)
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(authErrorResponse{Error: "Token has been revoked"})
				return
			}

			ctx = ContextWithClaims(ctx, claims)
			ctx = ContextWithToken(ctx, tokenString)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
