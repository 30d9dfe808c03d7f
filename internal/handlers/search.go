package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-travel-diary/internal/logger"
	"github.com/sbilibin2017/gw-travel-diary/internal/models"
	"github.com/sbilibin2017/gw-travel-diary/internal/services"
)

// UserSearcher defines the interface that the service must implement.
type UserSearcher interface {
	SearchByUsername(ctx context.Context, fragment string) ([]models.UserDB, error)
}

// SearchErrorResponse represents an error response for user search
// swagger:model SearchErrorResponse
type SearchErrorResponse struct {
	// Error message
	// default: Username query parameter is required
	Error string `json:"error"`
}

// NewSearchHandler returns an HTTP handler for username search.
// @Summary Search users by username
// @Description Case-insensitive partial match on username. An empty or whitespace-only query is rejected.
// @Tags users
// @Produce json
// @Param username query string true "Username fragment to search for"
// @Success 200 {array} models.PublicUser "Matching users"
// @Failure 400 {object} handlers.SearchErrorResponse "Username query parameter is required"
// @Failure 401 {object} handlers.SearchErrorResponse "Unauthorized"
// @Router /users/search [get]
// @Security BearerAuth
func NewSearchHandler(svc UserSearcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username := r.URL.Query().Get("username")

		users, err := svc.SearchByUsername(r.Context(), username)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrEmptyQuery):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(SearchErrorResponse{
					Error: "Username query parameter is required",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(SearchErrorResponse{Error: "Internal server error"})
			}
			return
		}

		results := make([]*models.PublicUser, 0, len(users))
		for i := range users {
			results = append(results, users[i].Public())
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(results)
	}
}
