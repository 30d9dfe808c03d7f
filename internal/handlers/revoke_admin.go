package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/sbilibin2017/gw-travel-diary/internal/logger"
	"github.com/sbilibin2017/gw-travel-diary/internal/models"
	"github.com/sbilibin2017/gw-travel-diary/internal/services"
)

// AdminRevoker defines the interface that the service must implement.
type AdminRevoker interface {
	RevokeAdminRole(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
}

// RevokeAdminResponse represents a successful demotion response
// swagger:model RevokeAdminResponse
type RevokeAdminResponse struct {
	// Success message
	// default: Admin role revoked successfully
	Message string `json:"message"`

	// Demoted user projection
	Admin *models.PublicUser `json:"admin"`
}

// RevokeAdminErrorResponse represents an error response for demotion
// swagger:model RevokeAdminErrorResponse
type RevokeAdminErrorResponse struct {
	// Error message
	// default: User is not an admin
	Error string `json:"error"`
}

// NewRevokeAdminHandler returns an HTTP handler for demoting an admin to
// a regular user. The target id comes from the URL path.
// @Summary Revoke a user's admin role
// @Description Sets the target user's role back to USER. Fails if the user does not exist or is not an admin.
// @Tags admin
// @Produce json
// @Param userID path string true "Target user id"
// @Success 200 {object} handlers.RevokeAdminResponse "Admin role revoked"
// @Failure 400 {object} handlers.RevokeAdminErrorResponse "Invalid user id"
// @Failure 404 {object} handlers.RevokeAdminErrorResponse "User not found"
// @Failure 409 {object} handlers.RevokeAdminErrorResponse "User is not an admin"
// @Router /admin/revoke/{userID} [delete]
// @Security BearerAuth
func NewRevokeAdminHandler(svc AdminRevoker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := uuid.Parse(chi.URLParam(r, "userID"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(RevokeAdminErrorResponse{Error: "Invalid user id"})
			return
		}

		admin, err := svc.RevokeAdminRole(r.Context(), userID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(RevokeAdminErrorResponse{Error: "User not found"})
			case errors.Is(err, services.ErrUserNotAdmin):
				w.WriteHeader(http.StatusConflict)
				json.NewEncoder(w).Encode(RevokeAdminErrorResponse{Error: "User is not an admin"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(RevokeAdminErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(RevokeAdminResponse{
			Message: "Admin role revoked successfully",
			Admin:   admin.Public(),
		})
	}
}
