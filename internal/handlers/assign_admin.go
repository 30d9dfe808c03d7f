package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/sbilibin2017/gw-travel-diary/internal/logger"
	"github.com/sbilibin2017/gw-travel-diary/internal/models"
	"github.com/sbilibin2017/gw-travel-diary/internal/services"
)

// AdminAssigner defines the interface that the service must implement.
type AdminAssigner interface {
	AssignAdminRole(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
}

// AssignAdminRequest represents the JSON body for promoting a user
// swagger:model AssignAdminRequest
type AssignAdminRequest struct {
	// Target user id
	// required: true
	// default: 11111111-1111-1111-1111-111111111111
	UserID string `json:"userId" validate:"required,uuid"`
}

// AssignAdminResponse represents a successful promotion response
// swagger:model AssignAdminResponse
type AssignAdminResponse struct {
	// Success message
	// default: User promoted to admin successfully
	Message string `json:"message"`

	// Promoted user projection
	Admin *models.PublicUser `json:"admin"`
}

// AssignAdminErrorResponse represents an error response for promotion
// swagger:model AssignAdminErrorResponse
type AssignAdminErrorResponse struct {
	// Error message
	// default: User is already an admin
	Error string `json:"error"`
}

// NewAssignAdminHandler returns an HTTP handler for promoting a user to admin.
// @Summary Promote a user to admin
// @Description Sets the target user's role to ADMIN. Fails if the user does not exist or already is one.
// @Tags admin
// @Accept json
// @Produce json
// @Param assignAdminRequest body handlers.AssignAdminRequest true "Promotion request"
// @Success 200 {object} handlers.AssignAdminResponse "User promoted"
// @Failure 400 {object} handlers.AssignAdminErrorResponse "Invalid request body"
// @Failure 404 {object} handlers.AssignAdminErrorResponse "User not found"
// @Failure 409 {object} handlers.AssignAdminErrorResponse "User is already an admin"
// @Router /admin/assign [patch]
// @Security BearerAuth
func NewAssignAdminHandler(svc AdminAssigner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AssignAdminRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(AssignAdminErrorResponse{Error: "Invalid request body"})
			return
		}

		if err := validate.Struct(req); err != nil {
			logger.Log.Infow("assign admin request rejected", "error", err)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(AssignAdminErrorResponse{Error: "Invalid request body"})
			return
		}

		userID, err := uuid.Parse(req.UserID)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(AssignAdminErrorResponse{Error: "Invalid user id"})
			return
		}

		admin, err := svc.AssignAdminRole(r.Context(), userID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(AssignAdminErrorResponse{Error: "User not found"})
			case errors.Is(err, services.ErrUserAlreadyAdmin):
				w.WriteHeader(http.StatusConflict)
				json.NewEncoder(w).Encode(AssignAdminErrorResponse{Error: "User is already an admin"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(AssignAdminErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(AssignAdminResponse{
			Message: "User promoted to admin successfully",
			Admin:   admin.Public(),
		})
	}
}
