package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/gw-travel-diary/internal/logger"
	"github.com/sbilibin2017/gw-travel-diary/internal/models"
)

// AdminLister defines the interface that the service must implement.
type AdminLister interface {
	GetAllAdmins(ctx context.Context) ([]models.UserDB, error)
}

// ListAdminsErrorResponse represents an error response for the admin list
// swagger:model ListAdminsErrorResponse
type ListAdminsErrorResponse struct {
	// Error message
	// default: Internal server error
	Error string `json:"error"`
}

// NewListAdminsHandler returns an HTTP handler for listing all admins.
// @Summary List all admins
// @Description Returns all users with role ADMIN, newest first.
// @Tags admin
// @Produce json
// @Success 200 {array} models.PublicUser "All admins"
// @Failure 403 {object} handlers.ListAdminsErrorResponse "Admin privileges required"
// @Router /admin/list [get]
// @Security BearerAuth
func NewListAdminsHandler(svc AdminLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		admins, err := svc.GetAllAdmins(r.Context())
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ListAdminsErrorResponse{Error: "Internal server error"})
			return
		}

		results := make([]*models.PublicUser, 0, len(admins))
		for i := range admins {
			results = append(results, admins[i].Public())
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(results)
	}
}
