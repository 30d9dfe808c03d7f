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

// AdminCreator defines the interface that the service must implement.
type AdminCreator interface {
	CreateAdmin(ctx context.Context, email, username, password, name string, bio, location *string) (*models.UserDB, error)
}

// CreateAdminRequest represents the JSON body for admin creation
// swagger:model CreateAdminRequest
type CreateAdminRequest struct {
	// Email
	// required: true
	// default: boss@test.com
	Email string `json:"email" validate:"required,email"`

	// Username
	// required: true
	// default: boss
	Username string `json:"username" validate:"required"`

	// Password
	// required: true
	// default: secret1
	Password string `json:"password" validate:"required,min=6"`

	// Display name
	// required: true
	// default: The Boss
	Name string `json:"name" validate:"required"`

	// Short bio
	Bio *string `json:"bio,omitempty"`

	// Location
	Location *string `json:"location,omitempty"`
}

// CreateAdminResponse represents a successful admin creation response
// swagger:model CreateAdminResponse
type CreateAdminResponse struct {
	// Success message
	// default: Admin created successfully
	Message string `json:"message"`

	// Created admin projection
	Admin *models.PublicUser `json:"admin"`
}

// CreateAdminErrorResponse represents an error response for admin creation
// swagger:model CreateAdminErrorResponse
type CreateAdminErrorResponse struct {
	// Error message
	// default: Username is already taken
	Error string `json:"error"`
}

// NewCreateAdminHandler returns an HTTP handler for creating an admin account.
// @Summary Create a new admin
// @Description Creates a user with role ADMIN. Email and username must both be unique; the error says which one collided.
// @Tags admin
// @Accept json
// @Produce json
// @Param createAdminRequest body handlers.CreateAdminRequest true "Admin creation request"
// @Success 201 {object} handlers.CreateAdminResponse "Admin successfully created"
// @Failure 400 {object} handlers.CreateAdminErrorResponse "Invalid request body"
// @Failure 403 {object} handlers.CreateAdminErrorResponse "Admin privileges required"
// @Failure 409 {object} handlers.CreateAdminErrorResponse "Email or username already in use"
// @Router /admin/create [post]
// @Security BearerAuth
func NewCreateAdminHandler(svc AdminCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateAdminRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(CreateAdminErrorResponse{Error: "Invalid request body"})
			return
		}

		if err := validate.Struct(req); err != nil {
			logger.Log.Infow("create admin request rejected", "error", err)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(CreateAdminErrorResponse{Error: "Invalid request body"})
			return
		}

		admin, err := svc.CreateAdmin(r.Context(), req.Email, req.Username, req.Password, req.Name, req.Bio, req.Location)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrEmailAlreadyExists):
				w.WriteHeader(http.StatusConflict)
				json.NewEncoder(w).Encode(CreateAdminErrorResponse{
					Error: "User with this email already exists",
				})
			case errors.Is(err, services.ErrUsernameTaken):
				w.WriteHeader(http.StatusConflict)
				json.NewEncoder(w).Encode(CreateAdminErrorResponse{
					Error: "Username is already taken",
				})
			case errors.Is(err, services.ErrUserAlreadyExists):
				w.WriteHeader(http.StatusConflict)
				json.NewEncoder(w).Encode(CreateAdminErrorResponse{
					Error: "User with this email or username already exists",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(CreateAdminErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(CreateAdminResponse{
			Message: "Admin created successfully",
			Admin:   admin.Public(),
		})
	}
}
