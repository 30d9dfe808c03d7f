package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"

	"github.com/google/uuid"

	"github.com/sbilibin2017/gw-travel-diary/internal/logger"
	"github.com/sbilibin2017/gw-travel-diary/internal/middlewares"
	"github.com/sbilibin2017/gw-travel-diary/internal/models"
	"github.com/sbilibin2017/gw-travel-diary/internal/services"
	"github.com/sbilibin2017/gw-travel-diary/internal/uploads"
)

// ProfileUpdater defines the interface that the service must implement.
type ProfileUpdater interface {
	UpdateProfile(ctx context.Context, userID uuid.UUID, patch models.ProfilePatch) (*models.UserDB, error)
}

// AvatarSaver stores an accepted avatar file and returns its relative URL.
type AvatarSaver interface {
	Save(file multipart.File, header *multipart.FileHeader) (string, error)
}

// maxUpdateProfileBody bounds the whole multipart body: the avatar limit
// plus headroom for the text fields.
const maxUpdateProfileBody = uploads.MaxAvatarSize + 1<<20

// UpdateProfileErrorResponse represents an error response for profile updates
// swagger:model UpdateProfileErrorResponse
type UpdateProfileErrorResponse struct {
	// Error message
	// default: Only jpg, jpeg and png files are allowed
	Error string `json:"error"`
}

// NewUpdateProfileHandler returns an HTTP handler for partial profile
// updates with an optional avatar upload. Text fields left out of the
// form are not touched.
// @Summary Update user profile with optional avatar upload
// @Description Applies a partial update of name, bio and location. An optional multipart field "avatar" (jpg, jpeg, png, max 5MB) replaces the avatar.
// @Tags users
// @Accept mpfd
// @Produce json
// @Param name formData string false "Display name"
// @Param bio formData string false "Short bio"
// @Param location formData string false "Location"
// @Param avatar formData file false "Avatar image (jpg, jpeg, png, max 5MB)"
// @Success 200 {object} models.PublicUser "Updated user profile"
// @Failure 400 {object} handlers.UpdateProfileErrorResponse "Invalid file or form"
// @Failure 401 {object} handlers.UpdateProfileErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.UpdateProfileErrorResponse "User not found"
// @Router /users/profile [patch]
// @Security BearerAuth
func NewUpdateProfileHandler(svc ProfileUpdater, avatars AvatarSaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middlewares.ClaimsFromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(UpdateProfileErrorResponse{Error: "Unauthorized"})
			return
		}

		r.Body = http.MaxBytesReader(w, r.Body, maxUpdateProfileBody)
		if err := r.ParseMultipartForm(maxUpdateProfileBody); err != nil {
			logger.Log.Infow("profile update rejected, bad multipart form", "error", err)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(UpdateProfileErrorResponse{Error: "Invalid multipart form"})
			return
		}

		patch := models.ProfilePatch{
			Name:     formValue(r, "name"),
			Bio:      formValue(r, "bio"),
			Location: formValue(r, "location"),
		}

		file, header, err := r.FormFile("avatar")
		if err == nil {
			defer file.Close()

			avatarURL, err := avatars.Save(file, header)
			if err != nil {
				switch {
				case errors.Is(err, uploads.ErrInvalidFileType):
					w.WriteHeader(http.StatusBadRequest)
					json.NewEncoder(w).Encode(UpdateProfileErrorResponse{
						Error: "Only jpg, jpeg and png files are allowed",
					})
				case errors.Is(err, uploads.ErrFileTooLarge):
					w.WriteHeader(http.StatusBadRequest)
					json.NewEncoder(w).Encode(UpdateProfileErrorResponse{
						Error: "File exceeds maximum allowed size of 5MB",
					})
				default:
					logger.Log.Errorw("failed to store avatar", "err", err)
					w.WriteHeader(http.StatusInternalServerError)
					json.NewEncoder(w).Encode(UpdateProfileErrorResponse{Error: "Internal server error"})
				}
				return
			}
			patch.AvatarURL = &avatarURL
		} else if !errors.Is(err, http.ErrMissingFile) {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(UpdateProfileErrorResponse{Error: "Invalid multipart form"})
			return
		}

		user, err := svc.UpdateProfile(r.Context(), claims.UserID, patch)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(UpdateProfileErrorResponse{Error: "User not found"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(UpdateProfileErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(user.Public())
	}
}

// formValue returns the form field as a pointer, nil when the field was
// not sent at all. An explicitly empty field clears the value.
func formValue(r *http.Request, key string) *string {
	if r.MultipartForm == nil {
		return nil
	}
	values, ok := r.MultipartForm.Value[key]
	if !ok || len(values) == 0 {
		return nil
	}
	return &values[0]
}
