package models

import (
	"time"

	"github.com/google/uuid"
)

// Role is the authorization category attached to a user.
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// Valid reports whether the role is one of the known variants.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// UserDB represents a user record in the database.
// The password hash is never serialized into responses.
type UserDB struct {
	UserID       uuid.UUID `json:"id" db:"user_id"`                // Primary key
	Email        string    `json:"email" db:"email"`               // Unique email
	Username     *string   `json:"username" db:"username"`         // Unique username, optional
	PasswordHash string    `json:"-" db:"password_hash"`           // Hashed password
	Name         *string   `json:"name" db:"name"`                 // Display name
	Bio          *string   `json:"bio" db:"bio"`                   // Short bio
	Location     *string   `json:"location" db:"location"`         // Free-form location
	AvatarURL    *string   `json:"avatarUrl" db:"avatar_url"`      // Relative avatar URL
	Role         Role      `json:"role" db:"role"`                 // USER or ADMIN
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`      // Creation timestamp
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`      // Last update timestamp
}

// PublicUser is the projection of a user that is safe to return to clients.
type PublicUser struct {
	UserID    uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Username  *string   `json:"username,omitempty"`
	Name      *string   `json:"name"`
	Bio       *string   `json:"bio"`
	Location  *string   `json:"location"`
	AvatarURL *string   `json:"avatarUrl"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Public returns the client-safe projection of the user.
func (u *UserDB) Public() *PublicUser {
	return &PublicUser{
		UserID:    u.UserID,
		Email:     u.Email,
		Username:  u.Username,
		Name:      u.Name,
		Bio:       u.Bio,
		Location:  u.Location,
		AvatarURL: u.AvatarURL,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// NewUser carries the fields needed to insert a user row.
type NewUser struct {
	Email        string
	Username     *string
	PasswordHash string
	Name         *string
	Bio          *string
	Location     *string
	Role         Role
}

// ProfilePatch carries a partial profile update. Nil fields are left untouched.
type ProfilePatch struct {
	Name      *string
	Bio       *string
	Location  *string
	AvatarURL *string
}
