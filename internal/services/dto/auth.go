package dto

import "jobtrack_backend/internal/models"

type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserBrief is the minimal user shape returned on register and login.
type UserBrief struct {
	Name string `json:"name"`
}

// AuthResponse pairs a user with a freshly issued identity token.
type AuthResponse struct {
	User  UserBrief `json:"user"`
	Token string    `json:"token"`
}

type UpdateUserRequest struct {
	Name         string               `json:"name" validate:"required"`
	Email        string               `json:"email" validate:"required,email"`
	CustomFields []models.CustomField `json:"customFields"`
}

// UpdateUserResponse returns the updated user plus a re-issued token so
// the client's token reflects the new display name.
type UpdateUserResponse struct {
	User  *models.User `json:"user"`
	Token string       `json:"token"`
}

type ProfileUser struct {
	Name         string               `json:"name"`
	Email        string               `json:"email"`
	CustomFields []models.CustomField `json:"customFields"`
}

type ProfileResponse struct {
	User ProfileUser `json:"user"`
}
