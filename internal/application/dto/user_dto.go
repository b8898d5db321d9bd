package dto

import "time"

// RegisterRequest entrada para registro: name, email, password y phone opcional.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=200"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Phone    string `json:"phone" validate:"omitempty,max=30"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserResponse vista pública de un usuario (nunca incluye el hash).
type UserResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone,omitempty"`
	Plan         string    `json:"plan"`
	TrialEndDate time.Time `json:"trial_end_date"`
	CreatedAt    time.Time `json:"created_at"`
}

// AuthResponse salida de registro y login: token de sesión + usuario.
type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
