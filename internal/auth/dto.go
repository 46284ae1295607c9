package auth

import "github.com/angelmondragon/lojavirtual-backend/internal/users"

// RegisterRequest is the body of POST /auth/registrar.
type RegisterRequest struct {
	Name     string `json:"nome" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Password string `json:"senha" validate:"required"`
}

// LoginRequest captures the credentials sent to POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"senha" validate:"required"`
}

// LoginResponse carries the authenticated user and a bearer token.
type LoginResponse struct {
	User  *users.UserDTO `json:"user"`
	Token string         `json:"token"`
}
