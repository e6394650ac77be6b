package model

import (
	"github.com/google/uuid"
)

type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	// Defaults to citizen. Department staff accounts must name their department.
	Role       string `json:"role" validate:"omitempty,oneof=citizen department admin"`
	Department string `json:"department" validate:"omitempty,department"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginUserResponse struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Role       string    `json:"role"`
	Department *string   `json:"department,omitempty"`
	IsVerified bool      `json:"is_verified"`
}

type LoginResponse struct {
	User         *LoginUserResponse `json:"user"`
	Token        string             `json:"token"`
	RefreshToken string             `json:"refresh_token,omitempty"`
}
