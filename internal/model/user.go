package model

import (
	"time"

	"github.com/google/uuid"
)

// User roles.
const (
	RoleCitizen    = "citizen"
	RoleDepartment = "department"
	RoleAdmin      = "admin"
)

type User struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash *string   `json:"-"`
	AuthProvider string    `json:"auth_provider,omitempty"`
	Role         string    `json:"role"`
	// Department is set only for role=department staff; it scopes which
	// reports they may query and transition.
	Department *string   `json:"department,omitempty"`
	IsVerified bool      `json:"is_verified"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func ValidRole(role string) bool {
	switch role {
	case RoleCitizen, RoleDepartment, RoleAdmin:
		return true
	}
	return false
}
