package entities

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	domainerrors "fudys.backend/internal/domain/errors"
)

// Role is the closed set of user roles.
type Role string

const (
	RoleCustomer   Role = "customer"
	RoleStoreOwner Role = "store_owner"
	RoleSuperAdmin Role = "super_admin"
)

// ParseRole normalizes a role string into the closed enum. The legacy
// "superadmin" spelling collapses to RoleSuperAdmin; anything else
// unrecognized is rejected.
func ParseRole(s string) (Role, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(RoleCustomer):
		return RoleCustomer, nil
	case string(RoleStoreOwner):
		return RoleStoreOwner, nil
	case string(RoleSuperAdmin), "superadmin":
		return RoleSuperAdmin, nil
	default:
		return "", domainerrors.BadRequest("unknown role: " + s)
	}
}

// User represents an account on the platform.
type User struct {
	ID           uuid.UUID   `json:"id"`
	Name         string      `json:"name"`
	Email        string      `json:"email"`
	PasswordHash string      `json:"-"`
	Role         Role        `json:"role"`
	Phone        null.String `json:"phone,omitempty"`
	CreatedAt    time.Time   `json:"createdAt"`
	UpdatedAt    time.Time   `json:"updatedAt"`
}

// RegisterInput is the payload for user registration.
type RegisterInput struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role"`
	Phone    string `json:"phone"`
}

// LoginInput is the payload for login.
type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse is returned by a successful login.
type AuthResponse struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Role  Role      `json:"role"`
	Token string    `json:"token"`
}

// UpdateProfileInput carries the optional profile fields; at least one
// must be present.
type UpdateProfileInput struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
	Phone *string `json:"phone"`
}

// Empty reports whether no field was provided.
func (i *UpdateProfileInput) Empty() bool {
	return i.Name == nil && i.Email == nil && i.Phone == nil
}
