package models

import (
	"time"

	"github.com/google/uuid"
)

// Role is the closed set of roles a phone-verified account may hold.
type Role string

const (
	RoleAffiliate Role = "affiliate"
	RoleMerchant  Role = "merchant"
)

// ValidRole reports whether r is one of the roles selectable at sign-up.
func ValidRole(r Role) bool {
	return r == RoleAffiliate || r == RoleMerchant
}

// Profile represents an application-level user profile record
type Profile struct {
	ID          uuid.UUID  `json:"id" db:"id"`
	Phone       string     `json:"phone" db:"phone"`
	FullName    string     `json:"full_name" db:"full_name"`
	Role        Role       `json:"role" db:"role"`
	IsActive    bool       `json:"is_active" db:"is_active"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at" db:"updated_at"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty" db:"last_login_at"`
}
