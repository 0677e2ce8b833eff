// Package entities contains core business entities.
package entities

import (
	"fmt"
	"regexp"
	"strings"
)

// Single @, non-empty local part, dotted domain.
var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// ValidateEmail checks the strict address shape enforced at user
// creation and insertion.
func ValidateEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return fmt.Errorf("%w: email cannot be null or empty", ErrInvalidEmail)
	}
	if !emailPattern.MatchString(email) {
		return fmt.Errorf("%w: expected format user@example.com, got %q", ErrInvalidEmail, email)
	}
	return nil
}

// Role is a closed tag over the fixed user variants.
type Role string

const (
	// RoleAdmin grants user management capability.
	RoleAdmin Role = "Admin"
	// RoleRegular is the default capability set.
	RoleRegular Role = "Regular"
)

// User is a domain representation of an account.
type User struct {
	ID    string
	Name  string
	Email string
	Role  Role
}

// CanManageUsers reports whether the user's role allows managing accounts.
func (u User) CanManageUsers() bool {
	return u.Role == RoleAdmin
}
