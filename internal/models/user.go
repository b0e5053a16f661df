package models

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Role determines which operations an actor may invoke
type Role string

const (
	RoleAdmin    Role = "Admin"
	RoleChef     Role = "Chef"
	RoleCustomer Role = "Customer"
)

// Valid reports whether r is one of the assignable roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleChef, RoleCustomer:
		return true
	default:
		return false
	}
}

// ParseRole converts console input into a Role. Matching is exact.
func ParseRole(s string) (Role, error) {
	r := Role(s)
	if !r.Valid() {
		return "", NewError(CodeInvalidInput, "Invalid Role.")
	}
	return r, nil
}

// User is an account that can log in to the back office.
// No link is enforced between a User and a Customer record.
type User struct {
	ID           int
	Username     string
	PasswordHash string
	Role         Role
}

// SetPassword hashes the plain text password with the given bcrypt cost
func (u *User) SetPassword(password string, cost int) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return fmt.Errorf("hash password for user %d: %w", u.ID, err)
	}
	u.PasswordHash = string(hash)
	return nil
}

// CheckPassword compares a plain text password against the stored hash
func (u User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

func (u User) String() string {
	return fmt.Sprintf("User ID: %d, Username: %s, Role: %s", u.ID, u.Username, u.Role)
}
