package domain

import (
	"net/mail"
	"strings"
	"time"
)

// MinPasswordLength is the minimum accepted password length at registration.
const MinPasswordLength = 8

// User represents an authenticated principal: the account that owns
// patients and assigns doctors to them.
type User struct {
	ID           string
	Username     string
	Email        string
	FirstName    string
	LastName     string
	PasswordHash string
	CreatedAt    time.Time
}

// RegisterRequest holds parameters for creating a new user account.
type RegisterRequest struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate checks that the request is well-formed.
func (r *RegisterRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return ErrValidation("name is required")
	}
	if strings.TrimSpace(r.Username) == "" {
		return ErrValidation("username is required")
	}
	if !ValidEmail(r.Email) {
		return ErrValidation("a valid email is required")
	}
	if len(r.Password) < MinPasswordLength {
		return ErrValidation("password must be at least %d characters", MinPasswordLength)
	}
	return nil
}

// SplitName separates a full name into first and last parts. Everything
// after the first space belongs to the last name.
func (r *RegisterRequest) SplitName() (first, last string) {
	parts := strings.SplitN(strings.TrimSpace(r.Name), " ", 2)
	first = parts[0]
	if len(parts) > 1 {
		last = parts[1]
	}
	return first, last
}

// LoginRequest holds credentials for an existing user.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Validate checks that the request is well-formed.
func (r *LoginRequest) Validate() error {
	if r.Username == "" {
		return ErrValidation("username is required")
	}
	if r.Password == "" {
		return ErrValidation("password is required")
	}
	return nil
}

// ValidEmail reports whether s parses as a bare RFC 5322 address.
func ValidEmail(s string) bool {
	if s == "" || strings.ContainsAny(s, " <>") {
		return false
	}
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s
}
