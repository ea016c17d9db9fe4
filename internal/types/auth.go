//nolint:revive // types is a standard Go package name pattern
package types

import (
	"fmt"
	"strings"
)

// DefaultUserName is used when an email has no local part.
const DefaultUserName = "User"

// AuthMode selects which entry form the auth page shows.
type AuthMode string

// Auth modes
const (
	AuthLogin  AuthMode = "login"
	AuthSignup AuthMode = "signup"
)

// ParseAuthMode converts a string into an AuthMode.
func ParseAuthMode(s string) (AuthMode, error) {
	switch AuthMode(s) {
	case AuthLogin, AuthSignup:
		return AuthMode(s), nil
	default:
		return "", fmt.Errorf("unknown auth mode %q (want %q or %q)", s, AuthLogin, AuthSignup)
	}
}

// LoginRequest represents the login or signup form submission.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Validate validates the LoginRequest using the validator.
func (r *LoginRequest) Validate() error {
	return Validator().Struct(r)
}

// User represents the authenticated identity.
type User struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// NewUser builds a User, deriving the name from the email local part when name is empty.
func NewUser(email, name string) *User {
	if name == "" {
		name = NameFromEmail(email)
	}
	return &User{Email: email, Name: name}
}

// NameFromEmail returns the portion of email before '@', or DefaultUserName if that is empty.
func NameFromEmail(email string) string {
	local, _, _ := strings.Cut(email, "@")
	if local == "" {
		return DefaultUserName
	}
	return local
}

// Initial returns the upper-cased first letter of the display name.
func (u *User) Initial() string {
	if u == nil || u.Name == "" {
		return ""
	}
	r := []rune(u.Name)
	return strings.ToUpper(string(r[0]))
}
