package auth

import (
	"fmt"
	"strings"
)

// User is the authenticated account held by the session store. Token carries
// the session credential, normalized from the provider's accessToken/token
// field naming. For registrations it is a synthesized stub (see token.go).
type User struct {
	ID        int    `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Gender    string `json:"gender,omitempty"`
	Image     string `json:"image,omitempty"`
	Token     string `json:"token"`
}

// FullName joins the user's first and last names for display.
func (u User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// Credentials are the login form fields.
type Credentials struct {
	Username string
	Password string
}

// Registration are the sign-up form fields.
type Registration struct {
	FirstName       string
	LastName        string
	Email           string
	Username        string
	Password        string
	ConfirmPassword string
}

// ValidationError reports a single malformed form field. Validation runs
// before any network call and never touches the transport layer.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

const (
	minUsernameLen = 3
	minPasswordLen = 6
)

// Validate checks login credentials field by field.
func (c Credentials) Validate() *ValidationError {
	if len(strings.TrimSpace(c.Username)) < minUsernameLen {
		return &ValidationError{Field: "username", Message: fmt.Sprintf("must be at least %d characters long", minUsernameLen)}
	}
	if len(c.Password) < minPasswordLen {
		return &ValidationError{Field: "password", Message: fmt.Sprintf("must be at least %d characters long", minPasswordLen)}
	}
	return nil
}

// Validate checks registration fields, including password confirmation.
func (r Registration) Validate() *ValidationError {
	if strings.TrimSpace(r.FirstName) == "" {
		return &ValidationError{Field: "first name", Message: "is required"}
	}
	if strings.TrimSpace(r.LastName) == "" {
		return &ValidationError{Field: "last name", Message: "is required"}
	}
	email := strings.TrimSpace(r.Email)
	if email == "" {
		return &ValidationError{Field: "email", Message: "is required"}
	}
	if !strings.Contains(email, "@") {
		return &ValidationError{Field: "email", Message: "must be a valid address"}
	}
	if len(strings.TrimSpace(r.Username)) < minUsernameLen {
		return &ValidationError{Field: "username", Message: fmt.Sprintf("must be at least %d characters long", minUsernameLen)}
	}
	if len(r.Password) < minPasswordLen {
		return &ValidationError{Field: "password", Message: fmt.Sprintf("must be at least %d characters long", minPasswordLen)}
	}
	if r.Password != r.ConfirmPassword {
		return &ValidationError{Field: "confirm password", Message: "passwords do not match"}
	}
	return nil
}
