// Package auth is the authentication boundary. It resolves callers to a
// (userID, role) pair before any placement operation runs; the placement
// core itself never inspects credentials.
package auth

import (
	"net/http"

	"github.com/shaheed425/jobsy/pkg/errx"
)

// Role of an authenticated caller
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleStudent  Role = "student"
	RoleEmployer Role = "employer"
)

func (r Role) IsValid() bool {
	return r == RoleAdmin || r == RoleStudent || r == RoleEmployer
}

// AuthContext identifies the caller for the duration of one request
type AuthContext struct {
	UserID int64 `json:"userId"`
	Role   Role  `json:"role"`
}

// Error Registry
var ErrRegistry = errx.NewRegistry("AUTH")

// Error codes
var (
	CodeUnauthenticated    = ErrRegistry.Register("UNAUTHENTICATED", errx.TypeAuthentication, http.StatusUnauthorized, "Authentication required")
	CodeInvalidToken       = ErrRegistry.Register("INVALID_TOKEN", errx.TypeAuthentication, http.StatusUnauthorized, "Invalid or expired token")
	CodeInvalidCredentials = ErrRegistry.Register("INVALID_CREDENTIALS", errx.TypeAuthentication, http.StatusUnauthorized, "Invalid credentials")
	CodeForbidden          = ErrRegistry.Register("FORBIDDEN", errx.TypeAuthorization, http.StatusForbidden, "Insufficient permissions")
	CodeInvalidRole        = ErrRegistry.Register("INVALID_ROLE", errx.TypeValidation, http.StatusBadRequest, "Invalid role")
)

// Helper functions
func ErrUnauthenticated() *errx.Error {
	return ErrRegistry.New(CodeUnauthenticated)
}

func ErrInvalidToken() *errx.Error {
	return ErrRegistry.New(CodeInvalidToken)
}

func ErrInvalidCredentials() *errx.Error {
	return ErrRegistry.New(CodeInvalidCredentials)
}

func ErrForbidden() *errx.Error {
	return ErrRegistry.New(CodeForbidden)
}

func ErrInvalidRole() *errx.Error {
	return ErrRegistry.New(CodeInvalidRole)
}
