package employer

import (
	"net/http"

	"github.com/shaheed425/jobsy/pkg/errx"
)

// Error Registry
var ErrRegistry = errx.NewRegistry("EMPLOYER")

// Error codes
var (
	CodeEmployerNotFound        = ErrRegistry.Register("NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Employer not found")
	CodeInvalidEmployer         = ErrRegistry.Register("INVALID", errx.TypeValidation, http.StatusBadRequest, "Invalid employer data")
	CodeEmployerNotVerified     = ErrRegistry.Register("NOT_VERIFIED", errx.TypeBusiness, http.StatusForbidden, "Company must be verified to post jobs")
	CodeEmployerAlreadyVerified = ErrRegistry.Register("ALREADY_VERIFIED", errx.TypeConflict, http.StatusConflict, "Employer is already verified")
)

// Helper functions
func ErrEmployerNotFound() *errx.Error {
	return ErrRegistry.New(CodeEmployerNotFound)
}

func ErrInvalidEmployer() *errx.Error {
	return ErrRegistry.New(CodeInvalidEmployer)
}

func ErrEmployerNotVerified() *errx.Error {
	return ErrRegistry.New(CodeEmployerNotVerified)
}

func ErrEmployerAlreadyVerified() *errx.Error {
	return ErrRegistry.New(CodeEmployerAlreadyVerified)
}
