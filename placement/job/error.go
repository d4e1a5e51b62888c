package job

import (
	"net/http"

	"github.com/shaheed425/jobsy/pkg/errx"
)

// Error Registry
var ErrRegistry = errx.NewRegistry("JOB")

// Error codes
var (
	CodeJobNotFound = ErrRegistry.Register("NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Job not found")
	CodeInvalidJob  = ErrRegistry.Register("INVALID", errx.TypeValidation, http.StatusBadRequest, "Invalid job data")
	CodeJobClosed   = ErrRegistry.Register("CLOSED", errx.TypeBusiness, http.StatusForbidden, "Job is no longer accepting applications")
)

// Helper functions
func ErrJobNotFound() *errx.Error {
	return ErrRegistry.New(CodeJobNotFound)
}

func ErrInvalidJob() *errx.Error {
	return ErrRegistry.New(CodeInvalidJob)
}

func ErrJobClosed() *errx.Error {
	return ErrRegistry.New(CodeJobClosed)
}
