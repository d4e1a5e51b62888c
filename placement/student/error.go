package student

import (
	"net/http"

	"github.com/shaheed425/jobsy/pkg/errx"
)

// Error Registry
var ErrRegistry = errx.NewRegistry("STUDENT")

// Error codes
var (
	CodeStudentNotFound   = ErrRegistry.Register("NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Student not found")
	CodeInvalidStudent    = ErrRegistry.Register("INVALID", errx.TypeValidation, http.StatusBadRequest, "Invalid student data")
	CodeStudentIneligible = ErrRegistry.Register("INELIGIBLE", errx.TypeBusiness, http.StatusForbidden, "Student is not eligible for placements")
)

// Helper functions
func ErrStudentNotFound() *errx.Error {
	return ErrRegistry.New(CodeStudentNotFound)
}

func ErrInvalidStudent() *errx.Error {
	return ErrRegistry.New(CodeInvalidStudent)
}

func ErrStudentIneligible() *errx.Error {
	return ErrRegistry.New(CodeStudentIneligible)
}
