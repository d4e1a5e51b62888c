package application

import (
	"net/http"

	"github.com/shaheed425/jobsy/pkg/errx"
)

// Error Registry
var ErrRegistry = errx.NewRegistry("APPLICATION")

// Error codes
var (
	CodeApplicationNotFound  = ErrRegistry.Register("NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Application not found")
	CodeInvalidApplication   = ErrRegistry.Register("INVALID", errx.TypeValidation, http.StatusBadRequest, "Invalid application data")
	CodeDuplicateApplication = ErrRegistry.Register("DUPLICATE", errx.TypeConflict, http.StatusConflict, "You have already applied for this job")
	CodeStudentIneligible    = ErrRegistry.Register("STUDENT_INELIGIBLE", errx.TypeBusiness, http.StatusForbidden, "Student is not eligible for placements")
	CodeCriteriaNotMet       = ErrRegistry.Register("CRITERIA_NOT_MET", errx.TypeBusiness, http.StatusForbidden, "Student does not meet job eligibility criteria")
	CodeJobClosed            = ErrRegistry.Register("JOB_CLOSED", errx.TypeBusiness, http.StatusForbidden, "Job is no longer accepting applications")
	CodeDeadlinePassed       = ErrRegistry.Register("DEADLINE_PASSED", errx.TypeBusiness, http.StatusForbidden, "Application deadline has passed")
	CodeInvalidStatus        = ErrRegistry.Register("INVALID_STATUS", errx.TypeValidation, http.StatusBadRequest, "Invalid application status")
)

// Helper functions
func ErrApplicationNotFound() *errx.Error {
	return ErrRegistry.New(CodeApplicationNotFound)
}

func ErrInvalidApplication() *errx.Error {
	return ErrRegistry.New(CodeInvalidApplication)
}

func ErrDuplicateApplication() *errx.Error {
	return ErrRegistry.New(CodeDuplicateApplication)
}

func ErrStudentIneligible() *errx.Error {
	return ErrRegistry.New(CodeStudentIneligible)
}

func ErrCriteriaNotMet() *errx.Error {
	return ErrRegistry.New(CodeCriteriaNotMet)
}

func ErrJobClosed() *errx.Error {
	return ErrRegistry.New(CodeJobClosed)
}

func ErrDeadlinePassed() *errx.Error {
	return ErrRegistry.New(CodeDeadlinePassed)
}

func ErrInvalidStatus() *errx.Error {
	return ErrRegistry.New(CodeInvalidStatus)
}
