package notification

import (
	"net/http"

	"github.com/shaheed425/jobsy/pkg/errx"
)

// Error Registry
var ErrRegistry = errx.NewRegistry("NOTIFICATION")

// Error codes
var (
	CodeNotificationNotFound = ErrRegistry.Register("NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Notification not found")
	CodeInvalidNotification  = ErrRegistry.Register("INVALID", errx.TypeValidation, http.StatusBadRequest, "Invalid notification data")
)

// Helper functions
func ErrNotificationNotFound() *errx.Error {
	return ErrRegistry.New(CodeNotificationNotFound)
}

func ErrInvalidNotification() *errx.Error {
	return ErrRegistry.New(CodeInvalidNotification)
}
