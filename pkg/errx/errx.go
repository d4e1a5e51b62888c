package errx

import (
	"fmt"
	"strings"
)

// Type classifies an error for callers and for HTTP mapping
type Type string

const (
	TypeValidation     Type = "VALIDATION"     // Malformed or missing input
	TypeNotFound       Type = "NOT_FOUND"      // Referenced entity absent
	TypeConflict       Type = "CONFLICT"       // Duplicate or conflicting state
	TypeBusiness       Type = "BUSINESS"       // Business rule violated
	TypeAuthentication Type = "AUTHENTICATION" // Caller not authenticated
	TypeAuthorization  Type = "AUTHORIZATION"  // Caller not allowed
	TypeInternal       Type = "INTERNAL"       // Unexpected internal failure
	TypeExternal       Type = "EXTERNAL"       // Downstream collaborator failure
)

// Error is the typed failure carried across every service boundary.
// The Message text is stable and descriptive enough to render directly.
type Error struct {
	Code       string         `json:"code"`
	Type       Type           `json:"type"`
	HTTPStatus int            `json:"-"`
	Message    string         `json:"message"`
	Details    map[string]any `json:"details,omitempty"`
	cause      error
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Code)
	b.WriteString(": ")
	b.WriteString(e.Message)
	if e.cause != nil {
		b.WriteString(": ")
		b.WriteString(e.cause.Error())
	}
	return b.String()
}

// Unwrap exposes the wrapped cause to errors.Is / errors.As
func (e *Error) Unwrap() error {
	return e.cause
}

// WithDetail attaches a key/value pair for diagnostics and API responses
func (e *Error) WithDetail(key string, value any) *Error {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// WithMessage overrides the registered message with an operation-specific one
func (e *Error) WithMessage(message string) *Error {
	e.Message = message
	return e
}

// WithCause attaches the underlying error
func (e *Error) WithCause(err error) *Error {
	e.cause = err
	return e
}

// HTTPResponse is the wire shape of a failed operation
type HTTPResponse struct {
	Message   string         `json:"message"`
	ErrorKind Type           `json:"errorKind"`
	Code      string         `json:"code"`
	Details   map[string]any `json:"details,omitempty"`
}

// ToHTTPResponse converts the error to its JSON body
func (e *Error) ToHTTPResponse() HTTPResponse {
	return HTTPResponse{
		Message:   e.Message,
		ErrorKind: e.Type,
		Code:      e.Code,
		Details:   e.Details,
	}
}

// Wrap converts an arbitrary error into an *Error with the given type
func Wrap(err error, message string, t Type) *Error {
	return &Error{
		Code:       fmt.Sprintf("%s_ERROR", t),
		Type:       t,
		HTTPStatus: defaultStatus(t),
		Message:    message,
		cause:      err,
	}
}

// IsType reports whether err is an *Error of the given type
func IsType(err error, t Type) bool {
	e, ok := err.(*Error)
	return ok && e.Type == t
}
