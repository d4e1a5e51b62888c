package errx

import "net/http"

// Code is a registered error definition. Registries declare the full error
// vocabulary of a package at init time so codes stay unique and greppable.
type Code struct {
	code       string
	errType    Type
	httpStatus int
	message    string
}

// Registry namespaces error codes for one package
type Registry struct {
	prefix string
}

// NewRegistry creates a registry with the given code prefix (e.g. "JOB")
func NewRegistry(prefix string) *Registry {
	return &Registry{prefix: prefix}
}

// Register declares an error code under the registry prefix
func (r *Registry) Register(code string, t Type, httpStatus int, message string) Code {
	return Code{
		code:       r.prefix + "_" + code,
		errType:    t,
		httpStatus: httpStatus,
		message:    message,
	}
}

// New instantiates an *Error from a registered code
func (r *Registry) New(c Code) *Error {
	return &Error{
		Code:       c.code,
		Type:       c.errType,
		HTTPStatus: c.httpStatus,
		Message:    c.message,
	}
}

func defaultStatus(t Type) int {
	switch t {
	case TypeValidation:
		return http.StatusBadRequest
	case TypeNotFound:
		return http.StatusNotFound
	case TypeConflict:
		return http.StatusConflict
	case TypeBusiness:
		return http.StatusUnprocessableEntity
	case TypeAuthentication:
		return http.StatusUnauthorized
	case TypeAuthorization:
		return http.StatusForbidden
	case TypeExternal:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
