// Package validatex wraps a shared validator instance for request DTOs.
// Domain rules with contractual wording live in the aggregate packages;
// this covers structural `validate` tags on incoming payloads.
package validatex

import (
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shaheed425/jobsy/pkg/errx"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

var registry = errx.NewRegistry("REQUEST")

var codeInvalid = registry.Register("INVALID", errx.TypeValidation, http.StatusBadRequest, "Request validation failed")

// Struct validates a DTO and converts the first violation to an errx error
func Struct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok || len(verrs) == 0 {
		return errx.Wrap(err, "request validation failed", errx.TypeValidation)
	}

	first := verrs[0]
	field := strings.ToLower(first.Field()[:1]) + first.Field()[1:]
	return registry.New(codeInvalid).
		WithMessage(field + " is required").
		WithDetail("field", field).
		WithDetail("rule", first.Tag())
}
