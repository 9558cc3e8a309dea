// internal/app/system/inputval/inputval.go
package inputval

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Request DTOs declare their rules with validator struct tags; handlers call
// Struct and turn the result into a 400 with Message.
var validate = validator.New(validator.WithRequiredStructEnabled())

// Struct validates v against its validator tags.
func Struct(v any) error {
	return validate.Struct(v)
}

// Message converts a validation error into a client-facing sentence.
// Non-validation errors fall back to a generic phrase so internals never
// leak into the envelope.
func Message(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "invalid request body"
	}

	fe := verrs[0]
	field := strings.ToLower(fe.Field()[:1]) + fe.Field()[1:]
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, strings.ReplaceAll(fe.Param(), " ", ", "))
	case "hexadecimal", "len":
		return fmt.Sprintf("%s is not a valid id", field)
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
