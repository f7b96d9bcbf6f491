package validator

import (
	"errors"
	"fmt"
	"strings"

	val "github.com/go-playground/validator/v10"
)

// templates render a field error; %[1]s is the field name and %[2]s the tag parameter.
var templates = map[string]string{
	"required": "%[1]s is required",
	"notblank": "%[1]s must not be blank",
	"email":    "%[1]s must be a valid email address",
	"uuid":     "%[1]s must be a valid UUID",
	"oneof":    "%[1]s must be one of %[2]s",
	"gt":       "%[1]s must be greater than %[2]s",
	"gte":      "%[1]s must be greater than or equal to %[2]s",
	"min":      "%[1]s must be greater than or equal to %[2]s",
	"lte":      "%[1]s must be less than or equal to %[2]s",
	"max":      "%[1]s must be less than or equal to %[2]s",
	"gtfield":  "%[1]s must be after %[2]s",
}

func describe(fieldErr val.FieldError) string {
	tmpl, ok := templates[fieldErr.Tag()]
	if !ok {
		return fmt.Sprintf("%s failed on %s", fieldErr.Field(), fieldErr.Tag())
	}

	if !strings.Contains(tmpl, "%[2]s") {
		return fmt.Sprintf(tmpl, fieldErr.Field())
	}

	return fmt.Sprintf(tmpl, fieldErr.Field(), fieldErr.Param())
}

// message joins every field error of a validation failure into one line.
func message(err error) string {
	var fieldErrs val.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err.Error()
	}

	parts := make([]string, 0, len(fieldErrs))
	for _, fieldErr := range fieldErrs {
		parts = append(parts, describe(fieldErr))
	}

	return strings.Join(parts, "; ")
}
