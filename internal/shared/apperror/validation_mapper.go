package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

func formatFieldName(s string) string {
	s = strings.ReplaceAll(s, "_", " ")
	caser := cases.Title(language.English)
	return caser.String(s)
}

func fieldMessage(e validator.FieldError) string {
	name := formatFieldName(e.Field())
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", name)
	case "min":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s must be at least %s characters", name, e.Param())
		}
		return fmt.Sprintf("%s must contain at least %s items", name, e.Param())
	case "max":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s must be at most %s characters", name, e.Param())
		}
		return fmt.Sprintf("%s must contain at most %s items", name, e.Param())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", name)
	case "datetime":
		return fmt.Sprintf("%s must be in YYYY-MM-DD format", name)
	case "hhmm":
		return fmt.Sprintf("%s must be in HH:MM format", name)
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", name, e.Param())
	case "lte":
		return fmt.Sprintf("%s must be less than or equal to %s", name, e.Param())
	default:
		return fmt.Sprintf("%s is invalid", name)
	}
}

// MapValidationError converts a binding failure into a VALIDATION_ERROR
// AppError carrying one details entry per failed field.
func MapValidationError(err error) *AppError {
	var errs validator.ValidationErrors
	if errors.As(err, &errs) {
		details := make([]FieldError, 0, len(errs))
		for _, e := range errs {
			details = append(details, FieldError{
				Field:   e.Field(),
				Message: fieldMessage(e),
			})
		}
		return &AppError{
			Code:       CodeValidationError,
			Message:    "Validation failed",
			HTTPStatus: http.StatusBadRequest,
			Details:    details,
		}
	}

	return New(
		CodeValidationError,
		"Invalid request body",
		http.StatusBadRequest,
	)
}
