package apperror

import (
	"errors"
	"net/http"
)

// HTTPError is the boundary representation of any error leaving a handler.
type HTTPError struct {
	Status  int
	Code    string
	Message string
	Details []FieldError
}

// ToHTTP translates an error into the uniform HTTP error shape. Anything
// that is not an *AppError is surfaced as a generic 500 so that internal
// details never leak to clients.
func ToHTTP(err error) HTTPError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return HTTPError{
			Status:  appErr.HTTPStatus,
			Code:    appErr.Code,
			Message: appErr.Message,
			Details: appErr.Details,
		}
	}
	return HTTPError{
		Status:  http.StatusInternalServerError,
		Code:    CodeInternalError,
		Message: "Internal server error",
	}
}
