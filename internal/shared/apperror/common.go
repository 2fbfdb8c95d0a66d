package apperror

import "net/http"

var (
	ErrTokenMissing = New(
		CodeTokenMissing,
		"Authentication token is missing",
		http.StatusUnauthorized,
	)

	ErrTokenInvalid = New(
		CodeTokenInvalid,
		"Authentication token is invalid or expired",
		http.StatusUnauthorized,
	)

	ErrForbidden = New(
		CodeForbidden,
		"You do not have permission to access this resource",
		http.StatusForbidden,
	)

	ErrNotFound = New(
		CodeNotFound,
		"Resource not found",
		http.StatusNotFound,
	)

	ErrInternal = New(
		CodeInternalError,
		"An unexpected error occurred",
		http.StatusInternalServerError,
	)
)
