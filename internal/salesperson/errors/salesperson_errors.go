package salespersonerrors

import (
	"net/http"

	"go-sales-report/internal/shared/apperror"
)

var (
	ErrSalesPersonNotFound = apperror.New(
		apperror.CodeNotFound,
		"Sales person not found",
		http.StatusNotFound,
	)
	ErrDuplicateEmail = apperror.New(
		apperror.CodeDuplicateEmail,
		"A sales person with this email already exists",
		http.StatusConflict,
	)
	ErrInvalidSalesPersonID = apperror.New(
		apperror.CodeValidationError,
		"Sales person id must be a positive integer",
		http.StatusBadRequest,
	)
)
