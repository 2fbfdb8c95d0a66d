package customererrors

import (
	"net/http"

	"go-sales-report/internal/shared/apperror"
)

var (
	ErrCustomerNotFound = apperror.New(
		apperror.CodeNotFound,
		"Customer not found",
		http.StatusNotFound,
	)
	ErrInvalidCustomerID = apperror.New(
		apperror.CodeValidationError,
		"Customer id must be a positive integer",
		http.StatusBadRequest,
	)
)
