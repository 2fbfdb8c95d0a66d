package reporterrors

import (
	"net/http"

	"go-sales-report/internal/shared/apperror"
)

var (
	ErrInvalidReportID = apperror.New(
		apperror.CodeInvalidReportID,
		"Report id must be a positive integer",
		http.StatusBadRequest,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeValidationError,
		"Date must be in YYYY-MM-DD format",
		http.StatusBadRequest,
	)
	ErrReportNotFound = apperror.New(
		apperror.CodeReportNotFound,
		"Report not found",
		http.StatusNotFound,
	)
	ErrDuplicateReport = apperror.New(
		apperror.CodeDuplicateReport,
		"A report for this date already exists",
		http.StatusConflict,
	)
	ErrReportAccessDenied = apperror.New(
		apperror.CodeForbidden,
		"You do not have permission to view this report",
		http.StatusForbidden,
	)
	ErrNotReportOwner = apperror.New(
		apperror.CodeForbidden,
		"Only the owner may modify this report",
		http.StatusForbidden,
	)
)
