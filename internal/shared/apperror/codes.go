package apperror

const (
	// Client errors (4xx)
	CodeValidationError    = "VALIDATION_ERROR"
	CodeTokenMissing       = "AUTH_TOKEN_MISSING"
	CodeTokenInvalid       = "AUTH_TOKEN_INVALID"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeForbidden          = "FORBIDDEN"
	CodeNotFound           = "NOT_FOUND"
	CodeReportNotFound     = "REPORT_NOT_FOUND"
	CodeInvalidReportID    = "INVALID_REPORT_ID"
	CodeDuplicateReport    = "DUPLICATE_REPORT"
	CodeDuplicateEmail     = "DUPLICATE_EMAIL"
	CodeConflict           = "CONFLICT"

	// Server errors (5xx)
	CodeInternalError = "INTERNAL_ERROR"
)
