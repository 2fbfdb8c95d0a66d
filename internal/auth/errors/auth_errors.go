package autherrors

import (
	"net/http"

	"go-sales-report/internal/shared/apperror"
)

// The same code covers an unknown email, a wrong password, and a
// deactivated account, so responses do not reveal which one it was.
var ErrInvalidCredentials = apperror.New(
	apperror.CodeInvalidCredentials,
	"Invalid email or password",
	http.StatusUnauthorized,
)
