package salesperson

import (
	"errors"
	"strings"

	salespersonerrors "go-sales-report/internal/salesperson/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return salespersonerrors.ErrSalesPersonNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" && pgErr.ConstraintName == "uq_sales_persons_email" {
			return salespersonerrors.ErrDuplicateEmail
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_sales_persons_email") {
		return salespersonerrors.ErrDuplicateEmail
	}

	return err
}
