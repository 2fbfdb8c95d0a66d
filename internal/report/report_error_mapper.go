package report

import (
	"errors"
	"strings"

	reporterrors "go-sales-report/internal/report/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// mapRepositoryError translates driver-level failures into domain errors.
// The duplicate pre-check inside the transaction catches most collisions,
// but two concurrent submissions for the same date can both pass it; the
// unique index on (sales_person_id, report_date) is the authority.
func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return reporterrors.ErrReportNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		if pgErr.ConstraintName == "uq_reports_salesperson_date" || pgErr.ConstraintName == "" {
			return reporterrors.ErrDuplicateReport
		}
	}

	if strings.Contains(err.Error(), "duplicate key") {
		return reporterrors.ErrDuplicateReport
	}

	return err
}
