package attendance

import (
	"errors"
	"strings"

	attendanceerrors "github.com/saurav-commits/HRMS-Lite/internal/attendance/errors"
	"github.com/saurav-commits/HRMS-Lite/internal/shared/apperror"

	"github.com/jackc/pgx/v5/pgconn"
)

// mapRepositoryError translates store-level failures on the write path. The
// compound unique index is the authoritative guard against the duplicate-mark
// race, so its violation maps to the same error the advisory pre-check emits.
func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" && pgErr.ConstraintName == "uq_attendance_employee_date" {
			return attendanceerrors.ErrAlreadyMarked
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_attendance_employee_date") {
		return attendanceerrors.ErrAlreadyMarked
	}

	return apperror.Wrap(err, apperror.ErrInternal.Code, apperror.ErrInternal.Message, apperror.ErrInternal.HTTPStatus)
}
