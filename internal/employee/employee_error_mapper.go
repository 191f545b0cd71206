package employee

import (
	"errors"
	"strings"

	employeeerrors "github.com/saurav-commits/HRMS-Lite/internal/employee/errors"
	"github.com/saurav-commits/HRMS-Lite/internal/shared/apperror"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// mapRepositoryError translates store-level failures into the errors the
// handlers project. Anything unrecognized is wrapped as internal so the raw
// driver message never reaches a client.
func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return employeeerrors.ErrEmployeeNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" && pgErr.ConstraintName == "uq_employees_employee_id" {
			return employeeerrors.ErrEmployeeIDExists
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_employees_employee_id") {
		return employeeerrors.ErrEmployeeIDExists
	}

	return apperror.Wrap(err, apperror.ErrInternal.Code, apperror.ErrInternal.Message, apperror.ErrInternal.HTTPStatus)
}
