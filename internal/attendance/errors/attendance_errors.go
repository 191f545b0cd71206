package attendanceerrors

import (
	"net/http"

	"github.com/saurav-commits/HRMS-Lite/internal/shared/apperror"
)

var (
	// List/summary filters reference an employee by its external id; an
	// unknown id there is a lookup failure, not bad input.
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	// During marking the employee_id arrives inline in the payload, so the
	// same miss is reported as a validation failure.
	ErrUnknownEmployee = apperror.New(
		apperror.CodeInvalidInput,
		"Employee not found",
		http.StatusBadRequest,
	)
	ErrInvalidStatus = apperror.New(
		apperror.CodeInvalidInput,
		"Status must be either 'Present' or 'Absent'",
		http.StatusBadRequest,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid date format. Use YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrAlreadyMarked = apperror.New(
		apperror.CodeInvalidInput,
		"Attendance already marked for this employee on this date",
		http.StatusBadRequest,
	)
)
