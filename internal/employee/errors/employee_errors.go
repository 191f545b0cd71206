package employeeerrors

import (
	"net/http"

	"github.com/saurav-commits/HRMS-Lite/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	// The original API reports this as 400, not 409, so the conflict code
	// keeps a bad-request status.
	ErrEmployeeIDExists = apperror.New(
		apperror.CodeConflict,
		"Employee ID already exists",
		http.StatusBadRequest,
	)
	ErrInvalidEmail = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid email format",
		http.StatusBadRequest,
	)
)
