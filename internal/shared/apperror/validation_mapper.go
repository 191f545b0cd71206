package apperror

import (
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

func formatFieldName(s string) string {
	// employee_id -> Employee Id
	s = strings.ReplaceAll(s, "_", " ")
	caser := cases.Title(language.English)
	return caser.String(s)
}

// MapValidationError turns a gin binding error into a 400 AppError with
// per-field messages under Details.
func MapValidationError(err error) error {
	if errs, ok := err.(validator.ValidationErrors); ok {
		fields := make(map[string]string, len(errs))
		for _, e := range errs {
			name := e.Field()
			human := formatFieldName(name)
			switch e.Tag() {
			case "required":
				fields[name] = human + " is required"
			case "email":
				fields[name] = human + " must be a valid email address"
			case "max":
				fields[name] = human + " is too long"
			default:
				fields[name] = human + " is invalid"
			}
		}
		return New(
			CodeInvalidInput,
			"Validation failed",
			http.StatusBadRequest,
		).WithDetails(fields)
	}

	return ErrInvalidInput
}
