package payrollerrors

import (
	"net/http"

	"astramaie-backoffice/internal/shared/apperror"
)

var (
	ErrInvalidSalary = apperror.New(
		apperror.CodeInvalidInput,
		"basic salary must be a positive amount",
		http.StatusBadRequest,
	)
	ErrInvalidDate = apperror.New(
		apperror.CodeInvalidInput,
		"as-of date must not be before the joining date",
		http.StatusBadRequest,
	)
)
