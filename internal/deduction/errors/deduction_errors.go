package deductionerrors

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
	ErrDeductionExists = apperror.New(
		apperror.CodeConflict,
		"a deduction for this leave already exists",
		http.StatusConflict,
	)
	ErrInvalidMonth = apperror.New(
		apperror.CodeInvalidInput,
		"invalid month filter, expected YYYY-MM",
		http.StatusBadRequest,
	)
)
