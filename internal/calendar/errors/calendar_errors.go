package calendarerrors

import (
	"net/http"

	"astramaie-backoffice/internal/shared/apperror"
)

var (
	ErrNameRequired = apperror.New(
		apperror.CodeInvalidInput,
		"holiday name is required",
		http.StatusBadRequest,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidCategory = apperror.New(
		apperror.CodeInvalidInput,
		"holiday category must be festival, national or company",
		http.StatusBadRequest,
	)
	ErrInvalidRange = apperror.New(
		apperror.CodeInvalidInput,
		"end date must not be before start date",
		http.StatusBadRequest,
	)
)
