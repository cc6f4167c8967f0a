package documenterrors

import (
	"net/http"

	"astramaie-backoffice/internal/shared/apperror"
)

var (
	ErrUnknownTemplate = apperror.New(
		apperror.CodeNotFound,
		"unknown document template",
		http.StatusNotFound,
	)
	ErrDocumentNotFound = apperror.New(
		apperror.CodeNotFound,
		"document not found",
		http.StatusNotFound,
	)
	ErrInvalidGeneratedOn = apperror.New(
		apperror.CodeInvalidInput,
		"invalid generated_on date, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
)
