package attendanceerrors

import (
	"net/http"

	"astramaie-backoffice/internal/shared/apperror"
)

var (
	ErrAlreadyCheckedIn = apperror.New(
		apperror.CodeConflict,
		"an open attendance session already exists for this employee",
		http.StatusConflict,
	)
	ErrNoOpenSession = apperror.New(
		apperror.CodeConflict,
		"no open attendance session to check out of",
		http.StatusConflict,
	)
	ErrInvalidTimestamp = apperror.New(
		apperror.CodeInvalidInput,
		"check-out must not be earlier than check-in",
		http.StatusBadRequest,
	)
	ErrInvalidTimeFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid timestamp, expected RFC3339",
		http.StatusBadRequest,
	)
)
