package timeclockerrors

import (
	"net/http"

	"go-ponto/internal/shared/apperror"
)

var (
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid employee id",
		http.StatusBadRequest,
	)
	ErrInvalidPunchKind = apperror.New(
		apperror.CodeInvalidInput,
		"punch kind must be one of ENTRY, LUNCH_OUT, LUNCH_IN, EXIT",
		http.StatusBadRequest,
	)
	ErrInvalidPunchTime = apperror.New(
		apperror.CodeInvalidInput,
		"invalid punched_at, expected RFC3339",
		http.StatusBadRequest,
	)
	ErrInvalidMonth = apperror.New(
		apperror.CodeInvalidInput,
		"invalid month, expected YYYY-MM",
		http.StatusBadRequest,
	)
)
