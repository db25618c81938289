package errors

import (
	"net/http"

	"go-ponto/internal/shared/apperror"
)

var (
	ErrReportNotFound = apperror.New(
		apperror.CodeNotFound,
		"Service report not found",
		http.StatusNotFound,
	)

	ErrInvalidReportID = apperror.New(
		apperror.CodeInvalidInput,
		"Service report ID is invalid",
		http.StatusBadRequest,
	)

	ErrInvalidTimestamp = apperror.New(
		apperror.CodeInvalidInput,
		"Timestamp must be RFC3339",
		http.StatusBadRequest,
	)
)
