package justificationerrors

import (
	"net/http"

	"go-ponto/internal/shared/apperror"
)

var (
	ErrJustificationNotFound = apperror.New(
		apperror.CodeNotFound,
		"justification not found",
		http.StatusNotFound,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid employee id",
		http.StatusBadRequest,
	)
	ErrInvalidStartDate = apperror.New(
		apperror.CodeInvalidInput,
		"invalid start_date, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidEndDate = apperror.New(
		apperror.CodeInvalidInput,
		"invalid end_date, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrEndBeforeStart = apperror.New(
		apperror.CodeInvalidInput,
		"end_date must not precede start_date",
		http.StatusBadRequest,
	)
	ErrAlreadyReviewed = apperror.New(
		apperror.CodeConflict,
		"justification was already reviewed",
		http.StatusConflict,
	)
	ErrInvalidReviewer = apperror.New(
		apperror.CodeInvalidInput,
		"invalid reviewer id",
		http.StatusBadRequest,
	)
)
