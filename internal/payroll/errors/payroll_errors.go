package payrollerrors

import (
	"net/http"

	"go-ponto/internal/shared/apperror"
)

var (
	ErrInvalidMonth = apperror.New(
		apperror.CodeInvalidInput,
		"invalid month, expected YYYY-MM",
		http.StatusBadRequest,
	)
	ErrClosingNotFound = apperror.New(
		apperror.CodeNotFound,
		"payroll closing not found",
		http.StatusNotFound,
	)
	ErrClosingAlreadyApproved = apperror.New(
		apperror.CodeInvalidState,
		"payroll closing for this month is already approved",
		http.StatusConflict,
	)
	ErrNothingToApprove = apperror.New(
		apperror.CodeInvalidState,
		"no draft closing to approve for this month",
		http.StatusConflict,
	)
	ErrInvalidApprover = apperror.New(
		apperror.CodeInvalidInput,
		"invalid approver id",
		http.StatusBadRequest,
	)
)
