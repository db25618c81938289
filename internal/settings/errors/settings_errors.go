package settingserrors

import (
	"net/http"

	"go-ponto/internal/shared/apperror"
)

var (
	ErrSettingsNotFound = apperror.New(
		apperror.CodeNotFound,
		"company settings not configured",
		http.StatusNotFound,
	)
	ErrUnknownSector = apperror.New(
		apperror.CodeInvalidInput,
		"unknown sector",
		http.StatusBadRequest,
	)
)
