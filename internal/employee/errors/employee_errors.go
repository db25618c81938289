package employeeerrors

import (
	"net/http"

	"go-ponto/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"employee not found",
		http.StatusNotFound,
	)
	ErrInvalidCPF = apperror.New(
		apperror.CodeInvalidInput,
		"cpf must contain exactly 11 digits",
		http.StatusBadRequest,
	)
	ErrCPFAlreadyRegistered = apperror.New(
		apperror.CodeConflict,
		"cpf already registered",
		http.StatusConflict,
	)
	ErrInvalidSector = apperror.New(
		apperror.CodeInvalidInput,
		"unknown sector",
		http.StatusBadRequest,
	)
	ErrInvalidAdmissionDate = apperror.New(
		apperror.CodeInvalidInput,
		"invalid admission_date, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidSalary = apperror.New(
		apperror.CodeInvalidInput,
		"base_salary must be positive",
		http.StatusBadRequest,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid employee id",
		http.StatusBadRequest,
	)
)
