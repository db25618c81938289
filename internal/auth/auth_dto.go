package auth

import "go-ponto/internal/employee"

type LoginRequest struct {
	CPF      string `json:"cpf" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type AuthResponse struct {
	Employee employee.EmployeeResponse `json:"employee"`
}
