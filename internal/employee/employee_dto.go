package employee

import "go-ponto/internal/schedule"

type CreateEmployeeRequest struct {
	Name            string                 `json:"name" binding:"required"`
	CPF             string                 `json:"cpf" binding:"required"`
	Email           string                 `json:"email" binding:"omitempty,email"`
	Phone           string                 `json:"phone"`
	Address         string                 `json:"address"`
	City            string                 `json:"city"`
	State           string                 `json:"state"`
	Password        string                 `json:"password" binding:"required,min=6"`
	Position        string                 `json:"position"`
	CBO             string                 `json:"cbo"`
	ContractType    string                 `json:"contract_type"`
	Sector          string                 `json:"sector" binding:"required"`
	Role            string                 `json:"role"`
	BaseSalary      float64                `json:"base_salary" binding:"required"`
	AdmissionDate   string                 `json:"admission_date" binding:"required"`
	Benefits        Benefits               `json:"benefits"`
	CustomWorkHours *schedule.WorkSchedule `json:"custom_work_hours"`
}

type UpdateEmployeeRequest struct {
	Name            string                 `json:"name" binding:"required"`
	Email           string                 `json:"email" binding:"omitempty,email"`
	Phone           string                 `json:"phone"`
	Address         string                 `json:"address"`
	City            string                 `json:"city"`
	State           string                 `json:"state"`
	Position        string                 `json:"position"`
	CBO             string                 `json:"cbo"`
	ContractType    string                 `json:"contract_type"`
	Sector          string                 `json:"sector" binding:"required"`
	Role            string                 `json:"role"`
	BaseSalary      float64                `json:"base_salary" binding:"required"`
	AdmissionDate   string                 `json:"admission_date" binding:"required"`
	Active          *bool                  `json:"active"`
	Benefits        Benefits               `json:"benefits"`
	CustomWorkHours *schedule.WorkSchedule `json:"custom_work_hours"`
}

type EmployeeResponse struct {
	ID              string                 `json:"id"`
	Name            string                 `json:"name"`
	CPF             string                 `json:"cpf"`
	Email           string                 `json:"email,omitempty"`
	Phone           string                 `json:"phone,omitempty"`
	Address         string                 `json:"address,omitempty"`
	City            string                 `json:"city,omitempty"`
	State           string                 `json:"state,omitempty"`
	Position        string                 `json:"position,omitempty"`
	CBO             string                 `json:"cbo,omitempty"`
	ContractType    string                 `json:"contract_type,omitempty"`
	Sector          string                 `json:"sector"`
	Role            string                 `json:"role"`
	BaseSalary      float64                `json:"base_salary"`
	AdmissionDate   string                 `json:"admission_date"`
	Active          bool                   `json:"active"`
	Benefits        Benefits               `json:"benefits"`
	CustomWorkHours *schedule.WorkSchedule `json:"custom_work_hours,omitempty"`
}
