package settings

import "go-ponto/internal/schedule"

type UpdateSettingsRequest struct {
	CompanyName     string                               `json:"company_name" binding:"required"`
	LegalName       string                               `json:"legal_name"`
	CNPJ            string                               `json:"cnpj"`
	Address         string                               `json:"address"`
	LogoURL         string                               `json:"logo_url"`
	WorkStart       string                               `json:"work_start"`
	LunchStart      string                               `json:"lunch_start"`
	LunchEnd        string                               `json:"lunch_end"`
	WorkEnd         string                               `json:"work_end"`
	SectorSchedules map[string]schedule.WorkSchedule     `json:"sector_schedules"`
}

type SettingsResponse struct {
	ID              string                           `json:"id"`
	CompanyName     string                           `json:"company_name"`
	LegalName       string                           `json:"legal_name,omitempty"`
	CNPJ            string                           `json:"cnpj"`
	Address         string                           `json:"address"`
	LogoURL         string                           `json:"logo_url,omitempty"`
	WorkStart       string                           `json:"work_start"`
	LunchStart      string                           `json:"lunch_start"`
	LunchEnd        string                           `json:"lunch_end"`
	WorkEnd         string                           `json:"work_end"`
	SectorSchedules map[string]schedule.WorkSchedule `json:"sector_schedules"`
}
