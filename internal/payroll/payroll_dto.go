package payroll

type RunClosingRequest struct {
	Month string `json:"month" binding:"required"`
	// ConvenioDeductions carries the admin-entered health-plan charge for
	// this run, keyed by employee ID. Employees absent from the map fall
	// back to the monthly value registered in their benefits; an explicit
	// zero suppresses the charge for this run.
	ConvenioDeductions map[string]float64 `json:"convenio_deductions"`
}

type ApproveClosingRequest struct {
	Month string `json:"month" binding:"required"`
}

type ClosingResponse struct {
	ID              string  `json:"id"`
	EmployeeID      string  `json:"employee_id"`
	EmployeeName    string  `json:"employee_name"`
	Month           string  `json:"month"`
	Status          string  `json:"status"`
	Result          Result  `json:"result"`
	TotalEarnings   float64 `json:"total_earnings"`
	TotalDeductions float64 `json:"total_deductions"`
	NetPay          float64 `json:"net_pay"`
	WorkedDays      int     `json:"worked_days"`
	AbsentDays      int     `json:"absent_days"`
	ApprovedBy      *string `json:"approved_by,omitempty"`
	ApprovedAt      *string `json:"approved_at,omitempty"`
}

type ClosingSummaryResponse struct {
	Month           string            `json:"month"`
	Employees       []ClosingResponse `json:"employees"`
	TotalNetPay     float64           `json:"total_net_pay"`
	TotalEarnings   float64           `json:"total_earnings"`
	TotalDeductions float64           `json:"total_deductions"`
}
