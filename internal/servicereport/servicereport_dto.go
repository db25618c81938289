package servicereport

type CreateServiceReportRequest struct {
	Client       string `json:"client" binding:"required"`
	Timestamp    string `json:"timestamp"`
	PhotoURL     string `json:"photo_url"`
	SignatureURL string `json:"signature_url"`
}

type ServiceReportResponse struct {
	ID           string `json:"id"`
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name,omitempty"`
	Timestamp    string `json:"timestamp"`
	Client       string `json:"client"`
	PhotoURL     string `json:"photo_url,omitempty"`
	SignatureURL string `json:"signature_url,omitempty"`
}
