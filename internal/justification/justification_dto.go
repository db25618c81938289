package justification

type CreateJustificationRequest struct {
	StartDate     string  `json:"start_date" binding:"required"`
	EndDate       *string `json:"end_date"`
	Time          *string `json:"time"`
	Reason        string  `json:"reason" binding:"required"`
	Details       string  `json:"details"`
	AttachmentURL *string `json:"attachment_url"`
}

type AdminCreateJustificationRequest struct {
	EmployeeID string `json:"employee_id" binding:"required"`
	CreateJustificationRequest
}

type JustificationResponse struct {
	ID            string  `json:"id"`
	EmployeeID    string  `json:"employee_id"`
	Status        string  `json:"status"`
	StartDate     string  `json:"start_date"`
	EndDate       *string `json:"end_date,omitempty"`
	Time          *string `json:"time,omitempty"`
	Reason        string  `json:"reason"`
	Details       string  `json:"details,omitempty"`
	AttachmentURL *string `json:"attachment_url,omitempty"`
	ReviewedBy    *string `json:"reviewed_by,omitempty"`
	ReviewedAt    *string `json:"reviewed_at,omitempty"`
	CreatedAt     string  `json:"created_at"`
}

type JustificationQueryFilter struct {
	Status     string `form:"status"`
	EmployeeID string `form:"employee_id"`
}
