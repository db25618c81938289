package timeclock

type CreatePunchRequest struct {
	Kind      string   `json:"kind" binding:"required"`
	PunchedAt string   `json:"punched_at" binding:"required"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Accuracy  *float64 `json:"accuracy"`
	PhotoURL  *string  `json:"photo_url"`
}

type PunchResponse struct {
	ID         string   `json:"id"`
	EmployeeID string   `json:"employee_id"`
	Kind       string   `json:"kind"`
	PunchedAt  string   `json:"punched_at"`
	Latitude   *float64 `json:"latitude,omitempty"`
	Longitude  *float64 `json:"longitude,omitempty"`
	Accuracy   *float64 `json:"accuracy,omitempty"`
	PhotoURL   *string  `json:"photo_url,omitempty"`
}

type MonthQuery struct {
	Month string `form:"month" binding:"required"`
}
