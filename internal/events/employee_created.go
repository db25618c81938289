package events

import "time"

const EmployeeCreatedTopic = "ponto.employee.lifecycle.v1"

type EmployeeCreatedEvent struct {
	EventType  string    `json:"event_type"`
	EmployeeID string    `json:"employee_id"`
	Sector     string    `json:"sector"`
	OccurredAt time.Time `json:"occurred_at"`
}
