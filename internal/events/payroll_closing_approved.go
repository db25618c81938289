package events

import "time"

const PayrollClosingApprovedTopic = "ponto.payroll.closing.approved.v1"

type PayrollClosingApprovedEvent struct {
	EventType  string    `json:"event_type"`
	Month      string    `json:"month"`
	ApprovedBy string    `json:"approved_by"`
	OccurredAt time.Time `json:"occurred_at"`
}
