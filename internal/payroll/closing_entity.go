package payroll

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

const (
	ClosingStatusDraft    = "DRAFT"
	ClosingStatusApproved = "APPROVED"
)

// ResultJSON stores the full computed breakdown as one jsonb column, so a
// payslip can be reprinted later exactly as it was approved.
type ResultJSON Result

func (r ResultJSON) Value() (driver.Value, error) {
	return json.Marshal(r)
}

func (r *ResultJSON) Scan(value interface{}) error {
	if value == nil {
		*r = ResultJSON{}
		return nil
	}
	raw, ok := value.([]byte)
	if !ok {
		str, ok := value.(string)
		if !ok {
			return errors.New("payroll result: unsupported scan type")
		}
		raw = []byte(str)
	}
	return json.Unmarshal(raw, r)
}

// Closing is one employee's payroll result for one reference month. Drafts
// are recomputed freely; an approved closing is frozen.
type Closing struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	EmployeeID      uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_closing_employee_month" json:"employee_id"`
	EmployeeName    string     `gorm:"type:varchar(150);not null" json:"employee_name"`
	Month           string     `gorm:"type:varchar(7);not null;uniqueIndex:idx_closing_employee_month" json:"month"`
	Status          string     `gorm:"type:varchar(20);not null;default:'DRAFT'" json:"status"`
	Result          ResultJSON `gorm:"type:jsonb;not null" json:"result"`
	TotalEarnings   float64    `gorm:"type:numeric(12,2);not null" json:"total_earnings"`
	TotalDeductions float64    `gorm:"type:numeric(12,2);not null" json:"total_deductions"`
	NetPay          float64    `gorm:"type:numeric(12,2);not null" json:"net_pay"`
	WorkedDays      int        `gorm:"not null" json:"worked_days"`
	AbsentDays      int        `gorm:"not null" json:"absent_days"`
	ApprovedBy      *uuid.UUID `gorm:"type:uuid" json:"approved_by"`
	ApprovedAt      *time.Time `json:"approved_at"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

func (Closing) TableName() string {
	return "payroll_closings"
}
