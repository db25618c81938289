package justification

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusPending  = "PENDING"
	StatusApproved = "APPROVED"
	StatusRejected = "REJECTED"
)

// Justification covers a day or a range of days an employee did not work
// for an accepted reason. Approved ranges neutralize those days in the
// time bank and remove them from the payroll absence count.
type Justification struct {
	ID            uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	EmployeeID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"employee_id"`
	Status        string         `gorm:"type:varchar(20);not null;default:'PENDING'" json:"status"`
	StartDate     time.Time      `gorm:"type:date;not null" json:"start_date"`
	EndDate       *time.Time     `gorm:"type:date" json:"end_date"`
	Time          *string        `gorm:"type:varchar(5)" json:"time"`
	Reason        string         `gorm:"type:varchar(100);not null" json:"reason"`
	Details       string         `gorm:"type:text" json:"details"`
	AttachmentURL *string        `gorm:"type:text" json:"attachment_url"`
	ReviewedBy    *uuid.UUID     `gorm:"type:uuid" json:"reviewed_by"`
	ReviewedAt    *time.Time     `json:"reviewed_at"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Justification) TableName() string {
	return "justifications"
}

func IsValidStatus(status string) bool {
	switch status {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	default:
		return false
	}
}
