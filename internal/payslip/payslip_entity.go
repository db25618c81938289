package payslip

import (
	"time"

	"github.com/google/uuid"
)

// Payslip is the archived PDF generated for an approved closing. The file
// itself lives on disk; this row is its index.
type Payslip struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	EmployeeID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_payslip_employee_month" json:"employee_id"`
	ClosingID   uuid.UUID `gorm:"type:uuid;not null" json:"closing_id"`
	Month       string    `gorm:"type:varchar(7);not null;uniqueIndex:idx_payslip_employee_month" json:"month"`
	FilePath    string    `gorm:"type:text;not null" json:"file_path"`
	FileSize    int64     `gorm:"not null" json:"file_size"`
	GeneratedAt time.Time `gorm:"not null" json:"generated_at"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Payslip) TableName() string {
	return "payslips"
}
