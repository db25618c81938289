package servicereport

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ServiceReport records a field visit: which client was attended, when,
// plus photo and customer signature captured by the mobile client. The
// URLs are opaque strings; storage lives outside this system.
type ServiceReport struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	EmployeeID   uuid.UUID      `gorm:"type:uuid;not null;index" json:"employee_id"`
	Timestamp    time.Time      `gorm:"not null" json:"timestamp"`
	Client       string         `gorm:"type:varchar(150);not null" json:"client"`
	PhotoURL     string         `gorm:"type:text" json:"photo_url"`
	SignatureURL string         `gorm:"type:text" json:"signature_url"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

func (ServiceReport) TableName() string {
	return "service_reports"
}
