package timeclock

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Punch kinds, in the order an employee walks through a normal day.
const (
	KindEntry    = "ENTRY"
	KindLunchOut = "LUNCH_OUT"
	KindLunchIn  = "LUNCH_IN"
	KindExit     = "EXIT"
)

// Punch is a single immutable clock event. Punches are append-only; noise
// (duplicate kinds on one day, out-of-order timestamps) is tolerated and
// resolved at aggregation time, never rejected at write time.
type Punch struct {
	ID         uuid.UUID      `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID uuid.UUID      `gorm:"column:employee_id;type:uuid;not null;index"`
	Kind       string         `gorm:"column:kind;type:varchar(20);not null"`
	PunchedAt  time.Time      `gorm:"column:punched_at;type:timestamptz;not null;index"`
	Latitude   *float64       `gorm:"column:latitude"`
	Longitude  *float64       `gorm:"column:longitude"`
	Accuracy   *float64       `gorm:"column:accuracy"`
	PhotoURL   *string        `gorm:"column:photo_url;type:text"`
	CreatedAt  time.Time      `gorm:"column:created_at"`
	DeletedAt  gorm.DeletedAt `gorm:"column:deleted_at;index"`
}

func (Punch) TableName() string {
	return "clock_punches"
}

func IsValidKind(kind string) bool {
	switch kind {
	case KindEntry, KindLunchOut, KindLunchIn, KindExit:
		return true
	default:
		return false
	}
}
