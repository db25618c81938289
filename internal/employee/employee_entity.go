package employee

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"go-ponto/internal/schedule"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	RoleAdmin    = "ADMIN"
	RoleEmployee = "EMPLOYEE"
)

// DailyBenefit is a benefit paid per worked day, like meal or transport
// vouchers.
type DailyBenefit struct {
	DailyValue float64 `json:"dailyValue"`
}

// PercentBenefit is a salary percentage adder, like hazard pay.
type PercentBenefit struct {
	Percentage float64 `json:"percentage"`
}

// MonthlyCharge is a flat monthly payroll deduction, like a health plan
// copay.
type MonthlyCharge struct {
	MonthlyValue float64 `json:"monthlyValue"`
}

// Benefits is the employee's benefit package, stored as one jsonb column.
// Absent entries mean the benefit does not apply.
type Benefits struct {
	VT               *DailyBenefit   `json:"vt,omitempty"`
	VA               *DailyBenefit   `json:"va,omitempty"`
	Periculosidade   *PercentBenefit `json:"periculosidade,omitempty"`
	Insalubridade    *PercentBenefit `json:"insalubridade,omitempty"`
	SalarioFamilia   *PercentBenefit `json:"salario_familia,omitempty"`
	AdicionalNoturno *PercentBenefit `json:"adicional_noturno,omitempty"`
	Convenio         *MonthlyCharge  `json:"convenio,omitempty"`
}

func (b Benefits) Value() (driver.Value, error) {
	return json.Marshal(b)
}

func (b *Benefits) Scan(value interface{}) error {
	if value == nil {
		*b = Benefits{}
		return nil
	}
	raw, ok := value.([]byte)
	if !ok {
		str, ok := value.(string)
		if !ok {
			return errors.New("benefits: unsupported scan type")
		}
		raw = []byte(str)
	}
	return json.Unmarshal(raw, b)
}

// CustomWorkHours is an optional per-employee schedule override, stored as
// jsonb. When present it wins over sector and company defaults even if all
// four clock fields are empty.
type CustomWorkHours schedule.WorkSchedule

func (c CustomWorkHours) Value() (driver.Value, error) {
	return json.Marshal(c)
}

func (c *CustomWorkHours) Scan(value interface{}) error {
	if value == nil {
		return nil
	}
	raw, ok := value.([]byte)
	if !ok {
		str, ok := value.(string)
		if !ok {
			return errors.New("custom work hours: unsupported scan type")
		}
		raw = []byte(str)
	}
	return json.Unmarshal(raw, c)
}

type Employee struct {
	ID              uuid.UUID        `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name            string           `gorm:"type:varchar(150);not null" json:"name"`
	CPF             string           `gorm:"type:varchar(11);not null;uniqueIndex" json:"cpf"`
	Email           string           `gorm:"type:varchar(150)" json:"email"`
	Phone           string           `gorm:"type:varchar(20)" json:"phone"`
	Address         string           `gorm:"type:text" json:"address"`
	City            string           `gorm:"type:varchar(100)" json:"city"`
	State           string           `gorm:"type:varchar(2)" json:"state"`
	Position        string           `gorm:"type:varchar(100)" json:"position"`
	CBO             string           `gorm:"type:varchar(10)" json:"cbo"`
	ContractType    string           `gorm:"type:varchar(20)" json:"contract_type"`
	Sector          string           `gorm:"type:varchar(50);not null" json:"sector"`
	Role            string           `gorm:"type:varchar(20);not null;default:'EMPLOYEE'" json:"role"`
	PasswordHash    string           `gorm:"type:varchar(100);not null" json:"-"`
	BaseSalary      float64          `gorm:"type:numeric(12,2);not null" json:"base_salary"`
	AdmissionDate   time.Time        `gorm:"type:date;not null" json:"admission_date"`
	Active          bool             `gorm:"not null;default:true" json:"active"`
	Benefits        Benefits         `gorm:"type:jsonb;not null;default:'{}'" json:"benefits"`
	CustomWorkHours *CustomWorkHours `gorm:"type:jsonb" json:"custom_work_hours"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
	DeletedAt       gorm.DeletedAt   `gorm:"index" json:"-"`
}

func (Employee) TableName() string {
	return "employees"
}

// ScheduleOverride adapts the jsonb column to the schedule resolver's
// override slot. Nil means no override.
func (e Employee) ScheduleOverride() *schedule.WorkSchedule {
	return (*schedule.WorkSchedule)(e.CustomWorkHours)
}
