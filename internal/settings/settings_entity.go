package settings

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"go-ponto/internal/schedule"

	"github.com/google/uuid"
)

// Known sectors. Sector defaults are keyed by these names; an employee in
// an unknown sector falls back to the company default hours.
const (
	SectorAdministrativo = "Administrativo"
	SectorOperacional    = "Operacional"
	SectorTecnico        = "Técnico"
	SectorComercial      = "Comercial"
	SectorFinanceiro     = "Financeiro"
)

func IsValidSector(sector string) bool {
	switch sector {
	case SectorAdministrativo, SectorOperacional, SectorTecnico, SectorComercial, SectorFinanceiro:
		return true
	default:
		return false
	}
}

// SectorSchedules maps sector name to its default work hours, stored as a
// single jsonb column.
type SectorSchedules map[string]schedule.WorkSchedule

func (s SectorSchedules) Value() (driver.Value, error) {
	if s == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(s)
}

func (s *SectorSchedules) Scan(value interface{}) error {
	if value == nil {
		*s = SectorSchedules{}
		return nil
	}
	b, ok := value.([]byte)
	if !ok {
		str, ok := value.(string)
		if !ok {
			return errors.New("sector schedules: unsupported scan type")
		}
		b = []byte(str)
	}
	return json.Unmarshal(b, s)
}

// CompanySettings is a single-row table carrying the company identity and
// the schedule fallbacks every other calculation resolves against.
type CompanySettings struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	CompanyName     string          `gorm:"type:varchar(150);not null" json:"company_name"`
	LegalName       string          `gorm:"type:varchar(150)" json:"legal_name"`
	CNPJ            string          `gorm:"type:varchar(18)" json:"cnpj"`
	Address         string          `gorm:"type:text" json:"address"`
	LogoURL         string          `gorm:"type:text" json:"logo_url"`
	WorkStart       string          `gorm:"type:varchar(5)" json:"work_start"`
	LunchStart      string          `gorm:"type:varchar(5)" json:"lunch_start"`
	LunchEnd        string          `gorm:"type:varchar(5)" json:"lunch_end"`
	WorkEnd         string          `gorm:"type:varchar(5)" json:"work_end"`
	SectorSchedules SectorSchedules `gorm:"type:jsonb;not null;default:'{}'" json:"sector_schedules"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

func (CompanySettings) TableName() string {
	return "company_settings"
}

// DefaultSchedule returns the company-wide fallback hours.
func (s CompanySettings) DefaultSchedule() schedule.WorkSchedule {
	return schedule.WorkSchedule{
		WorkStart:  s.WorkStart,
		LunchStart: s.LunchStart,
		LunchEnd:   s.LunchEnd,
		WorkEnd:    s.WorkEnd,
	}
}

// Resolver builds a schedule resolver from the stored fallbacks.
func (s CompanySettings) Resolver() *schedule.Resolver {
	return schedule.NewResolver(s.DefaultSchedule(), map[string]schedule.WorkSchedule(s.SectorSchedules))
}
