package timebank_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"go-ponto/internal/employee"
	employeeerrors "go-ponto/internal/employee/errors"
	"go-ponto/internal/justification"
	"go-ponto/internal/schedule"
	"go-ponto/internal/settings"
	settingserrors "go-ponto/internal/settings/errors"
	"go-ponto/internal/timebank"
	"go-ponto/internal/timeclock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeEmployeeRepository struct {
	findByIDFn func(ctx context.Context, id string) (*employee.Employee, error)
}

func (f *fakeEmployeeRepository) WithTx(tx *sql.Tx) employee.Repository { return f }
func (f *fakeEmployeeRepository) Create(ctx context.Context, e *employee.Employee) error {
	return nil
}
func (f *fakeEmployeeRepository) FindByID(ctx context.Context, id string) (*employee.Employee, error) {
	return f.findByIDFn(ctx, id)
}
func (f *fakeEmployeeRepository) FindByCPF(ctx context.Context, cpf string) (*employee.Employee, error) {
	return nil, nil
}
func (f *fakeEmployeeRepository) FindAll(ctx context.Context, activeOnly bool) ([]employee.Employee, error) {
	return nil, nil
}
func (f *fakeEmployeeRepository) Update(ctx context.Context, e *employee.Employee) error { return nil }
func (f *fakeEmployeeRepository) Delete(ctx context.Context, id string) error            { return nil }

type fakeSettingsRepository struct {
	getFn func(ctx context.Context) (*settings.CompanySettings, error)
}

func (f *fakeSettingsRepository) WithTx(tx *sql.Tx) settings.Repository { return f }
func (f *fakeSettingsRepository) Get(ctx context.Context) (*settings.CompanySettings, error) {
	return f.getFn(ctx)
}
func (f *fakeSettingsRepository) Save(ctx context.Context, s *settings.CompanySettings) error {
	return nil
}

type fakePunchRepository struct {
	findByEmployeeAndMonthFn func(ctx context.Context, employeeID string, monthStart, monthEnd time.Time) ([]timeclock.Punch, error)
}

func (f *fakePunchRepository) WithTx(tx *sql.Tx) timeclock.Repository { return f }
func (f *fakePunchRepository) Create(ctx context.Context, p *timeclock.Punch) error {
	return nil
}
func (f *fakePunchRepository) FindByEmployeeAndMonth(ctx context.Context, employeeID string, monthStart, monthEnd time.Time) ([]timeclock.Punch, error) {
	return f.findByEmployeeAndMonthFn(ctx, employeeID, monthStart, monthEnd)
}
func (f *fakePunchRepository) FindByMonth(ctx context.Context, monthStart, monthEnd time.Time) ([]timeclock.Punch, error) {
	return nil, nil
}

type fakeJustificationRepository struct{}

func (f *fakeJustificationRepository) WithTx(tx *sql.Tx) justification.Repository { return f }
func (f *fakeJustificationRepository) Create(ctx context.Context, j *justification.Justification) error {
	return nil
}
func (f *fakeJustificationRepository) FindByID(ctx context.Context, id string) (*justification.Justification, error) {
	return nil, nil
}
func (f *fakeJustificationRepository) FindAll(ctx context.Context, filter justification.JustificationQueryFilter) ([]justification.Justification, error) {
	return nil, nil
}
func (f *fakeJustificationRepository) FindByEmployee(ctx context.Context, employeeID string) ([]justification.Justification, error) {
	return nil, nil
}
func (f *fakeJustificationRepository) FindApprovedInRange(ctx context.Context, rangeStart, rangeEnd time.Time) ([]justification.Justification, error) {
	return nil, nil
}
func (f *fakeJustificationRepository) Update(ctx context.Context, j *justification.Justification) error {
	return nil
}

func defaultSettings() *settings.CompanySettings {
	return &settings.CompanySettings{
		ID:         uuid.New(),
		WorkStart:  "08:00",
		LunchStart: "12:00",
		LunchEnd:   "13:00",
		WorkEnd:    "17:00",
		SectorSchedules: settings.SectorSchedules{
			settings.SectorOperacional: {WorkStart: "07:00", LunchStart: "11:00", LunchEnd: "12:00", WorkEnd: "17:00"},
		},
	}
}

func punchesFor(empID uuid.UUID, day time.Time, kinds map[string]string) []timeclock.Punch {
	var rows []timeclock.Punch
	for kind, hhmm := range kinds {
		ts, _ := time.ParseInLocation("2006-01-02 15:04", day.Format("2006-01-02")+" "+hhmm, time.Local)
		rows = append(rows, timeclock.Punch{
			ID:         uuid.New(),
			EmployeeID: empID,
			Kind:       kind,
			PunchedAt:  ts,
		})
	}
	return rows
}

func newTimebankService(emp *employee.Employee, cfg *settings.CompanySettings, punches []timeclock.Punch) timebank.Service {
	employees := &fakeEmployeeRepository{
		findByIDFn: func(ctx context.Context, id string) (*employee.Employee, error) {
			return emp, nil
		},
	}
	settingsRepo := &fakeSettingsRepository{
		getFn: func(ctx context.Context) (*settings.CompanySettings, error) {
			return cfg, nil
		},
	}
	punchRepo := &fakePunchRepository{
		findByEmployeeAndMonthFn: func(ctx context.Context, employeeID string, monthStart, monthEnd time.Time) ([]timeclock.Punch, error) {
			return punches, nil
		},
	}
	return timebank.NewService(employees, settingsRepo, punchRepo, &fakeJustificationRepository{})
}

func TestGetMonthReport_UsesSectorSchedule(t *testing.T) {
	empID := uuid.New()
	emp := &employee.Employee{ID: empID, Name: "Carlos Lima", Sector: settings.SectorOperacional}

	// 2026-03-02 is a Monday. The Operacional schedule expects 9h (540min);
	// the employee works exactly the default 8h day.
	day := time.Date(2026, time.March, 2, 0, 0, 0, 0, time.Local)
	punches := punchesFor(empID, day, map[string]string{
		timeclock.KindEntry:    "08:00",
		timeclock.KindLunchOut: "12:00",
		timeclock.KindLunchIn:  "13:00",
		timeclock.KindExit:     "17:00",
	})

	svc := newTimebankService(emp, defaultSettings(), punches)

	report, err := svc.GetMonthReport(context.Background(), empID.String(), "2026-03")
	assert.NoError(t, err)

	var monday *timebank.DailyBalance
	for i := range report.Days {
		if report.Days[i].Date == "02/03/2026" {
			monday = &report.Days[i]
		}
	}
	assert.NotNil(t, monday)
	assert.Equal(t, 480, monday.WorkedMinutes)
	assert.Equal(t, 540, monday.ExpectedMinutes)
	assert.Equal(t, -60, monday.BalanceMinutes)
}

func TestGetMonthReport_CustomHoursOverrideSector(t *testing.T) {
	empID := uuid.New()
	custom := employee.CustomWorkHours{WorkStart: "10:00", LunchStart: "13:00", LunchEnd: "14:00", WorkEnd: "16:00"}
	emp := &employee.Employee{
		ID:              empID,
		Name:            "Carlos Lima",
		Sector:          settings.SectorOperacional,
		CustomWorkHours: &custom,
	}

	day := time.Date(2026, time.March, 2, 0, 0, 0, 0, time.Local)
	punches := punchesFor(empID, day, map[string]string{
		timeclock.KindEntry: "10:00",
		timeclock.KindExit:  "15:00",
	})

	svc := newTimebankService(emp, defaultSettings(), punches)

	report, err := svc.GetMonthReport(context.Background(), empID.String(), "2026-03")
	assert.NoError(t, err)

	// Custom schedule expects 5h/day, so a 5h workday balances to zero.
	expected := schedule.WorkSchedule(custom).ExpectedMinutes()
	assert.Equal(t, 300, expected)
	for _, d := range report.Days {
		if d.Date == "02/03/2026" {
			assert.Equal(t, 0, d.BalanceMinutes)
		}
	}
}

func TestGetMonthReport_EmployeeNotFound(t *testing.T) {
	employees := &fakeEmployeeRepository{
		findByIDFn: func(ctx context.Context, id string) (*employee.Employee, error) {
			return nil, nil
		},
	}
	svc := timebank.NewService(employees, &fakeSettingsRepository{
		getFn: func(ctx context.Context) (*settings.CompanySettings, error) {
			return defaultSettings(), nil
		},
	}, &fakePunchRepository{}, &fakeJustificationRepository{})

	_, err := svc.GetMonthReport(context.Background(), uuid.New().String(), "2026-03")
	assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
}

func TestGetMonthReport_SettingsMissing(t *testing.T) {
	empID := uuid.New()
	employees := &fakeEmployeeRepository{
		findByIDFn: func(ctx context.Context, id string) (*employee.Employee, error) {
			return &employee.Employee{ID: empID, Name: "Carlos Lima"}, nil
		},
	}
	svc := timebank.NewService(employees, &fakeSettingsRepository{
		getFn: func(ctx context.Context) (*settings.CompanySettings, error) {
			return nil, nil
		},
	}, &fakePunchRepository{}, &fakeJustificationRepository{})

	_, err := svc.GetMonthReport(context.Background(), empID.String(), "2026-03")
	assert.ErrorIs(t, err, settingserrors.ErrSettingsNotFound)
}
