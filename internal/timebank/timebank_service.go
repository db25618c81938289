package timebank

import (
	"context"
	"fmt"

	"go-ponto/internal/employee"
	employeeerrors "go-ponto/internal/employee/errors"
	"go-ponto/internal/justification"
	"go-ponto/internal/settings"
	settingserrors "go-ponto/internal/settings/errors"
	"go-ponto/internal/timeclock"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

//go:generate mockgen -source=timebank_service.go -destination=mock/timebank_service_mock.go -package=mock
type Service interface {
	GetMonthReport(ctx context.Context, employeeID, month string) (MonthReport, error)
	RenderMonthReportPDF(ctx context.Context, employeeID, month string) ([]byte, error)
}

type service struct {
	employees      employee.Repository
	settings       settings.Repository
	punches        timeclock.Repository
	justifications justification.Repository
	group          singleflight.Group
	logger         *zap.Logger
}

func NewService(
	employees employee.Repository,
	settingsRepo settings.Repository,
	punches timeclock.Repository,
	justifications justification.Repository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("timebank.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("timebank.service")
	}
	return &service{
		employees:      employees,
		settings:       settingsRepo,
		punches:        punches,
		justifications: justifications,
		logger:         l,
	}
}

// GetMonthReport computes the time-bank statement for one employee and
// month. Concurrent requests for the same statement share a single
// computation; the report is a pure function of the stored punches, so
// every caller gets the same answer.
func (s *service) GetMonthReport(ctx context.Context, employeeID, month string) (MonthReport, error) {
	key := fmt.Sprintf("%s|%s", employeeID, month)
	v, err, _ := s.group.Do(key, func() (interface{}, error) {
		return s.buildReport(ctx, employeeID, month)
	})
	if err != nil {
		return MonthReport{}, err
	}
	return v.(MonthReport), nil
}

func (s *service) buildReport(ctx context.Context, employeeID, month string) (MonthReport, error) {
	employeeUUID, err := uuid.Parse(employeeID)
	if err != nil {
		return MonthReport{}, employeeerrors.ErrInvalidEmployeeID
	}
	monthStart, monthEnd, err := timeclock.MonthBounds(month)
	if err != nil {
		return MonthReport{}, err
	}

	emp, err := s.employees.FindByID(ctx, employeeID)
	if err != nil {
		s.logger.Error("timebank employee lookup failed", zap.Error(err))
		return MonthReport{}, err
	}
	if emp == nil {
		return MonthReport{}, employeeerrors.ErrEmployeeNotFound
	}

	cfg, err := s.settings.Get(ctx)
	if err != nil {
		s.logger.Error("timebank settings lookup failed", zap.Error(err))
		return MonthReport{}, err
	}
	if cfg == nil {
		return MonthReport{}, settingserrors.ErrSettingsNotFound
	}

	punches, err := s.punches.FindByEmployeeAndMonth(ctx, employeeID, monthStart, monthEnd)
	if err != nil {
		s.logger.Error("timebank punch query failed", zap.Error(err))
		return MonthReport{}, err
	}

	justs, err := s.justifications.FindApprovedInRange(ctx, monthStart, monthEnd.AddDate(0, 0, -1))
	if err != nil {
		s.logger.Error("timebank justification query failed", zap.Error(err))
		return MonthReport{}, err
	}

	effective := cfg.Resolver().Resolve(emp.ScheduleOverride(), emp.Sector)

	report := BuildMonthReport(ReportInput{
		EmployeeID:      employeeUUID,
		EmployeeName:    emp.Name,
		Year:            monthStart.Year(),
		Month:           monthStart.Month(),
		ExpectedMinutes: effective.ExpectedMinutes(),
		Punches:         punches,
		JustifiedDays:   justification.JustifiedDays(justs, employeeUUID, monthStart.Year(), monthStart.Month()),
	})

	s.logger.Debug("timebank report built",
		zap.String("employee_id", employeeID),
		zap.String("month", month),
		zap.Int("total_balance_minutes", report.TotalBalanceMinutes),
	)
	return report, nil
}

func (s *service) RenderMonthReportPDF(ctx context.Context, employeeID, month string) ([]byte, error) {
	report, err := s.GetMonthReport(ctx, employeeID, month)
	if err != nil {
		return nil, err
	}
	return renderReportPDF(report)
}
