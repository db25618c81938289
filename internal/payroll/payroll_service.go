package payroll

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go-ponto/internal/employee"
	"go-ponto/internal/events"
	"go-ponto/internal/justification"
	"go-ponto/internal/messaging/kafka"
	payrollerrors "go-ponto/internal/payroll/errors"
	"go-ponto/internal/payslip"
	"go-ponto/internal/shared/contextutil"
	"go-ponto/internal/timeclock"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	closingCacheTTL       = 5 * time.Minute
	defaultPayslipStorage = "storage/payslips"
)

//go:generate mockgen -source=payroll_service.go -destination=mock/payroll_service_mock.go -package=mock
type Service interface {
	RunClosing(ctx context.Context, req RunClosingRequest) (ClosingSummaryResponse, error)
	GetClosing(ctx context.Context, month string) (ClosingSummaryResponse, error)
	Approve(ctx context.Context, actorID, month string) (ClosingSummaryResponse, error)
	GetEmployeeClosing(ctx context.Context, employeeID, month string) (ClosingResponse, error)
	RenderPayslipPDF(ctx context.Context, employeeID, month string) ([]byte, error)
	GeneratePayslips(ctx context.Context, month string) error
	ExportClosingXLSX(ctx context.Context, month string) ([]byte, error)
}

type Deps struct {
	DB             *sql.DB
	Repo           Repository
	Employees      employee.Repository
	Punches        timeclock.Repository
	Justifications justification.Repository
	Outbox         kafka.OutboxRepository
	Payslips       payslip.Repository
	Redis          *redis.Client
	PayslipDir     string
}

type service struct {
	db             *sql.DB
	repo           Repository
	employees      employee.Repository
	punches        timeclock.Repository
	justifications justification.Repository
	outbox         kafka.OutboxRepository
	payslips       payslip.Repository
	rdb            *redis.Client
	payslipDir     string
	logger         *zap.Logger
}

func NewService(deps Deps, logger ...*zap.Logger) Service {
	l := zap.L().Named("payroll.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payroll.service")
	}
	dir := deps.PayslipDir
	if dir == "" {
		dir = defaultPayslipStorage
	}
	return &service{
		db:             deps.DB,
		repo:           deps.Repo,
		employees:      deps.Employees,
		punches:        deps.Punches,
		justifications: deps.Justifications,
		outbox:         deps.Outbox,
		payslips:       deps.Payslips,
		rdb:            deps.Redis,
		payslipDir:     dir,
		logger:         l,
	}
}

// RunClosing recomputes the month's payroll for every active employee and
// stores the results as drafts. Re-running replaces previous drafts; an
// already approved month cannot be recomputed.
func (s *service) RunClosing(ctx context.Context, req RunClosingRequest) (ClosingSummaryResponse, error) {
	month := req.Month
	monthStart, monthEnd, err := parseMonth(month)
	if err != nil {
		return ClosingSummaryResponse{}, err
	}
	year, m := monthStart.Year(), monthStart.Month()

	existing, err := s.repo.FindByMonth(ctx, month)
	if err != nil {
		s.logger.Error("run closing existing lookup failed", zap.Error(err))
		return ClosingSummaryResponse{}, err
	}
	for _, c := range existing {
		if c.Status == ClosingStatusApproved {
			return ClosingSummaryResponse{}, payrollerrors.ErrClosingAlreadyApproved
		}
	}

	staff, err := s.employees.FindAll(ctx, true)
	if err != nil {
		s.logger.Error("run closing employee query failed", zap.Error(err))
		return ClosingSummaryResponse{}, err
	}
	punches, err := s.punches.FindByMonth(ctx, monthStart, monthEnd)
	if err != nil {
		s.logger.Error("run closing punch query failed", zap.Error(err))
		return ClosingSummaryResponse{}, err
	}
	justs, err := s.justifications.FindApprovedInRange(ctx, monthStart, monthEnd.AddDate(0, 0, -1))
	if err != nil {
		s.logger.Error("run closing justification query failed", zap.Error(err))
		return ClosingSummaryResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("run closing begin tx failed", zap.Error(err))
		return ClosingSummaryResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	if err := qtx.DeleteDraftsByMonth(ctx, month); err != nil {
		s.logger.Error("run closing draft cleanup failed", zap.Error(err))
		return ClosingSummaryResponse{}, err
	}

	closings := make([]Closing, 0, len(staff))
	for _, emp := range staff {
		workedSet := timeclock.WorkedDaySet(punches, emp.ID, year, m)
		justifiedSet := justification.JustifiedDays(justs, emp.ID, year, m)
		for day := range justifiedSet {
			delete(workedSet, day)
		}

		convenio, entered := req.ConvenioDeductions[emp.ID.String()]
		if !entered {
			if c := emp.Benefits.Convenio; c != nil {
				convenio = c.MonthlyValue
			}
		}

		result := Compute(Input{
			BaseSalary:        emp.BaseSalary,
			AdmissionDate:     emp.AdmissionDate,
			Benefits:          emp.Benefits,
			Year:              year,
			Month:             m,
			WorkedDays:        len(workedSet),
			JustifiedDays:     len(justifiedSet),
			ConvenioDeduction: convenio,
		})

		c := Closing{
			ID:              uuid.New(),
			EmployeeID:      emp.ID,
			EmployeeName:    emp.Name,
			Month:           month,
			Status:          ClosingStatusDraft,
			Result:          ResultJSON(result),
			TotalEarnings:   result.TotalEarnings,
			TotalDeductions: result.TotalDeductions,
			NetPay:          result.NetPay,
			WorkedDays:      result.WorkedDays,
			AbsentDays:      result.AbsentDays,
		}
		if err := qtx.Create(ctx, &c); err != nil {
			s.logger.Error("run closing persist failed",
				zap.String("employee_id", emp.ID.String()),
				zap.Error(err),
			)
			return ClosingSummaryResponse{}, err
		}
		closings = append(closings, c)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("run closing commit failed", zap.Error(err))
		return ClosingSummaryResponse{}, err
	}

	s.invalidateCache(ctx, month)
	s.logger.Info("payroll closing computed",
		zap.String("month", month),
		zap.Int("employees", len(closings)),
	)
	return buildSummary(month, closings), nil
}

func (s *service) GetClosing(ctx context.Context, month string) (ClosingSummaryResponse, error) {
	if _, _, err := parseMonth(month); err != nil {
		return ClosingSummaryResponse{}, err
	}

	cacheKey := closingCacheKey(month)
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cacheKey).Bytes(); err == nil {
			var summary ClosingSummaryResponse
			if err := json.Unmarshal(cached, &summary); err == nil {
				return summary, nil
			}
		}
	}

	closings, err := s.repo.FindByMonth(ctx, month)
	if err != nil {
		return ClosingSummaryResponse{}, err
	}
	if len(closings) == 0 {
		return ClosingSummaryResponse{}, payrollerrors.ErrClosingNotFound
	}

	summary := buildSummary(month, closings)
	if s.rdb != nil {
		if payload, err := json.Marshal(summary); err == nil {
			_ = s.rdb.Set(ctx, cacheKey, payload, closingCacheTTL).Err()
		}
	}
	return summary, nil
}

// Approve freezes the month's drafts and stages the event that triggers
// payslip generation, in one transaction.
func (s *service) Approve(ctx context.Context, actorID, month string) (ClosingSummaryResponse, error) {
	approverUUID, err := uuid.Parse(actorID)
	if err != nil {
		return ClosingSummaryResponse{}, payrollerrors.ErrInvalidApprover
	}
	if _, _, err := parseMonth(month); err != nil {
		return ClosingSummaryResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("approve closing begin tx failed", zap.Error(err))
		return ClosingSummaryResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	closings, err := qtx.FindByMonth(ctx, month)
	if err != nil {
		s.logger.Error("approve closing lookup failed", zap.Error(err))
		return ClosingSummaryResponse{}, err
	}
	if len(closings) == 0 {
		return ClosingSummaryResponse{}, payrollerrors.ErrClosingNotFound
	}

	now := time.Now()
	drafts := 0
	for i := range closings {
		if closings[i].Status != ClosingStatusDraft {
			continue
		}
		drafts++
		closings[i].Status = ClosingStatusApproved
		closings[i].ApprovedBy = &approverUUID
		closings[i].ApprovedAt = &now
		if err := qtx.Update(ctx, &closings[i]); err != nil {
			s.logger.Error("approve closing persist failed",
				zap.String("closing_id", closings[i].ID.String()),
				zap.Error(err),
			)
			return ClosingSummaryResponse{}, err
		}
	}
	if drafts == 0 {
		return ClosingSummaryResponse{}, payrollerrors.ErrNothingToApprove
	}

	if s.outbox != nil {
		rid := contextutil.GetRequestID(ctx)
		event := events.PayrollClosingApprovedEvent{
			EventType:  "payroll_closing_approved",
			Month:      month,
			ApprovedBy: actorID,
			OccurredAt: now.UTC(),
		}
		payload, err := json.Marshal(event)
		if err != nil {
			s.logger.Error("approve closing marshal event failed", zap.Error(err))
			return ClosingSummaryResponse{}, err
		}
		if err := s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
			ID:            uuid.NewString(),
			RequestID:     rid,
			AggregateType: "payroll_closing",
			AggregateID:   month,
			EventType:     event.EventType,
			Topic:         events.PayrollClosingApprovedTopic,
			Payload:       payload,
			Status:        kafka.OutboxStatusPending,
		}); err != nil {
			s.logger.Error("approve closing outbox persist failed", zap.Error(err))
			return ClosingSummaryResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("approve closing commit failed", zap.Error(err))
		return ClosingSummaryResponse{}, err
	}

	s.invalidateCache(ctx, month)
	s.logger.Info("payroll closing approved",
		zap.String("month", month),
		zap.String("approved_by", actorID),
		zap.Int("employees", drafts),
	)
	return buildSummary(month, closings), nil
}

func (s *service) GetEmployeeClosing(ctx context.Context, employeeID, month string) (ClosingResponse, error) {
	if _, _, err := parseMonth(month); err != nil {
		return ClosingResponse{}, err
	}
	c, err := s.repo.FindByEmployeeAndMonth(ctx, employeeID, month)
	if err != nil {
		return ClosingResponse{}, err
	}
	if c == nil {
		return ClosingResponse{}, payrollerrors.ErrClosingNotFound
	}
	return mapClosingToResponse(*c), nil
}

func (s *service) RenderPayslipPDF(ctx context.Context, employeeID, month string) ([]byte, error) {
	if _, _, err := parseMonth(month); err != nil {
		return nil, err
	}
	c, err := s.repo.FindByEmployeeAndMonth(ctx, employeeID, month)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, payrollerrors.ErrClosingNotFound
	}
	return renderPayslipPDF(*c)
}

// GeneratePayslips renders and archives a PDF for every approved closing
// of the month. Called by the closing-approved consumer; safe to re-run.
func (s *service) GeneratePayslips(ctx context.Context, month string) error {
	if _, _, err := parseMonth(month); err != nil {
		return err
	}
	closings, err := s.repo.FindByMonth(ctx, month)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(s.payslipDir, 0o755); err != nil {
		return err
	}

	for _, c := range closings {
		if c.Status != ClosingStatusApproved {
			continue
		}

		pdfBytes, err := renderPayslipPDF(c)
		if err != nil {
			s.logger.Error("payslip render failed",
				zap.String("closing_id", c.ID.String()),
				zap.Error(err),
			)
			return err
		}

		path := filepath.Join(s.payslipDir, fmt.Sprintf("%s-%s.pdf", c.EmployeeID, month))
		if err := os.WriteFile(path, pdfBytes, 0o644); err != nil {
			return err
		}

		if s.payslips != nil {
			if err := s.payslips.Upsert(ctx, &payslip.Payslip{
				ID:          uuid.New(),
				EmployeeID:  c.EmployeeID,
				ClosingID:   c.ID,
				Month:       month,
				FilePath:    path,
				FileSize:    int64(len(pdfBytes)),
				GeneratedAt: time.Now(),
			}); err != nil {
				s.logger.Error("payslip index persist failed",
					zap.String("closing_id", c.ID.String()),
					zap.Error(err),
				)
				return err
			}
		}
	}

	return nil
}

func (s *service) ExportClosingXLSX(ctx context.Context, month string) ([]byte, error) {
	if _, _, err := parseMonth(month); err != nil {
		return nil, err
	}
	closings, err := s.repo.FindByMonth(ctx, month)
	if err != nil {
		return nil, err
	}
	if len(closings) == 0 {
		return nil, payrollerrors.ErrClosingNotFound
	}
	return renderClosingXLSX(month, closings)
}

func (s *service) invalidateCache(ctx context.Context, month string) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, closingCacheKey(month)).Err(); err != nil {
		s.logger.Warn("closing cache invalidation failed",
			zap.String("month", month),
			zap.Error(err),
		)
	}
}

func closingCacheKey(month string) string {
	return "payroll:closing:" + month
}

func parseMonth(month string) (time.Time, time.Time, error) {
	start, err := time.ParseInLocation("2006-01", month, time.Local)
	if err != nil {
		return time.Time{}, time.Time{}, payrollerrors.ErrInvalidMonth
	}
	return start, start.AddDate(0, 1, 0), nil
}

func buildSummary(month string, closings []Closing) ClosingSummaryResponse {
	summary := ClosingSummaryResponse{Month: month}
	for _, c := range closings {
		summary.Employees = append(summary.Employees, mapClosingToResponse(c))
		summary.TotalEarnings += c.TotalEarnings
		summary.TotalDeductions += c.TotalDeductions
		summary.TotalNetPay += c.NetPay
	}
	return summary
}

func mapClosingToResponse(c Closing) ClosingResponse {
	resp := ClosingResponse{
		ID:              c.ID.String(),
		EmployeeID:      c.EmployeeID.String(),
		EmployeeName:    c.EmployeeName,
		Month:           c.Month,
		Status:          c.Status,
		Result:          Result(c.Result),
		TotalEarnings:   c.TotalEarnings,
		TotalDeductions: c.TotalDeductions,
		NetPay:          c.NetPay,
		WorkedDays:      c.WorkedDays,
		AbsentDays:      c.AbsentDays,
	}
	if c.ApprovedBy != nil {
		ab := c.ApprovedBy.String()
		resp.ApprovedBy = &ab
	}
	if c.ApprovedAt != nil {
		aa := c.ApprovedAt.Format(time.RFC3339)
		resp.ApprovedAt = &aa
	}
	return resp
}
