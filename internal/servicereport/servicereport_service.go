package servicereport

import (
	"context"
	"time"

	"go-ponto/internal/employee"
	srerrors "go-ponto/internal/servicereport/errors"
	"go-ponto/internal/shared/apperror"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=servicereport_service.go -destination=mock/servicereport_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, employeeID string, req CreateServiceReportRequest) (ServiceReportResponse, error)
	GetByID(ctx context.Context, id string) (ServiceReportResponse, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]ServiceReportResponse, error)
	ListAll(ctx context.Context) ([]ServiceReportResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo      Repository
	employees employee.Repository
	logger    *zap.Logger
}

func NewService(repo Repository, employees employee.Repository, logger ...*zap.Logger) Service {
	l := zap.L()
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0]
	}
	return &service{repo: repo, employees: employees, logger: l.Named("servicereport_service")}
}

func (s *service) Create(ctx context.Context, employeeID string, req CreateServiceReportRequest) (ServiceReportResponse, error) {
	empID, err := uuid.Parse(employeeID)
	if err != nil {
		return ServiceReportResponse{}, apperror.InvalidField("employee_id")
	}

	ts := time.Now()
	if req.Timestamp != "" {
		ts, err = time.Parse(time.RFC3339, req.Timestamp)
		if err != nil {
			return ServiceReportResponse{}, srerrors.ErrInvalidTimestamp
		}
	}

	report := &ServiceReport{
		ID:           uuid.New(),
		EmployeeID:   empID,
		Timestamp:    ts,
		Client:       req.Client,
		PhotoURL:     req.PhotoURL,
		SignatureURL: req.SignatureURL,
	}

	if err := s.repo.Create(ctx, report); err != nil {
		return ServiceReportResponse{}, err
	}

	s.logger.Info("service report created",
		zap.String("report_id", report.ID.String()),
		zap.String("employee_id", employeeID),
		zap.String("client", report.Client))

	return s.mapToResponse(*report, nil), nil
}

func (s *service) GetByID(ctx context.Context, id string) (ServiceReportResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return ServiceReportResponse{}, srerrors.ErrInvalidReportID
	}

	report, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return ServiceReportResponse{}, err
	}
	if report == nil {
		return ServiceReportResponse{}, srerrors.ErrReportNotFound
	}

	return s.mapToResponse(*report, nil), nil
}

func (s *service) ListByEmployee(ctx context.Context, employeeID string) ([]ServiceReportResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return nil, apperror.InvalidField("employee_id")
	}

	reports, err := s.repo.FindByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	res := make([]ServiceReportResponse, len(reports))
	for i, r := range reports {
		res[i] = s.mapToResponse(r, nil)
	}
	return res, nil
}

func (s *service) ListAll(ctx context.Context) ([]ServiceReportResponse, error) {
	reports, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	names, err := s.employeeNames(ctx)
	if err != nil {
		return nil, err
	}

	res := make([]ServiceReportResponse, len(reports))
	for i, r := range reports {
		res[i] = s.mapToResponse(r, names)
	}
	return res, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return srerrors.ErrInvalidReportID
	}

	report, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if report == nil {
		return srerrors.ErrReportNotFound
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("service report deleted", zap.String("report_id", id))
	return nil
}

// employeeNames builds an id-to-name map in one query so listings do not
// fan out per row.
func (s *service) employeeNames(ctx context.Context) (map[string]string, error) {
	emps, err := s.employees.FindAll(ctx, false)
	if err != nil {
		return nil, err
	}

	names := make(map[string]string, len(emps))
	for _, e := range emps {
		names[e.ID.String()] = e.Name
	}
	return names, nil
}

func (s *service) mapToResponse(r ServiceReport, names map[string]string) ServiceReportResponse {
	resp := ServiceReportResponse{
		ID:           r.ID.String(),
		EmployeeID:   r.EmployeeID.String(),
		Timestamp:    r.Timestamp.Format(time.RFC3339),
		Client:       r.Client,
		PhotoURL:     r.PhotoURL,
		SignatureURL: r.SignatureURL,
	}
	if names != nil {
		resp.EmployeeName = names[resp.EmployeeID]
	}
	return resp
}
