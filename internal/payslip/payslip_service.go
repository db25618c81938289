package payslip

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"go-ponto/internal/shared/apperror"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var ErrPayslipNotFound = apperror.New(
	apperror.CodeNotFound,
	"payslip not found",
	http.StatusNotFound,
)

type PayslipResponse struct {
	ID          string `json:"id"`
	EmployeeID  string `json:"employee_id"`
	Month       string `json:"month"`
	FileSize    int64  `json:"file_size"`
	GeneratedAt string `json:"generated_at"`
}

//go:generate mockgen -source=payslip_service.go -destination=mock/payslip_service_mock.go -package=mock
type Service interface {
	ListByEmployee(ctx context.Context, employeeID string) ([]PayslipResponse, error)
	Download(ctx context.Context, employeeID, month string) ([]byte, string, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("payslip.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payslip.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) ListByEmployee(ctx context.Context, employeeID string) ([]PayslipResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return nil, apperror.InvalidField("employee_id")
	}

	rows, err := s.repo.FindByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	res := make([]PayslipResponse, len(rows))
	for i, p := range rows {
		res[i] = PayslipResponse{
			ID:          p.ID.String(),
			EmployeeID:  p.EmployeeID.String(),
			Month:       p.Month,
			FileSize:    p.FileSize,
			GeneratedAt: p.GeneratedAt.Format("2006-01-02T15:04:05Z07:00"),
		}
	}
	return res, nil
}

// Download returns the archived PDF bytes and a download filename.
func (s *service) Download(ctx context.Context, employeeID, month string) ([]byte, string, error) {
	p, err := s.repo.FindByEmployeeAndMonth(ctx, employeeID, month)
	if err != nil {
		return nil, "", err
	}
	if p == nil {
		return nil, "", ErrPayslipNotFound
	}

	data, err := os.ReadFile(p.FilePath)
	if err != nil {
		s.logger.Error("payslip file read failed",
			zap.String("path", p.FilePath),
			zap.Error(err),
		)
		return nil, "", ErrPayslipNotFound
	}

	return data, fmt.Sprintf("holerite-%s.pdf", month), nil
}
