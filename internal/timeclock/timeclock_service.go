package timeclock

import (
	"context"
	"database/sql"
	"time"

	timeclockerrors "go-ponto/internal/timeclock/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=timeclock_service.go -destination=mock/timeclock_service_mock.go -package=mock
type Service interface {
	RegisterPunch(ctx context.Context, employeeID string, req CreatePunchRequest) (PunchResponse, error)
	GetMonth(ctx context.Context, employeeID, month string) ([]PunchResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("timeclock.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("timeclock.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func (s *service) RegisterPunch(ctx context.Context, employeeID string, req CreatePunchRequest) (PunchResponse, error) {
	employeeUUID, err := uuid.Parse(employeeID)
	if err != nil {
		return PunchResponse{}, timeclockerrors.ErrInvalidEmployeeID
	}
	if !IsValidKind(req.Kind) {
		return PunchResponse{}, timeclockerrors.ErrInvalidPunchKind
	}
	punchedAt, err := time.Parse(time.RFC3339, req.PunchedAt)
	if err != nil {
		return PunchResponse{}, timeclockerrors.ErrInvalidPunchTime
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("register punch begin tx failed", zap.Error(err))
		return PunchResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	p := &Punch{
		ID:         uuid.New(),
		EmployeeID: employeeUUID,
		Kind:       req.Kind,
		PunchedAt:  punchedAt,
		Latitude:   req.Latitude,
		Longitude:  req.Longitude,
		Accuracy:   req.Accuracy,
		PhotoURL:   req.PhotoURL,
	}

	if err := qtx.Create(ctx, p); err != nil {
		s.logger.Error("register punch persist failed", zap.Error(err))
		return PunchResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		s.logger.Error("register punch commit failed", zap.Error(err))
		return PunchResponse{}, err
	}

	s.logger.Info("punch registered",
		zap.String("employee_id", employeeID),
		zap.String("kind", req.Kind),
		zap.Time("punched_at", punchedAt),
	)
	return mapToResponse(*p), nil
}

func (s *service) GetMonth(ctx context.Context, employeeID, month string) ([]PunchResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return nil, timeclockerrors.ErrInvalidEmployeeID
	}
	monthStart, monthEnd, err := MonthBounds(month)
	if err != nil {
		return nil, err
	}

	rows, err := s.repo.FindByEmployeeAndMonth(ctx, employeeID, monthStart, monthEnd)
	if err != nil {
		return nil, err
	}

	res := make([]PunchResponse, len(rows))
	for i, p := range rows {
		res[i] = mapToResponse(p)
	}
	return res, nil
}

// MonthBounds parses a "YYYY-MM" reference month into a [start, end) range.
func MonthBounds(month string) (time.Time, time.Time, error) {
	start, err := time.ParseInLocation("2006-01", month, time.Local)
	if err != nil {
		return time.Time{}, time.Time{}, timeclockerrors.ErrInvalidMonth
	}
	return start, start.AddDate(0, 1, 0), nil
}

func mapToResponse(p Punch) PunchResponse {
	return PunchResponse{
		ID:         p.ID.String(),
		EmployeeID: p.EmployeeID.String(),
		Kind:       p.Kind,
		PunchedAt:  p.PunchedAt.Format(time.RFC3339),
		Latitude:   p.Latitude,
		Longitude:  p.Longitude,
		Accuracy:   p.Accuracy,
		PhotoURL:   p.PhotoURL,
	}
}
