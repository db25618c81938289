package justification

import (
	"context"
	"database/sql"
	"time"

	justificationerrors "go-ponto/internal/justification/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=justification_service.go -destination=mock/justification_service_mock.go -package=mock
type Service interface {
	Submit(ctx context.Context, employeeID string, req CreateJustificationRequest) (JustificationResponse, error)
	CreateApproved(ctx context.Context, actorID string, req AdminCreateJustificationRequest) (JustificationResponse, error)
	GetAll(ctx context.Context, filter JustificationQueryFilter) ([]JustificationResponse, error)
	GetMine(ctx context.Context, employeeID string) ([]JustificationResponse, error)
	Approve(ctx context.Context, actorID, id string) (JustificationResponse, error)
	Reject(ctx context.Context, actorID, id string) (JustificationResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("justification.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("justification.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

// Submit records an employee's own justification. It always enters as
// PENDING and only affects calculations after an admin approves it.
func (s *service) Submit(ctx context.Context, employeeID string, req CreateJustificationRequest) (JustificationResponse, error) {
	return s.create(ctx, employeeID, req, StatusPending, nil)
}

// CreateApproved records a justification on behalf of an employee and
// approves it in the same step. Admin flow.
func (s *service) CreateApproved(ctx context.Context, actorID string, req AdminCreateJustificationRequest) (JustificationResponse, error) {
	reviewerUUID, err := uuid.Parse(actorID)
	if err != nil {
		return JustificationResponse{}, justificationerrors.ErrInvalidReviewer
	}
	return s.create(ctx, req.EmployeeID, req.CreateJustificationRequest, StatusApproved, &reviewerUUID)
}

func (s *service) create(ctx context.Context, employeeID string, req CreateJustificationRequest, status string, reviewedBy *uuid.UUID) (JustificationResponse, error) {
	employeeUUID, err := uuid.Parse(employeeID)
	if err != nil {
		return JustificationResponse{}, justificationerrors.ErrInvalidEmployeeID
	}

	startDate, err := time.ParseInLocation("2006-01-02", req.StartDate, time.Local)
	if err != nil {
		return JustificationResponse{}, justificationerrors.ErrInvalidStartDate
	}
	var endDate *time.Time
	if req.EndDate != nil && *req.EndDate != "" {
		parsed, err := time.ParseInLocation("2006-01-02", *req.EndDate, time.Local)
		if err != nil {
			return JustificationResponse{}, justificationerrors.ErrInvalidEndDate
		}
		if parsed.Before(startDate) {
			return JustificationResponse{}, justificationerrors.ErrEndBeforeStart
		}
		endDate = &parsed
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create justification begin tx failed", zap.Error(err))
		return JustificationResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	j := &Justification{
		ID:            uuid.New(),
		EmployeeID:    employeeUUID,
		Status:        status,
		StartDate:     startDate,
		EndDate:       endDate,
		Time:          req.Time,
		Reason:        req.Reason,
		Details:       req.Details,
		AttachmentURL: req.AttachmentURL,
		ReviewedBy:    reviewedBy,
	}
	if reviewedBy != nil {
		now := time.Now()
		j.ReviewedAt = &now
	}

	if err := qtx.Create(ctx, j); err != nil {
		s.logger.Error("create justification persist failed", zap.Error(err))
		return JustificationResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		s.logger.Error("create justification commit failed", zap.Error(err))
		return JustificationResponse{}, err
	}

	s.logger.Info("justification created",
		zap.String("employee_id", employeeID),
		zap.String("status", status),
		zap.String("start_date", req.StartDate),
	)
	return mapJustificationToResponse(*j), nil
}

func (s *service) GetAll(ctx context.Context, filter JustificationQueryFilter) ([]JustificationResponse, error) {
	rows, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	return mapJustificationsToResponses(rows), nil
}

func (s *service) GetMine(ctx context.Context, employeeID string) ([]JustificationResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return nil, justificationerrors.ErrInvalidEmployeeID
	}
	rows, err := s.repo.FindByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	return mapJustificationsToResponses(rows), nil
}

func (s *service) Approve(ctx context.Context, actorID, id string) (JustificationResponse, error) {
	return s.review(ctx, actorID, id, StatusApproved)
}

func (s *service) Reject(ctx context.Context, actorID, id string) (JustificationResponse, error) {
	return s.review(ctx, actorID, id, StatusRejected)
}

// review moves a pending justification to its final status. Reviewed
// records are immutable; a second review attempt conflicts.
func (s *service) review(ctx context.Context, actorID, id, targetStatus string) (JustificationResponse, error) {
	reviewerUUID, err := uuid.Parse(actorID)
	if err != nil {
		return JustificationResponse{}, justificationerrors.ErrInvalidReviewer
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("review justification begin tx failed", zap.Error(err))
		return JustificationResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	j, err := qtx.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("review justification lookup failed", zap.Error(err))
		return JustificationResponse{}, err
	}
	if j == nil {
		return JustificationResponse{}, justificationerrors.ErrJustificationNotFound
	}
	if j.Status != StatusPending {
		return JustificationResponse{}, justificationerrors.ErrAlreadyReviewed
	}

	now := time.Now()
	j.Status = targetStatus
	j.ReviewedBy = &reviewerUUID
	j.ReviewedAt = &now

	if err := qtx.Update(ctx, j); err != nil {
		s.logger.Error("review justification persist failed", zap.Error(err))
		return JustificationResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		s.logger.Error("review justification commit failed", zap.Error(err))
		return JustificationResponse{}, err
	}

	s.logger.Info("justification reviewed",
		zap.String("id", id),
		zap.String("status", targetStatus),
		zap.String("reviewed_by", actorID),
	)
	return mapJustificationToResponse(*j), nil
}

func mapJustificationsToResponses(rows []Justification) []JustificationResponse {
	res := make([]JustificationResponse, len(rows))
	for i, j := range rows {
		res[i] = mapJustificationToResponse(j)
	}
	return res
}

func mapJustificationToResponse(j Justification) JustificationResponse {
	resp := JustificationResponse{
		ID:            j.ID.String(),
		EmployeeID:    j.EmployeeID.String(),
		Status:        j.Status,
		StartDate:     j.StartDate.Format("2006-01-02"),
		Time:          j.Time,
		Reason:        j.Reason,
		Details:       j.Details,
		AttachmentURL: j.AttachmentURL,
		CreatedAt:     j.CreatedAt.Format(time.RFC3339),
	}
	if j.EndDate != nil {
		end := j.EndDate.Format("2006-01-02")
		resp.EndDate = &end
	}
	if j.ReviewedBy != nil {
		rb := j.ReviewedBy.String()
		resp.ReviewedBy = &rb
	}
	if j.ReviewedAt != nil {
		ra := j.ReviewedAt.Format(time.RFC3339)
		resp.ReviewedAt = &ra
	}
	return resp
}
