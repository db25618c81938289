package employee

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	employeeerrors "go-ponto/internal/employee/errors"
	"go-ponto/internal/events"
	"go-ponto/internal/messaging/kafka"
	"go-ponto/internal/settings"
	"go-ponto/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetAll(ctx context.Context, activeOnly bool) ([]EmployeeResponse, error)
	GetByID(ctx context.Context, id string) (EmployeeResponse, error)
	Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	outbox kafka.OutboxRepository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

// NewServiceWithOutbox additionally stages a lifecycle event in the same
// transaction as each employee creation.
func NewServiceWithOutbox(db *sql.DB, repo Repository, outbox kafka.OutboxRepository, logger ...*zap.Logger) Service {
	s := NewService(db, repo, logger...).(*service)
	s.outbox = outbox
	return s
}

func (s *service) Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error) {
	cpf := NormalizeCPF(req.CPF)
	if cpf == "" {
		return EmployeeResponse{}, employeeerrors.ErrInvalidCPF
	}
	if !settings.IsValidSector(req.Sector) {
		return EmployeeResponse{}, employeeerrors.ErrInvalidSector
	}
	if req.BaseSalary <= 0 {
		return EmployeeResponse{}, employeeerrors.ErrInvalidSalary
	}
	admissionDate, err := time.ParseInLocation("2006-01-02", req.AdmissionDate, time.Local)
	if err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidAdmissionDate
	}
	role := req.Role
	if role == "" {
		role = RoleEmployee
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("create employee hash failed", zap.Error(err))
		return EmployeeResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create employee begin tx failed", zap.Error(err))
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	existing, err := qtx.FindByCPF(ctx, cpf)
	if err != nil {
		s.logger.Error("create employee cpf lookup failed", zap.Error(err))
		return EmployeeResponse{}, err
	}
	if existing != nil {
		return EmployeeResponse{}, employeeerrors.ErrCPFAlreadyRegistered
	}

	e := &Employee{
		ID:              uuid.New(),
		Name:            req.Name,
		CPF:             cpf,
		Email:           req.Email,
		Phone:           req.Phone,
		Address:         req.Address,
		City:            req.City,
		State:           req.State,
		Position:        req.Position,
		CBO:             req.CBO,
		ContractType:    req.ContractType,
		Sector:          req.Sector,
		Role:            role,
		PasswordHash:    string(hash),
		BaseSalary:      req.BaseSalary,
		AdmissionDate:   admissionDate,
		Active:          true,
		Benefits:        req.Benefits,
		CustomWorkHours: (*CustomWorkHours)(req.CustomWorkHours),
	}

	if err := qtx.Create(ctx, e); err != nil {
		s.logger.Error("create employee persist failed", zap.Error(err))
		return EmployeeResponse{}, err
	}

	if s.outbox != nil {
		event := events.EmployeeCreatedEvent{
			EventType:  "employee_created",
			EmployeeID: e.ID.String(),
			Sector:     e.Sector,
			OccurredAt: time.Now(),
		}
		payload, err := json.Marshal(event)
		if err != nil {
			s.logger.Error("create employee marshal event failed", zap.Error(err))
			return EmployeeResponse{}, err
		}
		if err := s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
			ID:            uuid.NewString(),
			RequestID:     contextutil.GetRequestID(ctx),
			AggregateType: "employee",
			AggregateID:   e.ID.String(),
			EventType:     event.EventType,
			Topic:         events.EmployeeCreatedTopic,
			Payload:       payload,
			Status:        kafka.OutboxStatusPending,
		}); err != nil {
			s.logger.Error("create employee outbox persist failed", zap.Error(err))
			return EmployeeResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create employee commit failed", zap.Error(err))
		return EmployeeResponse{}, err
	}

	s.logger.Info("employee created",
		zap.String("id", e.ID.String()),
		zap.String("sector", e.Sector),
	)
	return MapEmployeeToResponse(*e), nil
}

func (s *service) GetAll(ctx context.Context, activeOnly bool) ([]EmployeeResponse, error) {
	rows, err := s.repo.FindAll(ctx, activeOnly)
	if err != nil {
		return nil, err
	}
	res := make([]EmployeeResponse, len(rows))
	for i, e := range rows {
		res[i] = MapEmployeeToResponse(e)
	}
	return res, nil
}

func (s *service) GetByID(ctx context.Context, id string) (EmployeeResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
	}
	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return EmployeeResponse{}, err
	}
	if e == nil {
		return EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound
	}
	return MapEmployeeToResponse(*e), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
	}
	if !settings.IsValidSector(req.Sector) {
		return EmployeeResponse{}, employeeerrors.ErrInvalidSector
	}
	if req.BaseSalary <= 0 {
		return EmployeeResponse{}, employeeerrors.ErrInvalidSalary
	}
	admissionDate, err := time.ParseInLocation("2006-01-02", req.AdmissionDate, time.Local)
	if err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidAdmissionDate
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update employee begin tx failed", zap.Error(err))
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	e, err := qtx.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("update employee lookup failed", zap.Error(err))
		return EmployeeResponse{}, err
	}
	if e == nil {
		return EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound
	}

	e.Name = req.Name
	e.Email = req.Email
	e.Phone = req.Phone
	e.Address = req.Address
	e.City = req.City
	e.State = req.State
	e.Position = req.Position
	e.CBO = req.CBO
	e.ContractType = req.ContractType
	e.Sector = req.Sector
	if req.Role != "" {
		e.Role = req.Role
	}
	e.BaseSalary = req.BaseSalary
	e.AdmissionDate = admissionDate
	if req.Active != nil {
		e.Active = *req.Active
	}
	e.Benefits = req.Benefits
	e.CustomWorkHours = (*CustomWorkHours)(req.CustomWorkHours)

	if err := qtx.Update(ctx, e); err != nil {
		s.logger.Error("update employee persist failed", zap.Error(err))
		return EmployeeResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		s.logger.Error("update employee commit failed", zap.Error(err))
		return EmployeeResponse{}, err
	}

	s.logger.Info("employee updated", zap.String("id", id))
	return MapEmployeeToResponse(*e), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return employeeerrors.ErrInvalidEmployeeID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("delete employee begin tx failed", zap.Error(err))
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	e, err := qtx.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if e == nil {
		return employeeerrors.ErrEmployeeNotFound
	}

	if err := qtx.Delete(ctx, id); err != nil {
		s.logger.Error("delete employee persist failed", zap.Error(err))
		return err
	}
	if err := tx.Commit(); err != nil {
		s.logger.Error("delete employee commit failed", zap.Error(err))
		return err
	}

	s.logger.Info("employee deleted", zap.String("id", id))
	return nil
}

// NormalizeCPF strips formatting punctuation and validates that exactly 11
// digits remain. Returns "" when the input is not a plausible CPF.
func NormalizeCPF(cpf string) string {
	digits := make([]byte, 0, 11)
	for i := 0; i < len(cpf); i++ {
		c := cpf[i]
		switch {
		case c >= '0' && c <= '9':
			digits = append(digits, c)
		case c == '.' || c == '-' || c == ' ':
			// formatting only
		default:
			return ""
		}
	}
	if len(digits) != 11 {
		return ""
	}
	return string(digits)
}

func MapEmployeeToResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:              e.ID.String(),
		Name:            e.Name,
		CPF:             e.CPF,
		Email:           e.Email,
		Phone:           e.Phone,
		Address:         e.Address,
		City:            e.City,
		State:           e.State,
		Position:        e.Position,
		CBO:             e.CBO,
		ContractType:    e.ContractType,
		Sector:          e.Sector,
		Role:            e.Role,
		BaseSalary:      e.BaseSalary,
		AdmissionDate:   e.AdmissionDate.Format("2006-01-02"),
		Active:          e.Active,
		Benefits:        e.Benefits,
		CustomWorkHours: e.ScheduleOverride(),
	}
}
