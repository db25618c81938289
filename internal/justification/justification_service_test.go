package justification_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"go-ponto/internal/justification"
	justificationerrors "go-ponto/internal/justification/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeJustificationRepository struct {
	withTxFn              func(tx *sql.Tx) justification.Repository
	createFn              func(ctx context.Context, j *justification.Justification) error
	findByIDFn            func(ctx context.Context, id string) (*justification.Justification, error)
	findAllFn             func(ctx context.Context, filter justification.JustificationQueryFilter) ([]justification.Justification, error)
	findByEmployeeFn      func(ctx context.Context, employeeID string) ([]justification.Justification, error)
	findApprovedInRangeFn func(ctx context.Context, rangeStart, rangeEnd time.Time) ([]justification.Justification, error)
	updateFn              func(ctx context.Context, j *justification.Justification) error
}

func (f *fakeJustificationRepository) WithTx(tx *sql.Tx) justification.Repository {
	if f.withTxFn != nil {
		return f.withTxFn(tx)
	}
	return f
}

func (f *fakeJustificationRepository) Create(ctx context.Context, j *justification.Justification) error {
	if f.createFn != nil {
		return f.createFn(ctx, j)
	}
	return nil
}

func (f *fakeJustificationRepository) FindByID(ctx context.Context, id string) (*justification.Justification, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, nil
}

func (f *fakeJustificationRepository) FindAll(ctx context.Context, filter justification.JustificationQueryFilter) ([]justification.Justification, error) {
	if f.findAllFn != nil {
		return f.findAllFn(ctx, filter)
	}
	return nil, nil
}

func (f *fakeJustificationRepository) FindByEmployee(ctx context.Context, employeeID string) ([]justification.Justification, error) {
	if f.findByEmployeeFn != nil {
		return f.findByEmployeeFn(ctx, employeeID)
	}
	return nil, nil
}

func (f *fakeJustificationRepository) FindApprovedInRange(ctx context.Context, rangeStart, rangeEnd time.Time) ([]justification.Justification, error) {
	if f.findApprovedInRangeFn != nil {
		return f.findApprovedInRangeFn(ctx, rangeStart, rangeEnd)
	}
	return nil, nil
}

func (f *fakeJustificationRepository) Update(ctx context.Context, j *justification.Justification) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, j)
	}
	return nil
}

type justificationServiceDeps struct {
	db      *sql.DB
	sqlMock sqlmock.Sqlmock
	service justification.Service
	repo    *fakeJustificationRepository
}

func setupJustificationServiceTest(t *testing.T) *justificationServiceDeps {
	t.Helper()

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)

	repo := &fakeJustificationRepository{}
	svc := justification.NewService(db, repo)

	return &justificationServiceDeps{db: db, sqlMock: sqlMock, service: svc, repo: repo}
}

func expectTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

func TestJustificationService_Submit(t *testing.T) {
	ctx := context.Background()
	employeeID := uuid.New().String()

	deps := setupJustificationServiceTest(t)
	defer deps.db.Close()

	expectTx(t, deps.sqlMock, true)

	var stored *justification.Justification
	deps.repo.createFn = func(ctx context.Context, j *justification.Justification) error {
		stored = j
		return nil
	}

	resp, err := deps.service.Submit(ctx, employeeID, justification.CreateJustificationRequest{
		StartDate: "2026-03-10",
		Reason:    "Atestado Médico",
		Details:   "consulta",
	})

	assert.NoError(t, err)
	assert.NotNil(t, stored)
	assert.Equal(t, justification.StatusPending, stored.Status)
	assert.Nil(t, stored.ReviewedBy)
	assert.Equal(t, justification.StatusPending, resp.Status)
	assert.Equal(t, "2026-03-10", resp.StartDate)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestJustificationService_Submit_EndBeforeStart(t *testing.T) {
	ctx := context.Background()

	deps := setupJustificationServiceTest(t)
	defer deps.db.Close()

	end := "2026-03-08"
	_, err := deps.service.Submit(ctx, uuid.New().String(), justification.CreateJustificationRequest{
		StartDate: "2026-03-10",
		EndDate:   &end,
		Reason:    "Viagem",
	})

	assert.ErrorIs(t, err, justificationerrors.ErrEndBeforeStart)
}

func TestJustificationService_CreateApproved(t *testing.T) {
	ctx := context.Background()
	actorID := uuid.New().String()
	employeeID := uuid.New().String()

	deps := setupJustificationServiceTest(t)
	defer deps.db.Close()

	expectTx(t, deps.sqlMock, true)

	var stored *justification.Justification
	deps.repo.createFn = func(ctx context.Context, j *justification.Justification) error {
		stored = j
		return nil
	}

	resp, err := deps.service.CreateApproved(ctx, actorID, justification.AdminCreateJustificationRequest{
		EmployeeID: employeeID,
		CreateJustificationRequest: justification.CreateJustificationRequest{
			StartDate: "2026-03-12",
			Reason:    "Falecimento Familiar",
		},
	})

	assert.NoError(t, err)
	assert.Equal(t, justification.StatusApproved, stored.Status)
	assert.NotNil(t, stored.ReviewedBy)
	assert.Equal(t, actorID, stored.ReviewedBy.String())
	assert.Equal(t, justification.StatusApproved, resp.Status)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestJustificationService_Approve(t *testing.T) {
	ctx := context.Background()
	actorID := uuid.New().String()
	id := uuid.New()

	deps := setupJustificationServiceTest(t)
	defer deps.db.Close()

	expectTx(t, deps.sqlMock, true)
	deps.repo.findByIDFn = func(ctx context.Context, gotID string) (*justification.Justification, error) {
		assert.Equal(t, id.String(), gotID)
		return &justification.Justification{
			ID:         id,
			EmployeeID: uuid.New(),
			Status:     justification.StatusPending,
			StartDate:  time.Date(2026, 3, 10, 0, 0, 0, 0, time.Local),
			Reason:     "Atestado Médico",
		}, nil
	}

	var updated *justification.Justification
	deps.repo.updateFn = func(ctx context.Context, j *justification.Justification) error {
		updated = j
		return nil
	}

	resp, err := deps.service.Approve(ctx, actorID, id.String())

	assert.NoError(t, err)
	assert.Equal(t, justification.StatusApproved, updated.Status)
	assert.NotNil(t, updated.ReviewedAt)
	assert.Equal(t, justification.StatusApproved, resp.Status)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestJustificationService_Approve_NotFound(t *testing.T) {
	ctx := context.Background()

	deps := setupJustificationServiceTest(t)
	defer deps.db.Close()

	expectTx(t, deps.sqlMock, false)
	deps.repo.findByIDFn = func(ctx context.Context, id string) (*justification.Justification, error) {
		return nil, nil
	}

	_, err := deps.service.Approve(ctx, uuid.New().String(), uuid.New().String())

	assert.ErrorIs(t, err, justificationerrors.ErrJustificationNotFound)
}

func TestJustificationService_Reject_AlreadyReviewed(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	deps := setupJustificationServiceTest(t)
	defer deps.db.Close()

	expectTx(t, deps.sqlMock, false)
	deps.repo.findByIDFn = func(ctx context.Context, gotID string) (*justification.Justification, error) {
		return &justification.Justification{
			ID:     id,
			Status: justification.StatusApproved,
		}, nil
	}

	_, err := deps.service.Reject(ctx, uuid.New().String(), id.String())

	assert.ErrorIs(t, err, justificationerrors.ErrAlreadyReviewed)
}
