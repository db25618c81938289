package payroll

import (
	"context"
	"database/sql"
	"errors"

	"gorm.io/gorm"
)

//go:generate mockgen -source=closing_repo.go -destination=mock/closing_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, c *Closing) error
	FindByMonth(ctx context.Context, month string) ([]Closing, error)
	FindByEmployeeAndMonth(ctx context.Context, employeeID, month string) (*Closing, error)
	Update(ctx context.Context, c *Closing) error
	DeleteDraftsByMonth(ctx context.Context, month string) error
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) Create(ctx context.Context, c *Closing) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *repository) FindByMonth(ctx context.Context, month string) ([]Closing, error) {
	var rows []Closing
	err := r.db.WithContext(ctx).
		Where("month = ?", month).
		Order("employee_name ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindByEmployeeAndMonth(ctx context.Context, employeeID, month string) (*Closing, error) {
	var c Closing
	err := r.db.WithContext(ctx).
		Where("employee_id = ? AND month = ?", employeeID, month).
		First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *repository) Update(ctx context.Context, c *Closing) error {
	return r.db.WithContext(ctx).Save(c).Error
}

// DeleteDraftsByMonth clears drafts before a recomputation. Approved rows
// are never touched.
func (r *repository) DeleteDraftsByMonth(ctx context.Context, month string) error {
	return r.db.WithContext(ctx).
		Where("month = ? AND status = ?", month, ClosingStatusDraft).
		Delete(&Closing{}).Error
}
