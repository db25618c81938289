package payslip

import (
	"context"
	"database/sql"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=payslip_repo.go -destination=mock/payslip_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Upsert(ctx context.Context, p *Payslip) error
	FindByEmployeeAndMonth(ctx context.Context, employeeID, month string) (*Payslip, error)
	FindByEmployee(ctx context.Context, employeeID string) ([]Payslip, error)
	FindByMonth(ctx context.Context, month string) ([]Payslip, error)
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

// Upsert replaces a regenerated payslip for the same employee and month.
func (r *repository) Upsert(ctx context.Context, p *Payslip) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "employee_id"}, {Name: "month"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"closing_id", "file_path", "file_size", "generated_at", "updated_at",
		}),
	}).Create(p).Error
}

func (r *repository) FindByEmployeeAndMonth(ctx context.Context, employeeID, month string) (*Payslip, error) {
	var p Payslip
	err := r.db.WithContext(ctx).
		Where("employee_id = ? AND month = ?", employeeID, month).
		First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) FindByEmployee(ctx context.Context, employeeID string) ([]Payslip, error) {
	var rows []Payslip
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("month DESC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindByMonth(ctx context.Context, month string) ([]Payslip, error) {
	var rows []Payslip
	err := r.db.WithContext(ctx).
		Where("month = ?", month).
		Find(&rows).Error
	return rows, err
}
