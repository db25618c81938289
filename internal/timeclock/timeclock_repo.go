package timeclock

import (
	"context"
	"database/sql"
	"time"

	"gorm.io/gorm"
)

//go:generate mockgen -source=timeclock_repo.go -destination=mock/timeclock_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, p *Punch) error
	FindByEmployeeAndMonth(ctx context.Context, employeeID string, monthStart, monthEnd time.Time) ([]Punch, error)
	FindByMonth(ctx context.Context, monthStart, monthEnd time.Time) ([]Punch, error)
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

func (r *repository) Create(ctx context.Context, p *Punch) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *repository) FindByEmployeeAndMonth(ctx context.Context, employeeID string, monthStart, monthEnd time.Time) ([]Punch, error) {
	var rows []Punch
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Where("punched_at >= ? AND punched_at < ?", monthStart, monthEnd).
		Order("punched_at ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindByMonth(ctx context.Context, monthStart, monthEnd time.Time) ([]Punch, error) {
	var rows []Punch
	err := r.db.WithContext(ctx).
		Where("punched_at >= ? AND punched_at < ?", monthStart, monthEnd).
		Order("punched_at ASC").
		Find(&rows).Error
	return rows, err
}
