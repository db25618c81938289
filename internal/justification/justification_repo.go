package justification

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"gorm.io/gorm"
)

//go:generate mockgen -source=justification_repo.go -destination=mock/justification_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, j *Justification) error
	FindByID(ctx context.Context, id string) (*Justification, error)
	FindAll(ctx context.Context, filter JustificationQueryFilter) ([]Justification, error)
	FindByEmployee(ctx context.Context, employeeID string) ([]Justification, error)
	FindApprovedInRange(ctx context.Context, rangeStart, rangeEnd time.Time) ([]Justification, error)
	Update(ctx context.Context, j *Justification) error
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

func (r *repository) Create(ctx context.Context, j *Justification) error {
	return r.db.WithContext(ctx).Create(j).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*Justification, error) {
	var j Justification
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&j).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &j, nil
}

func (r *repository) FindAll(ctx context.Context, filter JustificationQueryFilter) ([]Justification, error) {
	q := r.db.WithContext(ctx).Model(&Justification{})
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.EmployeeID != "" {
		q = q.Where("employee_id = ?", filter.EmployeeID)
	}

	var rows []Justification
	err := q.Order("created_at DESC").Find(&rows).Error
	return rows, err
}

func (r *repository) FindByEmployee(ctx context.Context, employeeID string) ([]Justification, error) {
	var rows []Justification
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("created_at DESC").
		Find(&rows).Error
	return rows, err
}

// FindApprovedInRange returns approved justifications whose covered dates
// intersect [rangeStart, rangeEnd]. Open-ended records match on start date.
func (r *repository) FindApprovedInRange(ctx context.Context, rangeStart, rangeEnd time.Time) ([]Justification, error) {
	var rows []Justification
	err := r.db.WithContext(ctx).
		Where("status = ?", StatusApproved).
		Where("start_date <= ?", rangeEnd).
		Where("COALESCE(end_date, start_date) >= ?", rangeStart).
		Find(&rows).Error
	return rows, err
}

func (r *repository) Update(ctx context.Context, j *Justification) error {
	return r.db.WithContext(ctx).Save(j).Error
}
