package servicereport

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

//go:generate mockgen -source=servicereport_repo.go -destination=mock/servicereport_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, r *ServiceReport) error
	FindByID(ctx context.Context, id string) (*ServiceReport, error)
	FindByEmployee(ctx context.Context, employeeID string) ([]ServiceReport, error)
	FindAll(ctx context.Context) ([]ServiceReport, error)
	Delete(ctx context.Context, id string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, sr *ServiceReport) error {
	return r.db.WithContext(ctx).Create(sr).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*ServiceReport, error) {
	var sr ServiceReport
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&sr).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &sr, nil
}

func (r *repository) FindByEmployee(ctx context.Context, employeeID string) ([]ServiceReport, error) {
	var rows []ServiceReport
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("timestamp DESC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindAll(ctx context.Context) ([]ServiceReport, error) {
	var rows []ServiceReport
	err := r.db.WithContext(ctx).Order("timestamp DESC").Find(&rows).Error
	return rows, err
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&ServiceReport{}).Error
}
