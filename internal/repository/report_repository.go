package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/smotired/bulletinator/internal/domain"
)

// ReportRepository defines the interface for report data access
type ReportRepository interface {
	Create(ctx context.Context, report *domain.Report) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Report, error)
	FindAll(ctx context.Context) ([]*domain.Report, error)
	FindBySubmitter(ctx context.Context, accountID uuid.UUID) ([]*domain.Report, error)
	FindByAssignee(ctx context.Context, moderatorID uuid.UUID) ([]*domain.Report, error)
	Update(ctx context.Context, report *domain.Report) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteResolvedBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

// reportRepositoryImpl is the GORM implementation of ReportRepository
type reportRepositoryImpl struct {
	db *gorm.DB
}

// NewReportRepository creates a new instance of ReportRepository
func NewReportRepository(db *gorm.DB) ReportRepository {
	return &reportRepositoryImpl{db: db}
}

// Create creates a new report
func (r *reportRepositoryImpl) Create(ctx context.Context, report *domain.Report) error {
	if err := r.db.WithContext(ctx).Create(report).Error; err != nil {
		return err
	}
	return nil
}

// FindByID finds a report by its ID
func (r *reportRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.Report, error) {
	var report domain.Report
	if err := r.db.WithContext(ctx).First(&report, id).Error; err != nil {
		return nil, err
	}
	return &report, nil
}

// FindAll returns every report, oldest first so the moderation queue reads
// top-down
func (r *reportRepositoryImpl) FindAll(ctx context.Context) ([]*domain.Report, error) {
	var reports []*domain.Report
	if err := r.db.WithContext(ctx).Order("created_at ASC").Find(&reports).Error; err != nil {
		return nil, err
	}
	return reports, nil
}

// FindBySubmitter returns the reports submitted by an account
func (r *reportRepositoryImpl) FindBySubmitter(ctx context.Context, accountID uuid.UUID) ([]*domain.Report, error) {
	var reports []*domain.Report
	if err := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("created_at ASC").
		Find(&reports).Error; err != nil {
		return nil, err
	}
	return reports, nil
}

// FindByAssignee returns the reports assigned to a moderator
func (r *reportRepositoryImpl) FindByAssignee(ctx context.Context, moderatorID uuid.UUID) ([]*domain.Report, error) {
	var reports []*domain.Report
	if err := r.db.WithContext(ctx).
		Where("moderator_id = ?", moderatorID).
		Order("created_at ASC").
		Find(&reports).Error; err != nil {
		return nil, err
	}
	return reports, nil
}

// Update saves changed report fields
func (r *reportRepositoryImpl) Update(ctx context.Context, report *domain.Report) error {
	if err := r.db.WithContext(ctx).Save(report).Error; err != nil {
		return err
	}
	return nil
}

// Delete removes a report
func (r *reportRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.Report{}, id).Error
}

// DeleteResolvedBefore removes reports resolved before the cutoff and
// returns how many were removed. Used by the retention job.
func (r *reportRepositoryImpl) DeleteResolvedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("status = ? AND resolved_at < ?", domain.ReportStatusResolved, cutoff).
		Delete(&domain.Report{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
