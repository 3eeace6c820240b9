package reportrepo

import (
	"context"
	"fmt"

	"depot/internal/core/domain/model/kernel"
	"depot/internal/core/domain/model/report"
	"depot/internal/pkg/errs"

	"gorm.io/gorm"
)

// Migrate creates or updates the report_entries table.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&ReportEntryDTO{})
}

// GormReportRepository implements ports.ReportWriter on a report_entries table.
type GormReportRepository struct {
	db *gorm.DB
}

// NewGormReportRepository creates a new GormReportRepository.
func NewGormReportRepository(db *gorm.DB) *GormReportRepository {
	return &GormReportRepository{db: db}
}

// Append inserts entry under a fresh identifier.
func (r *GormReportRepository) Append(ctx context.Context, entry report.Entry) error {
	dto := fromDomain(kernel.NewUUID(), entry)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return fmt.Errorf("mirror report entry: %w", err)
	}
	return nil
}

// Recent returns up to limit entries, oldest first, ending with the latest one.
func (r *GormReportRepository) Recent(ctx context.Context, limit int) ([]report.ArchivedEntry, error) {
	if limit <= 0 {
		return nil, errs.NewValueIsOutOfRangeError("limit", limit, 1, "unbounded")
	}

	var dtos []ReportEntryDTO
	err := r.db.WithContext(ctx).
		Order("written_at DESC").
		Order("id").
		Limit(limit).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	entries := make([]report.ArchivedEntry, len(dtos))
	for i, dto := range dtos {
		stored, convErr := toDomain(dto)
		if convErr != nil {
			return nil, convErr
		}
		entries[len(dtos)-1-i] = stored
	}
	return entries, nil
}

// Count returns the number of mirrored entries.
func (r *GormReportRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&ReportEntryDTO{}).Count(&n).Error
	return n, err
}
