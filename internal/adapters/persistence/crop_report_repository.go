package persistence

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/agromap-uz/agromap-go/internal/domain/crop"
)

// GormCropReportRepository implements CropReportRepository using GORM
type GormCropReportRepository struct {
	db *gorm.DB
}

// NewGormCropReportRepository creates a new GORM crop report repository
func NewGormCropReportRepository(db *gorm.DB) *GormCropReportRepository {
	return &GormCropReportRepository{db: db}
}

// Save persists a crop report. Reports are immutable, so saving the same ID
// twice overwrites the row rather than duplicating it.
func (r *GormCropReportRepository) Save(ctx context.Context, report *crop.CropReport) error {
	model := &CropReportModel{
		ID:           report.ID(),
		CropType:     report.CropType().String(),
		AreaHectares: report.AreaHectares(),
		Latitude:     report.Latitude(),
		Longitude:    report.Longitude(),
		PlantingDate: report.PlantingDate(),
		CreatedAt:    report.CreatedAt(),
	}

	result := r.db.WithContext(ctx).Save(model)
	if result.Error != nil {
		return fmt.Errorf("failed to save crop report: %w", result.Error)
	}

	return nil
}

// FindAll returns every stored report, oldest first. The result of one call
// is the snapshot a computation pass runs over.
func (r *GormCropReportRepository) FindAll(ctx context.Context) ([]*crop.CropReport, error) {
	var models []CropReportModel
	result := r.db.WithContext(ctx).Order("created_at ASC").Find(&models)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to list crop reports: %w", result.Error)
	}

	return r.modelsToReports(models)
}

// FindByCropType returns reports for one crop type, oldest first.
func (r *GormCropReportRepository) FindByCropType(ctx context.Context, cropType crop.CropType) ([]*crop.CropReport, error) {
	var models []CropReportModel
	result := r.db.WithContext(ctx).
		Where("crop_type = ?", cropType.String()).
		Order("created_at ASC").
		Find(&models)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find crop reports by type: %w", result.Error)
	}

	return r.modelsToReports(models)
}

// FindSince returns reports created at or after the cutoff, newest first.
func (r *GormCropReportRepository) FindSince(ctx context.Context, cutoff time.Time) ([]*crop.CropReport, error) {
	var models []CropReportModel
	result := r.db.WithContext(ctx).
		Where("created_at >= ?", cutoff).
		Order("created_at DESC").
		Find(&models)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find recent crop reports: %w", result.Error)
	}

	return r.modelsToReports(models)
}

// CountByCropType returns the number of reports for a crop type.
func (r *GormCropReportRepository) CountByCropType(ctx context.Context, cropType crop.CropType) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&CropReportModel{}).
		Where("crop_type = ?", cropType.String()).
		Count(&count)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to count crop reports: %w", result.Error)
	}

	return count, nil
}

func (r *GormCropReportRepository) modelsToReports(models []CropReportModel) ([]*crop.CropReport, error) {
	reports := make([]*crop.CropReport, 0, len(models))
	for _, model := range models {
		report, err := r.modelToReport(&model)
		if err != nil {
			return nil, fmt.Errorf("failed to convert model to report: %w", err)
		}
		reports = append(reports, report)
	}

	return reports, nil
}

func (r *GormCropReportRepository) modelToReport(model *CropReportModel) (*crop.CropReport, error) {
	return crop.NewCropReport(
		model.ID,
		model.CropType,
		model.AreaHectares,
		model.Latitude,
		model.Longitude,
		model.PlantingDate,
		model.CreatedAt,
	)
}
