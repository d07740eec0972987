package persistence

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/agromap-uz/agromap-go/internal/domain/crop"
	"github.com/agromap-uz/agromap-go/internal/domain/pricing"
)

// GormPriceHistoryRepository implements PriceHistoryRepository using GORM
type GormPriceHistoryRepository struct {
	db *gorm.DB
}

// NewGormPriceHistoryRepository creates a new GORM price history repository
func NewGormPriceHistoryRepository(db *gorm.DB) *GormPriceHistoryRepository {
	return &GormPriceHistoryRepository{db: db}
}

// RecordPrice persists a new observed price point
func (r *GormPriceHistoryRepository) RecordPrice(ctx context.Context, point *pricing.PricePoint) error {
	if point.Price <= 0 {
		return fmt.Errorf("price must be positive, got %v", point.Price)
	}

	model := &PricePointModel{
		CropType:   point.CropType.String(),
		Price:      point.Price,
		RecordedAt: point.RecordedAt,
	}

	result := r.db.WithContext(ctx).Create(model)
	if result.Error != nil {
		return fmt.Errorf("failed to record price point: %w", result.Error)
	}

	return nil
}

// PriceSeries returns up to limit prices for a crop ordered oldest first.
// The limit selects the most recent observations before reordering.
func (r *GormPriceHistoryRepository) PriceSeries(ctx context.Context, cropType crop.CropType, limit int) ([]float64, error) {
	var models []PricePointModel
	query := r.db.WithContext(ctx).
		Where("crop_type = ?", cropType.String()).
		Order("recorded_at DESC")

	if limit > 0 {
		query = query.Limit(limit)
	}

	result := query.Find(&models)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to load price series: %w", result.Error)
	}

	// Newest-first rows reversed into the oldest-first series trend
	// derivation expects.
	series := make([]float64, len(models))
	for i, model := range models {
		series[len(models)-1-i] = model.Price
	}

	return series, nil
}

// LatestPrice returns the most recently recorded price point for a crop.
func (r *GormPriceHistoryRepository) LatestPrice(ctx context.Context, cropType crop.CropType) (*pricing.PricePoint, error) {
	var model PricePointModel
	result := r.db.WithContext(ctx).
		Where("crop_type = ?", cropType.String()).
		Order("recorded_at DESC").
		First(&model)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, pricing.ErrPriceUnavailable
		}
		return nil, fmt.Errorf("failed to load latest price: %w", result.Error)
	}

	return &pricing.PricePoint{
		CropType:   crop.ParseCropType(model.CropType),
		Price:      model.Price,
		RecordedAt: model.RecordedAt,
	}, nil
}
