package persistence_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agromap-uz/agromap-go/internal/adapters/persistence"
	"github.com/agromap-uz/agromap-go/internal/domain/crop"
	"github.com/agromap-uz/agromap-go/internal/domain/pricing"
	"github.com/agromap-uz/agromap-go/test/helpers"
)

func recordPrices(t *testing.T, repo *persistence.GormPriceHistoryRepository, cropType crop.CropType, start time.Time, prices ...float64) {
	t.Helper()
	for i, price := range prices {
		err := repo.RecordPrice(context.Background(), &pricing.PricePoint{
			CropType:   cropType,
			Price:      price,
			RecordedAt: start.Add(time.Duration(i) * 24 * time.Hour),
		})
		require.NoError(t, err)
	}
}

func TestPriceHistoryRepository_SeriesIsOldestFirst(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormPriceHistoryRepository(db)
	start := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	recordPrices(t, repo, crop.CropTypeWheat, start, 2600, 2650, 2700, 2720)

	// Act
	series, err := repo.PriceSeries(context.Background(), crop.CropTypeWheat, 0)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, []float64{2600, 2650, 2700, 2720}, series)
}

func TestPriceHistoryRepository_SeriesLimitKeepsMostRecent(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormPriceHistoryRepository(db)
	start := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	recordPrices(t, repo, crop.CropTypeCotton, start, 8000, 8200, 8400, 8600, 8900)

	// Act
	series, err := repo.PriceSeries(context.Background(), crop.CropTypeCotton, 3)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, []float64{8400, 8600, 8900}, series)
}

func TestPriceHistoryRepository_LatestPrice(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormPriceHistoryRepository(db)
	start := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	recordPrices(t, repo, crop.CropTypePotato, start, 3200, 3300, 3400)

	// Act
	latest, err := repo.LatestPrice(context.Background(), crop.CropTypePotato)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 3400.0, latest.Price)
	assert.Equal(t, crop.CropTypePotato, latest.CropType)
}

func TestPriceHistoryRepository_LatestPriceUnavailable(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormPriceHistoryRepository(db)

	// Act
	_, err := repo.LatestPrice(context.Background(), crop.CropTypeRice)

	// Assert
	assert.ErrorIs(t, err, pricing.ErrPriceUnavailable)
}

func TestPriceHistoryRepository_RejectsNonPositivePrice(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormPriceHistoryRepository(db)

	// Act
	err := repo.RecordPrice(context.Background(), &pricing.PricePoint{
		CropType:   crop.CropTypeWheat,
		Price:      0,
		RecordedAt: time.Now().UTC(),
	})

	// Assert
	assert.Error(t, err)
}

func TestHistoryPriceReference_DerivesTrendFromSeries(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormPriceHistoryRepository(db)
	start := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	// Strong rise at the tail: short MA well above the long MA.
	recordPrices(t, repo, crop.CropTypeCotton, start, 8000, 8000, 8000, 8000, 9500, 9800, 10000)

	reference := persistence.NewHistoryPriceReference(repo, nil)

	// Act
	info, err := reference.CurrentPrice(context.Background(), crop.CropTypeCotton)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 10000.0, info.Price)
	assert.Equal(t, pricing.PriceTrendIncreasing, info.Trend)
}

func TestHistoryPriceReference_FallsBackWithoutHistory(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormPriceHistoryRepository(db)
	fallback := staticReference{crop.CropTypeWheat: {Price: 2720, Trend: pricing.PriceTrendStable}}
	reference := persistence.NewHistoryPriceReference(repo, fallback)

	// Act
	info, err := reference.CurrentPrice(context.Background(), crop.CropTypeWheat)
	_, missErr := reference.CurrentPrice(context.Background(), crop.CropTypeCorn)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 2720.0, info.Price)
	assert.ErrorIs(t, missErr, pricing.ErrPriceUnavailable)
}

func TestHistoryPriceReference_NoFallbackMeansUnavailable(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormPriceHistoryRepository(db)
	reference := persistence.NewHistoryPriceReference(repo, nil)

	// Act
	_, err := reference.CurrentPrice(context.Background(), crop.CropTypeBarley)

	// Assert
	assert.ErrorIs(t, err, pricing.ErrPriceUnavailable)
}

// staticReference is a minimal in-memory PriceReference for fallback tests.
type staticReference map[crop.CropType]pricing.PriceInfo

func (s staticReference) CurrentPrice(_ context.Context, cropType crop.CropType) (pricing.PriceInfo, error) {
	info, ok := s[cropType]
	if !ok {
		return pricing.PriceInfo{}, pricing.ErrPriceUnavailable
	}
	return info, nil
}
