package persistence_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agromap-uz/agromap-go/internal/adapters/persistence"
	"github.com/agromap-uz/agromap-go/internal/domain/crop"
	"github.com/agromap-uz/agromap-go/test/helpers"
)

func mustReport(t *testing.T, id, cropType string, area float64, createdAt time.Time) *crop.CropReport {
	t.Helper()
	report, err := crop.NewCropReport(id, cropType, area, 41.31, 69.28, nil, createdAt)
	require.NoError(t, err)
	return report
}

func TestCropReportRepository_SaveAndFindAll(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormCropReportRepository(db)
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Save(ctx, mustReport(t, "r-2", "cotton", 40, base.Add(time.Hour))))
	require.NoError(t, repo.Save(ctx, mustReport(t, "r-1", "wheat", 12.5, base)))

	// Act
	found, err := repo.FindAll(ctx)

	// Assert
	require.NoError(t, err)
	require.Len(t, found, 2)
	// Oldest first
	assert.Equal(t, "r-1", found[0].ID())
	assert.Equal(t, crop.CropTypeWheat, found[0].CropType())
	assert.Equal(t, 12.5, found[0].AreaHectares())
	assert.Equal(t, "r-2", found[1].ID())
}

func TestCropReportRepository_SaveIsIdempotentPerID(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormCropReportRepository(db)
	ctx := context.Background()

	createdAt := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Save(ctx, mustReport(t, "r-1", "wheat", 10, createdAt)))
	require.NoError(t, repo.Save(ctx, mustReport(t, "r-1", "wheat", 10, createdAt)))

	// Act
	found, err := repo.FindAll(ctx)

	// Assert
	require.NoError(t, err)
	assert.Len(t, found, 1)
}

func TestCropReportRepository_FindByCropType(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormCropReportRepository(db)
	ctx := context.Background()

	now := time.Date(2026, 4, 10, 8, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Save(ctx, mustReport(t, "w-1", "wheat", 10, now)))
	require.NoError(t, repo.Save(ctx, mustReport(t, "c-1", "cotton", 25, now)))
	require.NoError(t, repo.Save(ctx, mustReport(t, "w-2", "Wheat", 5, now.Add(time.Minute))))

	// Act
	found, err := repo.FindByCropType(ctx, crop.CropTypeWheat)

	// Assert
	require.NoError(t, err)
	require.Len(t, found, 2)
	for _, report := range found {
		assert.Equal(t, crop.CropTypeWheat, report.CropType())
	}
}

func TestCropReportRepository_FindSince(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormCropReportRepository(db)
	ctx := context.Background()

	cutoff := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Save(ctx, mustReport(t, "old", "wheat", 10, cutoff.Add(-time.Hour))))
	require.NoError(t, repo.Save(ctx, mustReport(t, "at-cutoff", "wheat", 10, cutoff)))
	require.NoError(t, repo.Save(ctx, mustReport(t, "new", "cotton", 20, cutoff.Add(2*time.Hour))))

	// Act
	found, err := repo.FindSince(ctx, cutoff)

	// Assert
	require.NoError(t, err)
	require.Len(t, found, 2)
	// Newest first, cutoff inclusive
	assert.Equal(t, "new", found[0].ID())
	assert.Equal(t, "at-cutoff", found[1].ID())
}

func TestCropReportRepository_CountByCropType(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormCropReportRepository(db)
	ctx := context.Background()

	now := time.Date(2026, 4, 10, 8, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Save(ctx, mustReport(t, "p-1", "potato", 3, now)))
	require.NoError(t, repo.Save(ctx, mustReport(t, "p-2", "potato", 4, now)))

	// Act
	count, err := repo.CountByCropType(ctx, crop.CropTypePotato)
	none, err2 := repo.CountByCropType(ctx, crop.CropTypeRice)

	// Assert
	require.NoError(t, err)
	require.NoError(t, err2)
	assert.Equal(t, int64(2), count)
	assert.Equal(t, int64(0), none)
}

func TestCropReportRepository_PlantingDateRoundTrip(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormCropReportRepository(db)
	ctx := context.Background()

	planted := time.Date(2026, 4, 10, 0, 0, 0, 0, time.UTC)
	report, err := crop.NewCropReport("d-1", "cotton", 18, 40.1, 67.8, &planted,
		time.Date(2026, 4, 11, 9, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, report))

	// Act
	found, err := repo.FindAll(ctx)

	// Assert
	require.NoError(t, err)
	require.Len(t, found, 1)
	require.NotNil(t, found[0].PlantingDate())
	assert.True(t, found[0].PlantingDate().Equal(planted))
}
