package supply_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agromap-uz/agromap-go/internal/domain/crop"
	"github.com/agromap-uz/agromap-go/internal/domain/supply"
)

func newReport(t *testing.T, cropType string, area float64) *crop.CropReport {
	t.Helper()
	report, err := crop.NewCropReport(
		fmt.Sprintf("report-%s-%v", cropType, area),
		cropType,
		area,
		41.3775,
		64.5853,
		nil,
		time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	return report
}

func TestComputeSupplyAggregates_GroupsByCropType(t *testing.T) {
	// Arrange
	reports := []*crop.CropReport{
		newReport(t, "wheat", 10),
		newReport(t, "wheat", 5),
		newReport(t, "cotton", 100),
	}

	// Act
	aggregates := supply.ComputeSupplyAggregates(reports)

	// Assert
	require.Len(t, aggregates, 2)

	wheat := aggregates[crop.CropTypeWheat]
	assert.Equal(t, 15.0, wheat.TotalPlantedArea)
	assert.Equal(t, 2, wheat.NumberOfFarms)
	assert.Equal(t, 7.5, wheat.AverageFieldSize)

	cotton := aggregates[crop.CropTypeCotton]
	assert.Equal(t, 100.0, cotton.TotalPlantedArea)
	assert.Equal(t, 1, cotton.NumberOfFarms)
	assert.Equal(t, 100.0, cotton.AverageFieldSize)
}

func TestComputeSupplyAggregates_ConservesTotalArea(t *testing.T) {
	reports := []*crop.CropReport{
		newReport(t, "wheat", 12.5),
		newReport(t, "cotton", 3.25),
		newReport(t, "potato", 40),
		newReport(t, "wheat", 0.75),
		newReport(t, "dragonfruit", 8), // lands in the "other" bucket
	}

	inputTotal := 0.0
	for _, r := range reports {
		inputTotal += r.AreaHectares()
	}

	aggregates := supply.ComputeSupplyAggregates(reports)

	aggregateTotal := 0.0
	for _, agg := range aggregates {
		aggregateTotal += agg.TotalPlantedArea
	}
	assert.InDelta(t, inputTotal, aggregateTotal, 1e-9)
}

func TestComputeSupplyAggregates_EveryBucketHasAtLeastOneFarm(t *testing.T) {
	reports := []*crop.CropReport{
		newReport(t, "wheat", 10),
		newReport(t, "rice", 2),
		newReport(t, "rice", 6),
	}

	aggregates := supply.ComputeSupplyAggregates(reports)

	for cropType, agg := range aggregates {
		assert.GreaterOrEqual(t, agg.NumberOfFarms, 1, "crop %s", cropType)
		assert.Equal(t, agg.TotalPlantedArea/float64(agg.NumberOfFarms), agg.AverageFieldSize, "crop %s", cropType)
	}
}

func TestComputeSupplyAggregates_EmptyInput(t *testing.T) {
	aggregates := supply.ComputeSupplyAggregates(nil)

	assert.Empty(t, aggregates)
}

func TestComputeSupplyAggregates_UnknownCropsShareOtherBucket(t *testing.T) {
	reports := []*crop.CropReport{
		newReport(t, "dragonfruit", 4),
		newReport(t, "saffron", 6),
	}

	aggregates := supply.ComputeSupplyAggregates(reports)

	require.Len(t, aggregates, 1)
	other := aggregates[crop.CropTypeOther]
	assert.Equal(t, 10.0, other.TotalPlantedArea)
	assert.Equal(t, 2, other.NumberOfFarms)
}

func TestComputeSupplyAggregates_OutlierAreaIsNotClipped(t *testing.T) {
	// Raw sums are deliberate: smoothing is a product decision, not done here.
	reports := []*crop.CropReport{
		newReport(t, "wheat", 0.5),
		newReport(t, "wheat", 250000),
	}

	aggregates := supply.ComputeSupplyAggregates(reports)

	wheat := aggregates[crop.CropTypeWheat]
	assert.Equal(t, 250000.5, wheat.TotalPlantedArea)
}
