package analytics_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agromap-uz/agromap-go/internal/domain/analytics"
	"github.com/agromap-uz/agromap-go/internal/domain/crop"
)

func reportsWithAreas(t *testing.T, areas ...float64) []*crop.CropReport {
	t.Helper()
	reports := make([]*crop.CropReport, len(areas))
	for i, area := range areas {
		report, err := crop.NewCropReport(
			fmt.Sprintf("r-%d", i), "wheat", area, 41.0, 69.0, nil, time.Now().UTC())
		require.NoError(t, err)
		reports[i] = report
	}
	return reports
}

func TestCategorizeFieldSize(t *testing.T) {
	tests := []struct {
		area     float64
		expected analytics.FieldSizeCategory
	}{
		{0.5, analytics.FieldSizeSmall},
		{0.99, analytics.FieldSizeSmall},
		{1.0, analytics.FieldSizeMedium},
		{4.99, analytics.FieldSizeMedium},
		{5.0, analytics.FieldSizeLarge},
		{19.99, analytics.FieldSizeLarge},
		{20.0, analytics.FieldSizeVeryLarge},
		{500, analytics.FieldSizeVeryLarge},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, analytics.CategorizeFieldSize(tt.area), "area %v", tt.area)
	}
}

func TestEfficiencyScore_AllLargeFieldsScoreBest(t *testing.T) {
	// Arrange
	reports := reportsWithAreas(t, 10, 15, 8)

	// Act
	score := analytics.EfficiencyScore(reports)

	// Assert
	assert.InDelta(t, 100.0, score, 1e-9)
}

func TestEfficiencyScore_MixedSizes(t *testing.T) {
	// Arrange: one of each category -> (0.3 + 0.7 + 1.0 + 0.8) / 4 * 100.
	reports := reportsWithAreas(t, 0.5, 2, 10, 50)

	// Act
	score := analytics.EfficiencyScore(reports)

	// Assert
	assert.InDelta(t, 70.0, score, 1e-9)
}

func TestEfficiencyScore_EmptySnapshot(t *testing.T) {
	assert.Zero(t, analytics.EfficiencyScore(nil))
}
