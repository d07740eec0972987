package rotation_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agromap-uz/agromap-go/internal/domain/crop"
	"github.com/agromap-uz/agromap-go/internal/domain/rotation"
)

func TestSuggestions_FollowRotationRules(t *testing.T) {
	assert.Equal(t,
		[]crop.CropType{crop.CropTypeCotton, crop.CropTypePotato},
		rotation.Suggestions(crop.CropTypeWheat))
	assert.Equal(t,
		[]crop.CropType{crop.CropTypeWheat},
		rotation.Suggestions(crop.CropTypeCotton))
	assert.Equal(t,
		[]crop.CropType{crop.CropTypeCotton, crop.CropTypeWheat},
		rotation.Suggestions(crop.CropTypePotato))
}

func TestSuggestions_NeverRepeatPreviousCrop(t *testing.T) {
	for _, previous := range []crop.CropType{crop.CropTypeWheat, crop.CropTypeCotton, crop.CropTypePotato} {
		assert.NotContains(t, rotation.Suggestions(previous), previous)
	}
}

func TestSuggestions_NoHistoryReturnsAllCandidates(t *testing.T) {
	suggestions := rotation.Suggestions("")

	assert.Equal(t,
		[]crop.CropType{crop.CropTypeCotton, crop.CropTypePotato, crop.CropTypeWheat},
		suggestions)
}

func TestSuggestions_UnknownCropHasNoRules(t *testing.T) {
	assert.Empty(t, rotation.Suggestions(crop.CropTypeBarley))
}

func TestWindowFor_Calendar(t *testing.T) {
	window, ok := rotation.WindowFor(crop.CropTypeWheat)

	require.True(t, ok)
	assert.Equal(t, time.September, window.StartMonth)
	assert.Equal(t, time.November, window.EndMonth)

	_, ok = rotation.WindowFor(crop.CropTypeBarley)
	assert.False(t, ok)
}

func TestPlantingWindow_Contains(t *testing.T) {
	wheat, _ := rotation.WindowFor(crop.CropTypeWheat)

	assert.True(t, wheat.Contains(time.Date(2025, time.October, 15, 0, 0, 0, 0, time.UTC)))
	assert.False(t, wheat.Contains(time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)))
}

func TestPlantingWindow_ContainsHandlesYearWrap(t *testing.T) {
	window := rotation.PlantingWindow{StartMonth: time.November, EndMonth: time.February}

	assert.True(t, window.Contains(time.Date(2025, time.December, 1, 0, 0, 0, 0, time.UTC)))
	assert.True(t, window.Contains(time.Date(2025, time.January, 20, 0, 0, 0, 0, time.UTC)))
	assert.False(t, window.Contains(time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)))
}
