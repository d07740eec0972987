package commands_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agromap-uz/agromap-go/internal/application/advisor/commands"
	"github.com/agromap-uz/agromap-go/internal/domain/crop"
)

// memoryReports is a minimal in-memory CropReportRepository.
type memoryReports struct {
	saved []*crop.CropReport
}

func (m *memoryReports) Save(_ context.Context, report *crop.CropReport) error {
	m.saved = append(m.saved, report)
	return nil
}

func (m *memoryReports) FindAll(context.Context) ([]*crop.CropReport, error) {
	return m.saved, nil
}

func (m *memoryReports) FindByCropType(_ context.Context, cropType crop.CropType) ([]*crop.CropReport, error) {
	var out []*crop.CropReport
	for _, r := range m.saved {
		if r.CropType() == cropType {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *memoryReports) FindSince(_ context.Context, cutoff time.Time) ([]*crop.CropReport, error) {
	var out []*crop.CropReport
	for _, r := range m.saved {
		if !r.CreatedAt().Before(cutoff) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *memoryReports) CountByCropType(_ context.Context, cropType crop.CropType) (int64, error) {
	found, _ := m.FindByCropType(context.Background(), cropType)
	return int64(len(found)), nil
}

func TestSubmitCropReportHandler_PersistsValidReport(t *testing.T) {
	// Arrange
	repo := &memoryReports{}
	handler := commands.NewSubmitCropReportHandler(repo)
	planted := time.Date(2026, 4, 10, 0, 0, 0, 0, time.UTC)

	// Act
	response, err := handler.Handle(context.Background(), &commands.SubmitCropReportCommand{
		CropType:     "  Wheat ",
		AreaHectares: 12.5,
		Latitude:     41.31,
		Longitude:    69.28,
		PlantingDate: &planted,
	})

	// Assert
	require.NoError(t, err)
	result := response.(*commands.SubmitCropReportResult)
	assert.NotEmpty(t, result.Report.ID())
	assert.Equal(t, crop.CropTypeWheat, result.Report.CropType())
	assert.Equal(t, 12.5, result.Report.AreaHectares())
	require.Len(t, repo.saved, 1)
	assert.Equal(t, result.Report.ID(), repo.saved[0].ID())
}

func TestSubmitCropReportHandler_UnknownCropFallsToOther(t *testing.T) {
	// Arrange
	repo := &memoryReports{}
	handler := commands.NewSubmitCropReportHandler(repo)

	// Act
	response, err := handler.Handle(context.Background(), &commands.SubmitCropReportCommand{
		CropType:     "dragonfruit",
		AreaHectares: 1.5,
		Latitude:     40.0,
		Longitude:    68.0,
	})

	// Assert
	require.NoError(t, err)
	result := response.(*commands.SubmitCropReportResult)
	assert.Equal(t, crop.CropTypeOther, result.Report.CropType())
}

func TestSubmitCropReportHandler_RejectsInvalidInput(t *testing.T) {
	tests := []struct {
		name string
		cmd  commands.SubmitCropReportCommand
	}{
		{"zero area", commands.SubmitCropReportCommand{CropType: "wheat", AreaHectares: 0, Latitude: 41, Longitude: 69}},
		{"negative area", commands.SubmitCropReportCommand{CropType: "wheat", AreaHectares: -3, Latitude: 41, Longitude: 69}},
		{"latitude out of range", commands.SubmitCropReportCommand{CropType: "wheat", AreaHectares: 5, Latitude: 91, Longitude: 69}},
		{"longitude out of range", commands.SubmitCropReportCommand{CropType: "wheat", AreaHectares: 5, Latitude: 41, Longitude: -181}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			repo := &memoryReports{}
			handler := commands.NewSubmitCropReportHandler(repo)

			// Act
			cmd := tt.cmd
			_, err := handler.Handle(context.Background(), &cmd)

			// Assert
			var validationErr *crop.ValidationError
			require.Error(t, err)
			assert.ErrorAs(t, err, &validationErr)
			assert.Empty(t, repo.saved)
		})
	}
}

func TestSubmitCropReportHandler_RejectsWrongRequestType(t *testing.T) {
	// Arrange
	handler := commands.NewSubmitCropReportHandler(&memoryReports{})

	// Act
	_, err := handler.Handle(context.Background(), nil)

	// Assert
	assert.Error(t, err)
}
