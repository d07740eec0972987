package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/agromap-uz/agromap-go/internal/adapters/metrics"
	"github.com/agromap-uz/agromap-go/internal/application/common"
	"github.com/agromap-uz/agromap-go/internal/domain/crop"
)

// SubmitCropReportCommand records a new farmer planting report.
type SubmitCropReportCommand struct {
	CropType     string
	AreaHectares float64
	Latitude     float64
	Longitude    float64
	PlantingDate *time.Time
}

// SubmitCropReportResult returns the stored report.
type SubmitCropReportResult struct {
	Report *crop.CropReport
}

// SubmitCropReportHandler validates, normalizes and persists crop reports.
type SubmitCropReportHandler struct {
	reports crop.CropReportRepository
}

func NewSubmitCropReportHandler(reports crop.CropReportRepository) *SubmitCropReportHandler {
	return &SubmitCropReportHandler{reports: reports}
}

func (h *SubmitCropReportHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*SubmitCropReportCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type")
	}

	report, err := crop.NewCropReport(
		uuid.NewString(),
		cmd.CropType,
		cmd.AreaHectares,
		cmd.Latitude,
		cmd.Longitude,
		cmd.PlantingDate,
		time.Now().UTC(),
	)
	if err != nil {
		return nil, fmt.Errorf("invalid crop report: %w", err)
	}

	if err := h.reports.Save(ctx, report); err != nil {
		return nil, fmt.Errorf("failed to save crop report: %w", err)
	}

	common.LoggerFromContext(ctx).Log("INFO", "crop report recorded", map[string]interface{}{
		"report_id": report.ID(),
		"crop_type": report.CropType().String(),
		"area_ha":   report.AreaHectares(),
	})
	metrics.RecordReportSubmitted(report.CropType().String(), report.AreaHectares())

	return &SubmitCropReportResult{Report: report}, nil
}
