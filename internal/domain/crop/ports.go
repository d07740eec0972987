package crop

import (
	"context"
	"time"
)

// CropReportRepository defines the read/write interface for the report store.
// The recommendation engine only needs the read side; whatever rows a query
// returns are treated as one consistent snapshot for a single computation
// pass.
type CropReportRepository interface {
	Save(ctx context.Context, report *CropReport) error
	FindAll(ctx context.Context) ([]*CropReport, error)
	FindByCropType(ctx context.Context, cropType CropType) ([]*CropReport, error)

	// FindSince returns reports created at or after the cutoff, newest first.
	FindSince(ctx context.Context, cutoff time.Time) ([]*CropReport, error)

	CountByCropType(ctx context.Context, cropType CropType) (int64, error)
}
