package queries

import (
	"context"
	"fmt"

	"github.com/agromap-uz/agromap-go/internal/application/common"
	"github.com/agromap-uz/agromap-go/internal/domain/analytics"
	"github.com/agromap-uz/agromap-go/internal/domain/crop"
	"github.com/agromap-uz/agromap-go/internal/domain/pricing"
	"github.com/agromap-uz/agromap-go/internal/domain/supply"
)

// DashboardQuery assembles the descriptive analytics and market indicators
// for the advisor dashboard in one pass over the report snapshot.
type DashboardQuery struct{}

// DashboardResult bundles the snapshot analytics with the market report.
type DashboardResult struct {
	Summary         analytics.Summary
	DiversityIndex  float64
	Concentration   float64
	EfficiencyScore float64
	Market          supply.MarketReport
}

// DashboardHandler reuses the market analysis pipeline and layers the
// descriptive statistics on top.
type DashboardHandler struct {
	reports crop.CropReportRepository
	analyze *AnalyzeMarketsHandler
}

func NewDashboardHandler(
	reports crop.CropReportRepository,
	prices pricing.PriceReference,
	config supply.ScoringConfig,
) *DashboardHandler {
	return &DashboardHandler{
		reports: reports,
		analyze: NewAnalyzeMarketsHandler(reports, prices, config),
	}
}

func (h *DashboardHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	if _, ok := request.(*DashboardQuery); !ok {
		return nil, fmt.Errorf("invalid request type")
	}

	snapshot, err := h.reports.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load crop reports: %w", err)
	}

	response, err := h.analyze.Handle(ctx, &AnalyzeMarketsQuery{})
	if err != nil {
		return nil, err
	}
	market, ok := response.(*supply.MarketReport)
	if !ok {
		return nil, fmt.Errorf("unexpected analysis response type %T", response)
	}

	return &DashboardResult{
		Summary:         analytics.Summarize(snapshot),
		DiversityIndex:  analytics.ShannonDiversityIndex(snapshot),
		Concentration:   analytics.HerfindahlIndex(snapshot),
		EfficiencyScore: analytics.EfficiencyScore(snapshot),
		Market:          *market,
	}, nil
}
