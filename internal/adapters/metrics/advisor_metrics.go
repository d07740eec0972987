package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// AdvisorMetrics is the prometheus-backed AdvisorMetricsRecorder.
type AdvisorMetrics struct {
	reportsSubmitted  *prometheus.CounterVec
	reportedArea      *prometheus.CounterVec
	analysesComputed  *prometheus.CounterVec
	configurationGaps *prometheus.CounterVec
	analysisDuration  prometheus.Histogram
	rankingDuration   prometheus.Histogram
	rankedCrops       prometheus.Gauge
}

// NewAdvisorMetrics creates and registers the advisor collectors on the
// given registry.
func NewAdvisorMetrics(registry *prometheus.Registry) *AdvisorMetrics {
	m := &AdvisorMetrics{
		reportsSubmitted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "reports_submitted_total",
			Help:      "Total crop reports accepted, by crop type",
		}, []string{"crop_type"}),
		reportedArea: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "reported_area_hectares_total",
			Help:      "Total planted area reported, by crop type",
		}, []string{"crop_type"}),
		analysesComputed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "analyses_computed_total",
			Help:      "Market analyses computed, by crop type and recommendation",
		}, []string{"crop_type", "recommendation"}),
		configurationGaps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "configuration_gaps_total",
			Help:      "Per-crop configuration gaps surfaced to callers",
		}, []string{"crop_type", "what"}),
		analysisDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "analysis_duration_seconds",
			Help:      "Duration of single-crop market analyses",
			Buckets:   prometheus.DefBuckets,
		}),
		rankingDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "ranking_duration_seconds",
			Help:      "Duration of full opportunity ranking passes",
			Buckets:   prometheus.DefBuckets,
		}),
		rankedCrops: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "ranked_crops",
			Help:      "Number of crops in the most recent opportunity ranking",
		}),
	}

	registry.MustRegister(
		m.reportsSubmitted,
		m.reportedArea,
		m.analysesComputed,
		m.configurationGaps,
		m.analysisDuration,
		m.rankingDuration,
		m.rankedCrops,
	)

	return m
}

func (m *AdvisorMetrics) RecordReportSubmitted(cropType string, areaHectares float64) {
	m.reportsSubmitted.WithLabelValues(cropType).Inc()
	m.reportedArea.WithLabelValues(cropType).Add(areaHectares)
}

func (m *AdvisorMetrics) RecordAnalysisComputed(cropType string, recommendation string, durationSeconds float64) {
	m.analysesComputed.WithLabelValues(cropType, recommendation).Inc()
	m.analysisDuration.Observe(durationSeconds)
}

func (m *AdvisorMetrics) RecordConfigurationGap(cropType string, what string) {
	m.configurationGaps.WithLabelValues(cropType, what).Inc()
}

func (m *AdvisorMetrics) RecordRankingComputed(cropCount int, durationSeconds float64) {
	m.rankedCrops.Set(float64(cropCount))
	m.rankingDuration.Observe(durationSeconds)
}
