package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	// Namespace for all metrics
	namespace = "agromap"
	// Subsystem for advisor metrics
	subsystem = "advisor"
)

var (
	// Registry is the global Prometheus registry for all metrics
	Registry *prometheus.Registry

	// globalRecorder is the singleton advisor metrics recorder
	// Set by SetGlobalRecorder() when metrics are enabled
	globalRecorder AdvisorMetricsRecorder
)

// AdvisorMetricsRecorder defines the interface for recording advisor events.
// Application code records through this interface so it never depends on
// prometheus directly.
type AdvisorMetricsRecorder interface {
	RecordReportSubmitted(cropType string, areaHectares float64)
	RecordAnalysisComputed(cropType string, recommendation string, durationSeconds float64)
	RecordConfigurationGap(cropType string, what string)
	RecordRankingComputed(cropCount int, durationSeconds float64)
}

// InitRegistry initializes the Prometheus registry.
// Should be called once at application startup if metrics are enabled.
func InitRegistry() {
	Registry = prometheus.NewRegistry()
}

// IsEnabled returns true if metrics collection is enabled.
func IsEnabled() bool {
	return Registry != nil
}

// SetGlobalRecorder sets the global metrics recorder.
func SetGlobalRecorder(recorder AdvisorMetricsRecorder) {
	globalRecorder = recorder
}

// RecordReportSubmitted records a crop report submission globally.
func RecordReportSubmitted(cropType string, areaHectares float64) {
	if globalRecorder != nil {
		globalRecorder.RecordReportSubmitted(cropType, areaHectares)
	}
}

// RecordAnalysisComputed records a completed per-crop market analysis.
func RecordAnalysisComputed(cropType string, recommendation string, durationSeconds float64) {
	if globalRecorder != nil {
		globalRecorder.RecordAnalysisComputed(cropType, recommendation, durationSeconds)
	}
}

// RecordConfigurationGap records a per-crop configuration gap surfaced to a
// caller.
func RecordConfigurationGap(cropType string, what string) {
	if globalRecorder != nil {
		globalRecorder.RecordConfigurationGap(cropType, what)
	}
}

// RecordRankingComputed records a completed opportunity ranking pass.
func RecordRankingComputed(cropCount int, durationSeconds float64) {
	if globalRecorder != nil {
		globalRecorder.RecordRankingComputed(cropCount, durationSeconds)
	}
}
