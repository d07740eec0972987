package cli

import (
	"fmt"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/agromap-uz/agromap-go/internal/adapters/metrics"
	"github.com/agromap-uz/agromap-go/internal/infrastructure/config"
)

// startMetrics installs the global recorder and exposes the prometheus
// endpoint when metrics are enabled. It runs as a PersistentPreRunE after
// flag parsing, so --config drives metrics enablement like everything else
// and a malformed config file fails the command instead of being swallowed.
func startMetrics(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if !cfg.Metrics.Enabled {
		return nil
	}

	metrics.InitRegistry()
	metrics.SetGlobalRecorder(metrics.NewAdvisorMetrics(metrics.Registry))

	mux := http.NewServeMux()
	mux.Handle(cfg.Metrics.Path, promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{}))
	addr := fmt.Sprintf("%s:%d", cfg.Metrics.Host, cfg.Metrics.Port)
	go func() {
		if err := http.ListenAndServe(addr, mux); err != nil {
			fmt.Fprintf(os.Stderr, "metrics server stopped: %v\n", err)
		}
	}()

	return nil
}
