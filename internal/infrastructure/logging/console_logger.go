package logging

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/agromap-uz/agromap-go/internal/infrastructure/config"
)

var levelRank = map[string]int{
	"DEBUG": 0,
	"INFO":  1,
	"WARN":  2,
	"ERROR": 3,
}

// ConsoleLogger writes structured log lines to a configured destination. It
// implements the application layer's Logger interface.
type ConsoleLogger struct {
	out      io.Writer
	minLevel int
	json     bool
}

// NewConsoleLogger builds a logger from the logging configuration. Unknown
// outputs fall back to stdout; an unopenable log file falls back to stderr.
func NewConsoleLogger(cfg config.LoggingConfig) *ConsoleLogger {
	var out io.Writer
	switch cfg.Output {
	case "stderr":
		out = os.Stderr
	case "file":
		f, err := os.OpenFile(cfg.FilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			out = os.Stderr
		} else {
			out = f
		}
	default:
		out = os.Stdout
	}

	minLevel, ok := levelRank[strings.ToUpper(cfg.Level)]
	if !ok {
		minLevel = levelRank["INFO"]
	}

	return &ConsoleLogger{
		out:      out,
		minLevel: minLevel,
		json:     cfg.Format == "json",
	}
}

// Log writes one entry if its level clears the configured minimum.
func (l *ConsoleLogger) Log(level, message string, metadata map[string]interface{}) {
	rank, ok := levelRank[strings.ToUpper(level)]
	if !ok {
		rank = levelRank["INFO"]
	}
	if rank < l.minLevel {
		return
	}

	now := time.Now().UTC()

	if l.json {
		entry := map[string]interface{}{
			"time":    now.Format(time.RFC3339),
			"level":   strings.ToUpper(level),
			"message": message,
		}
		for k, v := range metadata {
			entry[k] = v
		}
		if data, err := json.Marshal(entry); err == nil {
			fmt.Fprintln(l.out, string(data))
		}
		return
	}

	var fields string
	if len(metadata) > 0 {
		keys := make([]string, 0, len(metadata))
		for k := range metadata {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		parts := make([]string, len(keys))
		for i, k := range keys {
			parts[i] = fmt.Sprintf("%s=%v", k, metadata[k])
		}
		fields = " " + strings.Join(parts, " ")
	}

	fmt.Fprintf(l.out, "%s [%s] %s%s\n", now.Format(time.RFC3339), strings.ToUpper(level), message, fields)
}
