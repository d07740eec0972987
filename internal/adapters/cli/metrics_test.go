package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withConfigPath(t *testing.T, path string) {
	t.Helper()
	previous := configPath
	configPath = path
	t.Cleanup(func() { configPath = previous })
}

func TestStartMetrics_DisabledIsANoOp(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("metrics:\n  enabled: false\n"), 0o644))
	withConfigPath(t, path)

	// Act
	err := startMetrics(nil, nil)

	// Assert
	assert.NoError(t, err)
}

func TestStartMetrics_MalformedConfigFails(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("metrics: ["), 0o644))
	withConfigPath(t, path)

	// Act
	err := startMetrics(nil, nil)

	// Assert
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load config")
}

func TestRootCommand_BootstrapsMetricsAfterFlagParsing(t *testing.T) {
	cmd := NewRootCommand()
	assert.NotNil(t, cmd.PersistentPreRunE)
}
