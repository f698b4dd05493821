package cmd

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigConstants(t *testing.T) {
	assert.Equal(t, "tokfuzz", configBaseName)
	assert.Equal(t, "tokfuzz.yaml", configFileName)
	assert.Equal(t, ".", configFolderPath)
	assert.Equal(t, "mutate.parallel", parallelConfigKey)
	assert.Equal(t, "mutate.mutators", mutatorsConfigKey)
	assert.Equal(t, ".tokfuzz-out", defaultOutputDir)
	assert.Equal(t, "corpus", defaultCorpusDir)
	assert.Equal(t, 100, defaultIterations)
	assert.Equal(t, 4096, defaultMaxSize)
	assert.Equal(t, "TOKFUZZ", envPrefix)
}

func TestConfigVersionConstants(t *testing.T) {
	assert.Equal(t, "version", configVersionKey)
	assert.Equal(t, 1, currentConfigVersion)
}

func TestParseSlogLevel(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  slog.Level
	}{
		{"empty uses default", "", slog.LevelWarn},
		{"debug", "debug", slog.LevelDebug},
		{"info upper case", "INFO", slog.LevelInfo},
		{"warning alias", " warning ", slog.LevelWarn},
		{"error", "error", slog.LevelError},
		{"numeric", "-4", slog.LevelDebug},
		{"unknown uses default", "loud", slog.LevelWarn},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseSlogLevel(tt.value, slog.LevelWarn))
		})
	}
}

func TestConfigureLogger(t *testing.T) {
	logger := slog.Default()
	t.Cleanup(func() { slog.SetDefault(logger) })

	logPath := filepath.Join(t.TempDir(), "tokfuzz.log")

	configureLogger(logPath, true)
	slog.Debug("probe", "key", "value")

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "msg=probe")
	assert.Contains(t, string(data), "key=value")
	assert.Contains(t, string(data), "source=")
	assert.Same(t, globalLogger, slog.Default())
}
