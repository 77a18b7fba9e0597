package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLevels(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error"} {
		log, err := New(level, "")
		require.NoError(t, err, level)
		assert.NotNil(t, log)
	}
}

func TestNewInvalidLevel(t *testing.T) {
	_, err := New("verbose", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid log level "verbose"`)
}

func TestNewWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dashseed.log")

	log, err := New("warn", path)
	require.NoError(t, err)
	log.Info("hidden")
	log.Warn("layout skipped")
	_ = log.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "WARN")
	assert.Contains(t, string(data), "layout skipped")
	assert.NotContains(t, string(data), "hidden")
}
