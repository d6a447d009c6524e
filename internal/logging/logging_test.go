package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_DiscardsWithoutPath(t *testing.T) {
	log, closer, err := New("", "info")
	require.NoError(t, err)
	defer closer.Close()

	log.Info("dropped")
	assert.False(t, log.Enabled(t.Context(), -100))
}

func TestNew_WritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "wellquiz.log")

	log, closer, err := New(path, "debug")
	require.NoError(t, err)
	log.Debug("quiz started", "session_id", "abc")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"quiz started"`)
	assert.Contains(t, string(data), `"session_id":"abc"`)
	assert.Contains(t, string(data), `"service":"wellquiz"`)
}

func TestNew_RespectsLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wellquiz.log")

	log, closer, err := New(path, "warn")
	require.NoError(t, err)
	log.Info("hidden")
	log.Warn("shown")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "hidden")
	assert.Contains(t, string(data), "shown")
}

func TestNew_RejectsUnknownLevel(t *testing.T) {
	_, _, err := New("", "loud")
	assert.Error(t, err)
}
