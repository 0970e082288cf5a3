package logging

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/abhisek/brainquiz/internal/config"
)

func TestNew_WritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "quiz.log")

	logger, cleanup, err := New(config.Log{File: path, Level: "info", MaxSizeMB: 1})
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Info("session started", zap.String("section", "pemdas"))
	cleanup()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 1, "debug is below the configured level")

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "session started", entry["msg"])
	assert.Equal(t, "pemdas", entry["section"])
	assert.Contains(t, entry, "caller")
}

func TestNew_BadLevel(t *testing.T) {
	logger, cleanup, err := New(config.Log{File: filepath.Join(t.TempDir(), "x.log"), Level: "loud"})
	assert.Error(t, err)
	assert.NotNil(t, logger)
	assert.NotNil(t, cleanup)
}

func TestDefaultLogPath(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_STATE_HOME", dir)

	p, err := DefaultLogPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "brainquiz", "brainquiz.log"), p)
}
