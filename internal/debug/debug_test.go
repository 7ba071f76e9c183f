package debug

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger_NopBeforeInit(t *testing.T) {
	require.NoError(t, Close())
	l := Logger()
	require.NotNil(t, l)
	assert.False(t, l.Core().Enabled(-1), "no-op logger must not enable debug")
}

func TestInit_ConsoleLevel(t *testing.T) {
	t.Setenv(EnvFile, "")
	t.Cleanup(func() { _ = Close() })

	var buf bytes.Buffer
	cfg := DefaultConfig()
	l, err := Init(cfg, &buf)
	require.NoError(t, err)
	assert.Same(t, l, Logger())

	l.Info("hidden")
	l.Warn("shown")
	Logf("also hidden %d", 1)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, "gridview.")
}

func TestInit_JSONFormat(t *testing.T) {
	t.Setenv(EnvFile, "")
	t.Cleanup(func() { _ = Close() })

	var buf bytes.Buffer
	cfg := DefaultConfig()
	cfg.Format = "json"
	cfg.Level = "debug"
	_, err := Init(cfg, &buf)
	require.NoError(t, err)

	Logf("measured %dx%d", 3, 4)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "measured 3x4", rec["msg"])
	assert.Equal(t, "DEBUG", rec["level"])
}

func TestInit_BadLevel(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Level = "chatty"
	_, err := Init(cfg, &bytes.Buffer{})
	assert.Error(t, err)
}

func TestInit_EnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "debug.log")
	t.Setenv(EnvFile, path)

	var buf bytes.Buffer
	_, err := Init(DefaultConfig(), &buf)
	require.NoError(t, err)

	Logger().Debug("stage done")
	require.NoError(t, Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), `"msg":"stage done"`), "file got %q", data)
	assert.Empty(t, buf.String(), "console level stays at warn")
}
