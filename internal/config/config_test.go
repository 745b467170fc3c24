package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultValues(t *testing.T) {
	cfg := Default()

	assert.Equal(t, 0, cfg.CameraDevice)
	assert.Equal(t, 100, cfg.RefreshMillis)
	assert.Equal(t, 100*time.Millisecond, cfg.RefreshInterval())
	assert.False(t, cfg.DrawRectangles)
	assert.False(t, cfg.DrawCircles)
	assert.False(t, cfg.PerfLogEnabled)
	assert.NoError(t, cfg.Validate())
}

func TestLoadYAMLFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := []byte(`
window_title: Demo
camera_device: 2
cascade_path: data/frontalface.xml
overlay_path: data/hat.png
refresh_millis: 33
draw_rectangles: true
perf_log_enabled: true
`)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "Demo", cfg.WindowTitle)
	assert.Equal(t, 2, cfg.CameraDevice)
	assert.Equal(t, "data/frontalface.xml", cfg.CascadePath)
	assert.Equal(t, "data/hat.png", cfg.OverlayPath)
	assert.Equal(t, 33, cfg.RefreshMillis)
	assert.True(t, cfg.DrawRectangles)
	assert.False(t, cfg.DrawCircles)
	assert.True(t, cfg.PerfLogEnabled)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("CAMERA_DEVICE", "1")
	t.Setenv("REFRESH_MILLIS", "50")
	t.Setenv("DRAW_CIRCLES", "true")
	t.Setenv("OVERLAY_PATH", "assets/glasses.png")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 1, cfg.CameraDevice)
	assert.Equal(t, 50, cfg.RefreshMillis)
	assert.True(t, cfg.DrawCircles)
	assert.Equal(t, "assets/glasses.png", cfg.OverlayPath)
}

func TestEnvIgnoresUnparsableValues(t *testing.T) {
	t.Setenv("REFRESH_MILLIS", "fast")
	t.Setenv("DRAW_CIRCLES", "yep")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 100, cfg.RefreshMillis)
	assert.False(t, cfg.DrawCircles)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.RefreshMillis = 0
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.CameraDevice = -1
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.CascadePath = ""
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.OverlayPath = ""
	assert.Error(t, cfg.Validate())
}
