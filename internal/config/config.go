// Application configuration with defaults, YAML file and environment overrides
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds every runtime setting of the application. Defaults match the
// classic demo: default camera, 100 msec refresh, annotations off.
type Config struct {
	WindowTitle     string `yaml:"window_title"`
	CameraDevice    int    `yaml:"camera_device"`
	CascadePath     string `yaml:"cascade_path"`
	OverlayPath     string `yaml:"overlay_path"`
	RefreshMillis   int    `yaml:"refresh_millis"`
	DrawRectangles  bool   `yaml:"draw_rectangles"`
	DrawCircles     bool   `yaml:"draw_circles"`
	PerfLogEnabled  bool   `yaml:"perf_log_enabled"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		WindowTitle:    "Face Overlay",
		CameraDevice:   0,
		CascadePath:    "cascade-files/haarcascade_frontalface_alt.xml",
		OverlayPath:    "images/mustache.png",
		RefreshMillis:  100,
		DrawRectangles: false,
		DrawCircles:    false,
		PerfLogEnabled: false,
	}
}

// Load builds the configuration by layering, in order: defaults, the optional
// YAML file at path (skipped when path is empty), then environment variables.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	c.WindowTitle = getEnv("WINDOW_TITLE", c.WindowTitle)
	c.CameraDevice = getEnvAsInt("CAMERA_DEVICE", c.CameraDevice)
	c.CascadePath = getEnv("CASCADE_PATH", c.CascadePath)
	c.OverlayPath = getEnv("OVERLAY_PATH", c.OverlayPath)
	c.RefreshMillis = getEnvAsInt("REFRESH_MILLIS", c.RefreshMillis)
	c.DrawRectangles = getEnvAsBool("DRAW_RECTANGLES", c.DrawRectangles)
	c.DrawCircles = getEnvAsBool("DRAW_CIRCLES", c.DrawCircles)
	c.PerfLogEnabled = getEnvAsBool("PERF_LOG", c.PerfLogEnabled)
}

// Validate checks the configuration for values the pipeline cannot run with.
func (c *Config) Validate() error {
	if c.RefreshMillis <= 0 {
		return fmt.Errorf("refresh_millis must be positive, got %d", c.RefreshMillis)
	}
	if c.CameraDevice < 0 {
		return fmt.Errorf("camera_device must not be negative, got %d", c.CameraDevice)
	}
	if c.CascadePath == "" {
		return fmt.Errorf("cascade_path must not be empty")
	}
	if c.OverlayPath == "" {
		return fmt.Errorf("overlay_path must not be empty")
	}
	return nil
}

// RefreshInterval returns the refresh period as a time.Duration.
func (c *Config) RefreshInterval() time.Duration {
	return time.Duration(c.RefreshMillis) * time.Millisecond
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
