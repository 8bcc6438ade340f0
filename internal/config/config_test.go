package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 2, cfg.Touch.MaxPoints)
	assert.Equal(t, 480, cfg.Touch.ScreenWidth)
	assert.Equal(t, 800, cfg.Touch.ScreenHeight)
	assert.Equal(t, "/dev/fb0", cfg.Framebuffer.DevicePath)
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadTOML(t *testing.T) {
	path := writeConfig(t, "panelkit.toml", `
[touch]
device_path = "/dev/input/event3"
max_points = 4
screen_width = 1024
screen_height = 600
poll_interval_ms = 10
name_hints = ["ilitek"]

[leds]
heartbeat = 2

[logging]
level = "debug"
format = "json"
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/dev/input/event3", cfg.Touch.DevicePath)
	assert.Equal(t, 4, cfg.Touch.MaxPoints)
	assert.Equal(t, 1024, cfg.Touch.ScreenWidth)
	assert.Equal(t, []string{"ilitek"}, cfg.Touch.NameHints)
	assert.Equal(t, 2, cfg.LEDs.Heartbeat)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoadYAML(t *testing.T) {
	path := writeConfig(t, "panelkit.yaml", `
touch:
  max_points: 3
  screen_width: 320
  screen_height: 240
logging:
  level: warn
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Touch.MaxPoints)
	assert.Equal(t, 320, cfg.Touch.ScreenWidth)
	assert.Equal(t, "warn", cfg.Logging.Level)
	// Untouched sections keep defaults.
	assert.Equal(t, 20, cfg.Touch.PollIntervalMs)
}

func TestLoadJSON(t *testing.T) {
	path := writeConfig(t, "panelkit.json", `{"touch": {"max_points": 5, "screen_width": 480, "screen_height": 800, "poll_interval_ms": 20}}`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Touch.MaxPoints)
}

func TestLoadInvalidTOML(t *testing.T) {
	path := writeConfig(t, "panelkit.toml", "[[[broken")
	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero max points", func(c *Config) { c.Touch.MaxPoints = 0 }},
		{"excess max points", func(c *Config) { c.Touch.MaxPoints = 64 }},
		{"zero width", func(c *Config) { c.Touch.ScreenWidth = 0 }},
		{"negative height", func(c *Config) { c.Touch.ScreenHeight = -1 }},
		{"zero poll interval", func(c *Config) { c.Touch.PollIntervalMs = 0 }},
		{"bad level", func(c *Config) { c.Logging.Level = "verbose" }},
		{"bad format", func(c *Config) { c.Logging.Format = "xml" }},
		{"bad heartbeat", func(c *Config) { c.LEDs.Heartbeat = -2 }},
		{"negative log size", func(c *Config) { c.Logging.MaxSizeMB = -1 }},
		{"negative log backups", func(c *Config) { c.Logging.MaxBackups = -1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestValidateReportsAllFailures(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Touch.MaxPoints = 0
	cfg.Logging.Format = "xml"

	err := cfg.Validate()
	require.Error(t, err)

	var errs ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Len(t, errs, 2)
	assert.Contains(t, err.Error(), "touch.max_points")
	assert.Contains(t, err.Error(), "logging.format")
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv("PANELKIT_TOUCH_DEVICE", "/dev/input/event9")
	t.Setenv("PANELKIT_LOG_LEVEL", "error")
	t.Setenv("PANELKIT_POLL_INTERVAL_MS", "5")

	cfg := DefaultConfig()
	cfg.ApplyEnvOverrides()
	assert.Equal(t, "/dev/input/event9", cfg.Touch.DevicePath)
	assert.Equal(t, "error", cfg.Logging.Level)
	assert.Equal(t, 5, cfg.Touch.PollIntervalMs)
}

func TestLoaderLoadAndConfig(t *testing.T) {
	path := writeConfig(t, "panelkit.toml", `
[touch]
max_points = 2
screen_width = 480
screen_height = 800
poll_interval_ms = 20
`)
	l := NewLoader(path)
	defer l.Close()

	cfg, err := l.Load()
	require.NoError(t, err)
	assert.Same(t, cfg, l.Config())
}

func TestLoaderRejectsInvalidConfig(t *testing.T) {
	path := writeConfig(t, "panelkit.toml", `
[touch]
max_points = 0
`)
	l := NewLoader(path)
	defer l.Close()

	_, err := l.Load()
	assert.Error(t, err)
}
