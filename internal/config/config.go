// Package config handles configuration loading, validation, and hot reload
// for panelkit.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Config holds the complete panelkit configuration.
type Config struct {
	// Touch configures the input device and decoder.
	Touch TouchConfig `toml:"touch" json:"touch" yaml:"touch"`

	// Framebuffer configures display output.
	Framebuffer FramebufferConfig `toml:"framebuffer" json:"framebuffer" yaml:"framebuffer"`

	// LEDs configures sysfs LED control.
	LEDs LEDConfig `toml:"leds" json:"leds" yaml:"leds"`

	// Logging configures the structured logger.
	Logging LoggingConfig `toml:"logging" json:"logging" yaml:"logging"`
}

// TouchConfig holds input device and decoder settings.
type TouchConfig struct {
	// DevicePath pins the probe to one /dev/input node. Empty means scan.
	DevicePath string `toml:"device_path" json:"device_path" yaml:"device_path"`

	// NameHints are substrings matched against device names during the
	// probe. Empty means the built-in hints.
	NameHints []string `toml:"name_hints" json:"name_hints" yaml:"name_hints"`

	// MaxPoints is the number of simultaneous contacts to track.
	MaxPoints int `toml:"max_points" json:"max_points" yaml:"max_points"`

	// ScreenWidth and ScreenHeight are the extents raw coordinates are
	// rescaled into.
	ScreenWidth  int `toml:"screen_width" json:"screen_width" yaml:"screen_width"`
	ScreenHeight int `toml:"screen_height" json:"screen_height" yaml:"screen_height"`

	// PollIntervalMs is the daemon's polling cadence in milliseconds.
	PollIntervalMs int `toml:"poll_interval_ms" json:"poll_interval_ms" yaml:"poll_interval_ms"`
}

// FramebufferConfig holds display output settings.
type FramebufferConfig struct {
	// DevicePath is the framebuffer node.
	DevicePath string `toml:"device_path" json:"device_path" yaml:"device_path"`
}

// LEDConfig holds sysfs LED settings.
type LEDConfig struct {
	// SysfsBase is the LED class directory; overridable for tests.
	SysfsBase string `toml:"sysfs_base" json:"sysfs_base" yaml:"sysfs_base"`

	// Names are the LED names in pattern-bit order. Empty means the board
	// defaults.
	Names []string `toml:"names" json:"names" yaml:"names"`

	// Heartbeat selects which LED the daemon blinks while running;
	// -1 disables the heartbeat.
	Heartbeat int `toml:"heartbeat" json:"heartbeat" yaml:"heartbeat"`
}

// LoggingConfig holds logger settings.
type LoggingConfig struct {
	// Level is the minimum level: debug, info, warn or error.
	Level string `toml:"level" json:"level" yaml:"level"`

	// Format is "text" or "json".
	Format string `toml:"format" json:"format" yaml:"format"`

	// Output is "stdout", "stderr" or a file path.
	Output string `toml:"output" json:"output" yaml:"output"`

	// MaxSizeMB rotates a file output once it grows past this size.
	// Zero disables rotation.
	MaxSizeMB int `toml:"max_size_mb" json:"max_size_mb" yaml:"max_size_mb"`

	// MaxBackups limits how many rotated files are kept.
	MaxBackups int `toml:"max_backups" json:"max_backups" yaml:"max_backups"`
}

// DefaultConfig returns the configuration for the reference panel.
func DefaultConfig() *Config {
	return &Config{
		Touch: TouchConfig{
			MaxPoints:      2,
			ScreenWidth:    480,
			ScreenHeight:   800,
			PollIntervalMs: 20,
		},
		Framebuffer: FramebufferConfig{
			DevicePath: "/dev/fb0",
		},
		LEDs: LEDConfig{
			Heartbeat: 0,
		},
		Logging: LoggingConfig{
			Level:      "info",
			Format:     "text",
			Output:     "stderr",
			MaxSizeMB:  10,
			MaxBackups: 3,
		},
	}
}

// Load reads a config file (TOML, YAML or JSON by extension), applies
// environment overrides and validates the result. A missing file yields
// the defaults.
func Load(path string) (*Config, error) {
	cfg, err := loadFromFile(path)
	if err != nil {
		return nil, err
	}
	cfg.ApplyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	return cfg, nil
}

func loadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := DefaultConfig()
	switch {
	case strings.HasSuffix(path, ".yaml"), strings.HasSuffix(path, ".yml"):
		err = yaml.Unmarshal(data, cfg)
	case strings.HasSuffix(path, ".json"):
		err = json.Unmarshal(data, cfg)
	default:
		err = toml.Unmarshal(data, cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// ApplyEnvOverrides applies PANELKIT_-prefixed environment variables over
// the file values.
func (c *Config) ApplyEnvOverrides() {
	if v := os.Getenv("PANELKIT_TOUCH_DEVICE"); v != "" {
		c.Touch.DevicePath = v
	}
	if v := os.Getenv("PANELKIT_FB_DEVICE"); v != "" {
		c.Framebuffer.DevicePath = v
	}
	if v := os.Getenv("PANELKIT_LED_SYSFS_BASE"); v != "" {
		c.LEDs.SysfsBase = v
	}
	if v := os.Getenv("PANELKIT_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("PANELKIT_POLL_INTERVAL_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Touch.PollIntervalMs = n
		}
	}
}
