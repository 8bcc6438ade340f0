package config

import "fmt"

// ValidationError reports one invalid configuration field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config: %s: %s", e.Field, e.Message)
}

// ValidationErrors collects every validation failure so a broken config
// reports all of its problems at once.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	switch len(e) {
	case 0:
		return ""
	case 1:
		return e[0].Error()
	}
	msg := e[0].Error()
	for _, ve := range e[1:] {
		msg += "; " + ve.Error()
	}
	return msg
}

// Validate checks the configuration and returns all problems found.
func (c *Config) Validate() error {
	var errs ValidationErrors
	add := func(field, format string, args ...any) {
		errs = append(errs, ValidationError{Field: field, Message: fmt.Sprintf(format, args...)})
	}

	if c.Touch.MaxPoints <= 0 {
		add("touch.max_points", "must be positive, got %d", c.Touch.MaxPoints)
	} else if c.Touch.MaxPoints > 16 {
		add("touch.max_points", "%d exceeds protocol limit 16", c.Touch.MaxPoints)
	}
	if c.Touch.ScreenWidth <= 0 || c.Touch.ScreenHeight <= 0 {
		add("touch.screen", "extents must be positive, got %dx%d",
			c.Touch.ScreenWidth, c.Touch.ScreenHeight)
	}
	if c.Touch.PollIntervalMs <= 0 {
		add("touch.poll_interval_ms", "must be positive, got %d", c.Touch.PollIntervalMs)
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		add("logging.level", "%q is not one of debug/info/warn/error", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "text", "json":
	default:
		add("logging.format", "%q is not text or json", c.Logging.Format)
	}
	if c.Logging.MaxSizeMB < 0 {
		add("logging.max_size_mb", "must not be negative, got %d", c.Logging.MaxSizeMB)
	}
	if c.Logging.MaxBackups < 0 {
		add("logging.max_backups", "must not be negative, got %d", c.Logging.MaxBackups)
	}

	if c.LEDs.Heartbeat < -1 {
		add("leds.heartbeat", "%d is not an LED index or -1", c.LEDs.Heartbeat)
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
