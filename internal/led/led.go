// Package led drives the board's user LEDs through the sysfs LED class
// interface (/sys/class/leds/<name>/brightness).
package led

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// DefaultSysfsBase is the kernel LED class directory.
const DefaultSysfsBase = "/sys/class/leds"

// DefaultNames are the four user LEDs on the reference board, in the order
// the pattern bits address them.
var DefaultNames = []string{
	"green:usr0",
	"red:usr1",
	"orange:usr2",
	"blue:usr3",
}

// Controller addresses a fixed set of named LEDs by index. The sysfs base
// is injectable so the package tests against a temp directory.
type Controller struct {
	base  string
	names []string
}

// NewController builds a controller over the given sysfs base and LED
// names; zero values select the board defaults.
func NewController(base string, names []string) *Controller {
	if base == "" {
		base = DefaultSysfsBase
	}
	if len(names) == 0 {
		names = DefaultNames
	}
	return &Controller{base: base, names: names}
}

// Count returns the number of addressable LEDs.
func (c *Controller) Count() int { return len(c.names) }

// Name returns the sysfs name of LED i.
func (c *Controller) Name(i int) string {
	if i < 0 || i >= len(c.names) {
		return ""
	}
	return c.names[i]
}

// Available reports whether LED i's brightness attribute exists. Missing
// LEDs are diagnosed here rather than failing each Set.
func (c *Controller) Available(i int) bool {
	if i < 0 || i >= len(c.names) {
		return false
	}
	_, err := os.Stat(c.brightnessPath(i))
	return err == nil
}

// Set switches LED i on or off.
func (c *Controller) Set(i int, on bool) error {
	if i < 0 || i >= len(c.names) {
		return fmt.Errorf("led: index %d out of range (have %d)", i, len(c.names))
	}
	value := "0"
	if on {
		value = "1"
	}
	if err := os.WriteFile(c.brightnessPath(i), []byte(value), 0o644); err != nil {
		return fmt.Errorf("led %s: %w", c.names[i], err)
	}
	return nil
}

// Get reads back LED i's state; any non-zero brightness counts as on.
func (c *Controller) Get(i int) (bool, error) {
	if i < 0 || i >= len(c.names) {
		return false, fmt.Errorf("led: index %d out of range (have %d)", i, len(c.names))
	}
	data, err := os.ReadFile(c.brightnessPath(i))
	if err != nil {
		return false, fmt.Errorf("led %s: %w", c.names[i], err)
	}
	n, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return false, fmt.Errorf("led %s: bad brightness %q", c.names[i], strings.TrimSpace(string(data)))
	}
	return n != 0, nil
}

// Toggle flips LED i.
func (c *Controller) Toggle(i int) error {
	on, err := c.Get(i)
	if err != nil {
		return err
	}
	return c.Set(i, !on)
}

// SetPattern applies a bit pattern across all LEDs, bit i driving LED i.
func (c *Controller) SetPattern(pattern uint8) error {
	for i := range c.names {
		if err := c.Set(i, pattern&(1<<i) != 0); err != nil {
			return err
		}
	}
	return nil
}

// AllOff clears every LED, ignoring missing ones.
func (c *Controller) AllOff() {
	for i := range c.names {
		if c.Available(i) {
			_ = c.Set(i, false)
		}
	}
}

func (c *Controller) brightnessPath(i int) string {
	return filepath.Join(c.base, c.names[i], "brightness")
}
