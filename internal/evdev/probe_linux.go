//go:build linux

package evdev

import (
	"errors"
	"path/filepath"
	"sort"
)

// ErrNoDevice is returned when the probe exhausts all candidate devices
// without finding one that looks like a touch panel.
var ErrNoDevice = errors.New("evdev: no suitable touch device found")

// ProbeResult is an opened touch device plus what the probe learned about
// its axes. When Calibrated is false the driver did not supply usable axis
// ranges and consumers must fall back to fixed-resolution scaling.
type ProbeResult struct {
	Device     *Device
	Name       string
	X, Y       AbsInfo
	Calibrated bool
}

// FindTouchDevice selects a usable touch panel among /dev/input/event*.
//
// A candidate must advertise the absolute-axis event category with both X/Y
// position codes (multi-touch or legacy). Among capable candidates, one
// whose name matches a hint is taken immediately; otherwise the first
// capable device wins. pathOverride, when non-empty, skips scanning and
// opens exactly that node.
func FindTouchDevice(pathOverride string, hints []string) (*ProbeResult, error) {
	if pathOverride != "" {
		dev, err := Open(pathOverride)
		if err != nil {
			return nil, err
		}
		return finishProbe(dev)
	}

	candidates, err := filepath.Glob("/dev/input/event*")
	if err != nil || len(candidates) == 0 {
		return nil, ErrNoDevice
	}
	sort.Strings(candidates)

	var fallback *Device
	for _, path := range candidates {
		dev, err := Open(path)
		if err != nil {
			continue
		}
		if !dev.SupportsAbs(AbsMTPositionX, AbsMTPositionY) && !dev.SupportsAbs(AbsX, AbsY) {
			dev.Close()
			continue
		}
		name, _ := dev.Name()
		if NameSuggestsTouch(name, hints) {
			if fallback != nil {
				fallback.Close()
			}
			return finishProbe(dev)
		}
		if fallback == nil {
			fallback = dev
		} else {
			dev.Close()
		}
	}
	if fallback != nil {
		return finishProbe(fallback)
	}
	return nil, ErrNoDevice
}

// finishProbe queries the device name and axis calibration. MT position
// axes are preferred; legacy ABS_X/ABS_Y are the fallback for single-touch
// controllers.
func finishProbe(dev *Device) (*ProbeResult, error) {
	res := &ProbeResult{Device: dev}
	res.Name, _ = dev.Name()

	x, errX := dev.AbsInfo(AbsMTPositionX)
	y, errY := dev.AbsInfo(AbsMTPositionY)
	if errX != nil || errY != nil || x.Maximum <= x.Minimum || y.Maximum <= y.Minimum {
		x, errX = dev.AbsInfo(AbsX)
		y, errY = dev.AbsInfo(AbsY)
	}
	if errX == nil && errY == nil && x.Maximum > x.Minimum && y.Maximum > y.Minimum {
		res.X, res.Y = x, y
		res.Calibrated = true
	}
	return res, nil
}

// DeviceSummary describes one input device node for diagnostics.
type DeviceSummary struct {
	Path  string
	Name  string
	Touch bool // advertises absolute X/Y positioning
}

// ListDevices enumerates /dev/input/event* with names and touch capability,
// skipping nodes that cannot be opened.
func ListDevices() []DeviceSummary {
	candidates, _ := filepath.Glob("/dev/input/event*")
	sort.Strings(candidates)

	var out []DeviceSummary
	for _, path := range candidates {
		dev, err := Open(path)
		if err != nil {
			continue
		}
		name, _ := dev.Name()
		out = append(out, DeviceSummary{
			Path:  path,
			Name:  name,
			Touch: dev.SupportsAbs(AbsMTPositionX, AbsMTPositionY) || dev.SupportsAbs(AbsX, AbsY),
		})
		dev.Close()
	}
	return out
}
