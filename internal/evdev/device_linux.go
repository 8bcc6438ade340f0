//go:build linux

package evdev

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// Device is an open evdev input device in non-blocking mode.
//
// ReadEvents never blocks: when the kernel has nothing queued it returns an
// empty batch, which callers treat as "no new data" rather than an error.
type Device struct {
	fd   int
	path string

	readBuf []byte
}

// Open opens an input device read-only and non-blocking.
func Open(path string) (*Device, error) {
	fd, err := unix.Open(path, unix.O_RDONLY|unix.O_NONBLOCK, 0)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return &Device{
		fd:      fd,
		path:    path,
		readBuf: make([]byte, 64*EventSize),
	}, nil
}

// Path returns the device node path this device was opened from.
func (d *Device) Path() string { return d.path }

// Close releases the device fd. Safe to call twice.
func (d *Device) Close() error {
	if d.fd < 0 {
		return nil
	}
	err := unix.Close(d.fd)
	d.fd = -1
	return err
}

// ReadEvents drains all currently queued events from the device. An empty
// result with a nil error means no data was available. I/O errors other
// than EAGAIN/EWOULDBLOCK are returned wrapped; any events decoded before
// the error are returned alongside it.
func (d *Device) ReadEvents() ([]Event, error) {
	if d.fd < 0 {
		return nil, fmt.Errorf("read %s: device closed", d.path)
	}
	var events []Event
	for {
		n, err := unix.Read(d.fd, d.readBuf)
		if err != nil {
			if err == unix.EAGAIN || err == unix.EWOULDBLOCK {
				return events, nil
			}
			return events, fmt.Errorf("read %s: %w", d.path, err)
		}
		if n <= 0 {
			return events, nil
		}
		events = append(events, DecodeEvents(d.readBuf[:n])...)
		if n < len(d.readBuf) {
			return events, nil
		}
	}
}

// Name returns the device name reported by the driver.
func (d *Device) Name() (string, error) {
	name, err := ioctlName(d.fd)
	if err != nil {
		return "", fmt.Errorf("name %s: %w", d.path, err)
	}
	return name, nil
}

// AbsInfo returns the calibration range for one absolute axis.
func (d *Device) AbsInfo(axis uint16) (AbsInfo, error) {
	info, err := ioctlAbsInfo(d.fd, axis)
	if err != nil {
		return AbsInfo{}, fmt.Errorf("absinfo %s axis %#x: %w", d.path, axis, err)
	}
	return info, nil
}

// SupportsAbs reports whether the device advertises the absolute-axis event
// category and, within it, both of the given axis codes.
func (d *Device) SupportsAbs(xAxis, yAxis uint16) bool {
	evBits, err := ioctlBits(d.fd, 0, evMax+1)
	if err != nil || !bitSet(evBits, EvAbs) {
		return false
	}
	absBits, err := ioctlBits(d.fd, int(EvAbs), absMax+1)
	if err != nil {
		return false
	}
	return bitSet(absBits, xAxis) && bitSet(absBits, yAxis)
}
