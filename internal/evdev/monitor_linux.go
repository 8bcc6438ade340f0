//go:build linux

package evdev

import (
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// HotplugEvent reports an input device node appearing or disappearing.
type HotplugEvent struct {
	Path    string
	Removed bool
}

// Monitor watches /dev/input for device nodes coming and going, so a caller
// holding a touch device can re-probe after the panel is re-enumerated.
type Monitor struct {
	fsWatcher *fsnotify.Watcher

	events chan HotplugEvent
	errors chan error

	done chan struct{}
	wg   sync.WaitGroup
}

// NewMonitor creates a hotplug monitor over the given directory
// (normally /dev/input).
func NewMonitor(dir string) (*Monitor, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsWatcher.Add(dir); err != nil {
		fsWatcher.Close()
		return nil, err
	}

	m := &Monitor{
		fsWatcher: fsWatcher,
		events:    make(chan HotplugEvent, 16),
		errors:    make(chan error, 4),
		done:      make(chan struct{}),
	}
	m.wg.Add(1)
	go m.loop()
	return m, nil
}

// Events returns the channel of hotplug events.
func (m *Monitor) Events() <-chan HotplugEvent {
	return m.events
}

// Errors returns the channel of watcher errors.
func (m *Monitor) Errors() <-chan error {
	return m.errors
}

// Close stops the monitor and releases the underlying watcher.
func (m *Monitor) Close() error {
	close(m.done)
	err := m.fsWatcher.Close()
	m.wg.Wait()
	return err
}

func (m *Monitor) loop() {
	defer m.wg.Done()
	for {
		select {
		case <-m.done:
			return
		case ev, ok := <-m.fsWatcher.Events:
			if !ok {
				return
			}
			// Only event nodes matter; /dev/input also holds mouseN,
			// mice and the by-id/by-path symlink dirs.
			if !strings.Contains(ev.Name, "event") {
				continue
			}
			switch {
			case ev.Op.Has(fsnotify.Create):
				select {
				case m.events <- HotplugEvent{Path: ev.Name}:
				case <-m.done:
					return
				}
			case ev.Op.Has(fsnotify.Remove):
				select {
				case m.events <- HotplugEvent{Path: ev.Name, Removed: true}:
				case <-m.done:
					return
				}
			}
		case err, ok := <-m.fsWatcher.Errors:
			if !ok {
				return
			}
			select {
			case m.errors <- err:
			default:
			}
		}
	}
}
