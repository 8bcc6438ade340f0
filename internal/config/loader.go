package config

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Loader handles configuration loading, watching, and hot reload.
type Loader struct {
	path     string
	config   *Config
	mu       sync.RWMutex
	watcher  *fsnotify.Watcher
	onChange []func(*Config)
	ctx      context.Context
	cancel   context.CancelFunc
	errChan  chan error
}

// NewLoader creates a configuration loader for the given file.
func NewLoader(path string) *Loader {
	ctx, cancel := context.WithCancel(context.Background())
	return &Loader{
		path:    path,
		errChan: make(chan error, 1),
		ctx:     ctx,
		cancel:  cancel,
	}
}

// Load reads, validates and stores the configuration.
func (l *Loader) Load() (*Config, error) {
	cfg, err := Load(l.path)
	if err != nil {
		return nil, err
	}
	l.mu.Lock()
	l.config = cfg
	l.mu.Unlock()
	return cfg, nil
}

// Config returns the current configuration.
func (l *Loader) Config() *Config {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.config
}

// OnChange registers a callback invoked after a successful reload.
func (l *Loader) OnChange(cb func(*Config)) {
	l.onChange = append(l.onChange, cb)
}

// Errors returns a channel of errors encountered while watching.
func (l *Loader) Errors() <-chan error {
	return l.errChan
}

// Watch starts watching the configuration file for changes. Edits are
// debounced, reloaded, validated and only then applied; a broken edit is
// reported on Errors and the previous configuration stays in effect.
func (l *Loader) Watch() error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	l.watcher = watcher

	// Watch the directory, not the file: editors replace the file on
	// save, which would orphan a direct watch.
	if err := watcher.Add(filepath.Dir(l.path)); err != nil {
		watcher.Close()
		return fmt.Errorf("watch directory: %w", err)
	}

	go l.watchLoop()
	return nil
}

func (l *Loader) watchLoop() {
	var debounceTimer *time.Timer
	const debounceDelay = 100 * time.Millisecond

	for {
		select {
		case <-l.ctx.Done():
			return

		case event, ok := <-l.watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != filepath.Base(l.path) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(debounceDelay, func() {
				l.reload()
			})

		case err, ok := <-l.watcher.Errors:
			if !ok {
				return
			}
			select {
			case l.errChan <- err:
			default:
			}
		}
	}
}

func (l *Loader) reload() {
	cfg, err := Load(l.path)
	if err != nil {
		select {
		case l.errChan <- fmt.Errorf("reload config: %w", err):
		default:
		}
		return
	}

	l.mu.Lock()
	l.config = cfg
	l.mu.Unlock()

	for _, cb := range l.onChange {
		cb(cfg)
	}
}

// Close stops watching and releases resources.
func (l *Loader) Close() error {
	l.cancel()
	if l.watcher != nil {
		return l.watcher.Close()
	}
	return nil
}
