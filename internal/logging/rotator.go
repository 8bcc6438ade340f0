package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

// Rotator is an io.Writer that rotates its file once it grows past a size
// limit. Rotated files get a timestamp suffix; the oldest are pruned to
// keep at most maxBackups of them.
type Rotator struct {
	path       string
	maxBytes   int64
	maxBackups int

	mu   sync.Mutex
	file *os.File
	size int64
}

// NewRotator opens (or creates) the log file at path. maxSizeMB must be
// positive; maxBackups of zero keeps no rotated files.
func NewRotator(path string, maxSizeMB, maxBackups int) (*Rotator, error) {
	if maxSizeMB <= 0 {
		return nil, fmt.Errorf("rotator: max size must be positive, got %d MB", maxSizeMB)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}
	r := &Rotator{
		path:       path,
		maxBytes:   int64(maxSizeMB) * 1024 * 1024,
		maxBackups: maxBackups,
	}
	if err := r.open(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *Rotator) open() error {
	file, err := os.OpenFile(r.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o640)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	info, err := file.Stat()
	if err != nil {
		file.Close()
		return fmt.Errorf("stat log file: %w", err)
	}
	r.file = file
	r.size = info.Size()
	return nil
}

func (r *Rotator) Write(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.file == nil {
		if err := r.open(); err != nil {
			return 0, err
		}
	}
	if r.size+int64(len(p)) > r.maxBytes {
		if err := r.rotate(); err != nil {
			return 0, fmt.Errorf("rotate log: %w", err)
		}
	}
	n, err := r.file.Write(p)
	r.size += int64(n)
	return n, err
}

func (r *Rotator) rotate() error {
	if r.file != nil {
		if err := r.file.Close(); err != nil {
			return err
		}
		r.file = nil
	}

	rotated := r.backupName(time.Now())
	if err := os.Rename(r.path, rotated); err != nil && !os.IsNotExist(err) {
		return err
	}
	r.prune()
	return r.open()
}

func (r *Rotator) backupName(t time.Time) string {
	ext := filepath.Ext(r.path)
	stem := strings.TrimSuffix(r.path, ext)
	return fmt.Sprintf("%s-%s%s", stem, t.Format("20060102-150405"), ext)
}

// prune removes the oldest rotated files beyond maxBackups. The timestamp
// suffix sorts lexically, so name order is age order.
func (r *Rotator) prune() {
	ext := filepath.Ext(r.path)
	stem := strings.TrimSuffix(r.path, ext)
	matches, err := filepath.Glob(stem + "-*" + ext)
	if err != nil || len(matches) <= r.maxBackups {
		return
	}
	sort.Strings(matches)
	for _, old := range matches[:len(matches)-r.maxBackups] {
		os.Remove(old)
	}
}

// Close closes the current log file.
func (r *Rotator) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.file == nil {
		return nil
	}
	err := r.file.Close()
	r.file = nil
	return err
}
