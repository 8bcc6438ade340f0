package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRotatorWritesThrough(t *testing.T) {
	path := filepath.Join(t.TempDir(), "panelkit.log")
	r, err := NewRotator(path, 1, 2)
	require.NoError(t, err)
	defer r.Close()

	_, err = r.Write([]byte("hello\n"))
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hello\n", string(data))
}

func TestRotatorRotatesAtSizeLimit(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "panelkit.log")
	r, err := NewRotator(path, 1, 2)
	require.NoError(t, err)
	defer r.Close()

	// Two writes of just over half the limit force one rotation.
	chunk := []byte(strings.Repeat("x", 600*1024))
	_, err = r.Write(chunk)
	require.NoError(t, err)
	_, err = r.Write(chunk)
	require.NoError(t, err)

	backups, err := filepath.Glob(filepath.Join(dir, "panelkit-*.log"))
	require.NoError(t, err)
	assert.Len(t, backups, 1)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, int64(len(chunk)), info.Size())
}

func TestRotatorPrunesOldBackups(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "panelkit.log")

	// Pre-seed more backups than the retention allows.
	for _, stamp := range []string{"20240101-000000", "20240102-000000", "20240103-000000"} {
		name := filepath.Join(dir, "panelkit-"+stamp+".log")
		require.NoError(t, os.WriteFile(name, []byte("old"), 0o640))
	}

	r, err := NewRotator(path, 1, 1)
	require.NoError(t, err)
	defer r.Close()

	chunk := []byte(strings.Repeat("x", 600*1024))
	_, err = r.Write(chunk)
	require.NoError(t, err)
	_, err = r.Write(chunk)
	require.NoError(t, err)

	backups, err := filepath.Glob(filepath.Join(dir, "panelkit-*.log"))
	require.NoError(t, err)
	assert.Len(t, backups, 1)
}

func TestRotatorRejectsZeroSize(t *testing.T) {
	_, err := NewRotator(filepath.Join(t.TempDir(), "x.log"), 0, 1)
	assert.Error(t, err)
}
