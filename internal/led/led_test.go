package led

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestController builds a controller over a fake sysfs tree with the
// given LEDs pre-created.
func newTestController(t *testing.T, names ...string) *Controller {
	t.Helper()
	base := t.TempDir()
	for _, name := range names {
		dir := filepath.Join(base, name)
		require.NoError(t, os.MkdirAll(dir, 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "brightness"), []byte("0\n"), 0o644))
	}
	return NewController(base, names)
}

func TestSetAndGet(t *testing.T) {
	c := newTestController(t, "green:usr0", "red:usr1")

	require.NoError(t, c.Set(0, true))
	on, err := c.Get(0)
	require.NoError(t, err)
	assert.True(t, on)

	on, err = c.Get(1)
	require.NoError(t, err)
	assert.False(t, on)

	require.NoError(t, c.Set(0, false))
	on, err = c.Get(0)
	require.NoError(t, err)
	assert.False(t, on)
}

func TestToggle(t *testing.T) {
	c := newTestController(t, "green:usr0")

	require.NoError(t, c.Toggle(0))
	on, err := c.Get(0)
	require.NoError(t, err)
	assert.True(t, on)

	require.NoError(t, c.Toggle(0))
	on, err = c.Get(0)
	require.NoError(t, err)
	assert.False(t, on)
}

func TestSetPattern(t *testing.T) {
	c := newTestController(t, "green:usr0", "red:usr1", "orange:usr2", "blue:usr3")

	require.NoError(t, c.SetPattern(0b0101))
	for i, want := range []bool{true, false, true, false} {
		on, err := c.Get(i)
		require.NoError(t, err)
		assert.Equal(t, want, on, "led %d", i)
	}

	require.NoError(t, c.SetPattern(0))
	for i := 0; i < c.Count(); i++ {
		on, err := c.Get(i)
		require.NoError(t, err)
		assert.False(t, on, "led %d", i)
	}
}

func TestIndexOutOfRange(t *testing.T) {
	c := newTestController(t, "green:usr0")

	assert.Error(t, c.Set(1, true))
	assert.Error(t, c.Set(-1, true))
	_, err := c.Get(5)
	assert.Error(t, err)
	assert.False(t, c.Available(5))
}

func TestAvailable(t *testing.T) {
	base := t.TempDir()
	dir := filepath.Join(base, "green:usr0")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "brightness"), []byte("0"), 0o644))

	c := NewController(base, []string{"green:usr0", "missing:usr9"})
	assert.True(t, c.Available(0))
	assert.False(t, c.Available(1))

	// Set on a missing LED surfaces the sysfs error.
	assert.Error(t, c.Set(1, true))
}

func TestGetBadBrightnessContent(t *testing.T) {
	c := newTestController(t, "green:usr0")
	require.NoError(t, os.WriteFile(filepath.Join(c.base, "green:usr0", "brightness"), []byte("junk"), 0o644))

	_, err := c.Get(0)
	assert.Error(t, err)
}

func TestDefaults(t *testing.T) {
	c := NewController("", nil)
	assert.Equal(t, len(DefaultNames), c.Count())
	assert.Equal(t, "green:usr0", c.Name(0))
	assert.Equal(t, "", c.Name(9))
}
