package evdev

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEventTimestampMS(t *testing.T) {
	ev := Event{Sec: 5, Usec: 250000}
	assert.Equal(t, int64(5250), ev.TimestampMS())

	ev = Event{Sec: 0, Usec: 999}
	assert.Equal(t, int64(0), ev.TimestampMS())

	ev = Event{Sec: 1, Usec: 1000}
	assert.Equal(t, int64(1001), ev.TimestampMS())
}

func TestNameSuggestsTouch(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"FT6236 Touchscreen", true},
		{"goodix-ts", true},
		{"Goodix Capacitive TouchScreen", true},
		{"gt911", true},
		{"generic touch panel", true},
		{"AT Translated Set 2 keyboard", false},
		{"Logitech USB Optical Mouse", false},
		{"", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NameSuggestsTouch(tt.name, nil), "name=%q", tt.name)
	}
}

func TestNameSuggestsTouchCustomHints(t *testing.T) {
	assert.True(t, NameSuggestsTouch("ILITEK ili2117", []string{"ilitek"}))
	assert.False(t, NameSuggestsTouch("FT6236 Touchscreen", []string{"ilitek"}))
	assert.False(t, NameSuggestsTouch("anything", []string{""}))
}
