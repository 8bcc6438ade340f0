package evdev

import "strings"

// DefaultNameHints are substrings that mark a device name as touch
// hardware. The controller-specific entries cover the panels this was
// brought up on; "touch" catches the generic *touchscreen* names.
var DefaultNameHints = []string{"ft6236", "goodix", "gt911", "touch"}

// NameSuggestsTouch reports whether a device name hints at touch hardware.
// An empty hint list falls back to DefaultNameHints.
func NameSuggestsTouch(name string, hints []string) bool {
	if name == "" {
		return false
	}
	if len(hints) == 0 {
		hints = DefaultNameHints
	}
	low := strings.ToLower(name)
	for _, h := range hints {
		if h == "" {
			continue
		}
		if strings.Contains(low, strings.ToLower(h)) {
			return true
		}
	}
	return false
}
