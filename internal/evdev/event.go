// Package evdev provides minimal access to Linux input devices
// (/dev/input/event*): non-blocking event reads, capability and axis-range
// ioctls, and a capability probe that picks a usable touch panel among the
// available candidates.
//
// The package deliberately exposes raw protocol events and constants; the
// reconstruction of touch contacts from them lives in package touch.
package evdev

// Event is one kernel input_event record, decoded into fixed-width fields
// so that consumers do not depend on the platform timeval layout.
type Event struct {
	Sec   int64  // timestamp seconds
	Usec  int64  // timestamp microseconds
	Type  uint16 // event category (EvSyn, EvKey, EvAbs, ...)
	Code  uint16 // category-specific code
	Value int32
}

// TimestampMS returns the event time in milliseconds.
func (e Event) TimestampMS() int64 {
	return e.Sec*1000 + e.Usec/1000
}

// Event categories (linux/input-event-codes.h).
const (
	EvSyn uint16 = 0x00
	EvKey uint16 = 0x01
	EvRel uint16 = 0x02
	EvAbs uint16 = 0x03
)

// Synchronization codes.
const (
	SynReport uint16 = 0x00
)

// Key codes the probe cares about.
const (
	BtnTouch uint16 = 0x14a
)

// Absolute axis codes. The MT codes belong to the multi-touch protocol
// type B; ABS_X/ABS_Y are the legacy single-touch axes some controllers
// report alongside or instead of the MT ones.
const (
	AbsX            uint16 = 0x00
	AbsY            uint16 = 0x01
	AbsPressure     uint16 = 0x18
	AbsMTSlot       uint16 = 0x2f
	AbsMTPositionX  uint16 = 0x35
	AbsMTPositionY  uint16 = 0x36
	AbsMTTrackingID uint16 = 0x39
	AbsMTPressure   uint16 = 0x3a
)

// absMax is the highest absolute axis code (ABS_MAX).
const absMax = 0x3f

// evMax is the highest event type code (EV_MAX).
const evMax = 0x1f
