// Package touch reconstructs structured touch contact frames from the raw
// Linux multi-touch (protocol type B) event stream.
//
// The kernel reports touch state as a sequence of partial per-slot updates
// terminated by a synchronization marker. The Decoder tracks per-slot state
// across those partial updates, classifies what happened to each contact
// (press, move, release) and emits one immutable Frame per report boundary
// with coordinates rescaled into screen space.
package touch

// Kind classifies what happened to one contact within a frame.
type Kind uint8

const (
	// KindNone means the contact did not change in this frame.
	KindNone Kind = iota
	// KindPress marks a new contact (tracking ID assigned).
	KindPress
	// KindMove marks a position change on an existing contact.
	KindMove
	// KindRelease marks a lifted contact (tracking ID cleared).
	KindRelease
)

// String returns a short human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindPress:
		return "press"
	case KindMove:
		return "move"
	case KindRelease:
		return "release"
	default:
		return "none"
	}
}

// Point is the snapshot of one slot at a report boundary.
type Point struct {
	// ID is the slot index the contact occupies.
	ID int
	// X, Y are screen coordinates.
	X, Y int
	// Kind says what changed for this contact in the frame that carries
	// the point; KindNone when nothing did.
	Kind Kind
	// Pressure is the contact pressure, 0..255.
	Pressure uint8
	// Valid reports whether the slot holds a live contact.
	Valid bool
}

// Frame is the decoder output at one report boundary: a value snapshot of
// every slot, safe to hand to other goroutines.
//
// Points always has the decoder's full slot count; unused slots appear as
// invalid entries so that a contact keeps the same index across frames.
// Count equals the number of valid points. A frame whose points all carry
// KindNone is a heartbeat: valid output with no new information.
type Frame struct {
	Points      []Point
	Count       int
	TimestampMS int64
}
