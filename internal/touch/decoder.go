package touch

import (
	"panelkit/internal/evdev"
)

// Defaults matching the reference panel (FT6236 on a 480x800 display).
const (
	DefaultMaxPoints    = 2
	DefaultScreenWidth  = 480
	DefaultScreenHeight = 800
)

// AxisRange is the calibrated raw range of one absolute axis. A zero or
// inverted range means "uncalibrated" and selects the fixed-resolution
// scaling fallback.
type AxisRange struct {
	Min, Max int32
}

func (r AxisRange) valid() bool { return r.Max > r.Min }

// Config parameterizes a Decoder for one physical device.
type Config struct {
	// MaxPoints is the number of simultaneous contacts to track
	// (DefaultMaxPoints when zero).
	MaxPoints int
	// ScreenWidth and ScreenHeight are the target extents raw coordinates
	// are rescaled into (panel defaults when zero).
	ScreenWidth, ScreenHeight int
	// BoundsX and BoundsY are the calibrated raw axis ranges from the
	// device probe; leave zero to use the fixed-resolution fallback.
	BoundsX, BoundsY AxisRange
}

// slot is one contact's working state between report boundaries. Axis
// updates accumulate last-write-wins; pending records what changed since
// the previous boundary and is the only field a boundary resets.
type slot struct {
	trackingID int32
	hasID      bool
	x, y       int
	pressure   uint8
	valid      bool
	pending    Kind
}

// Decoder turns raw evdev events into touch Frames.
//
// One Decoder exists per physical device and owns its slot table outright:
// it holds no locks because it is never fed from two goroutines. Callers
// that hand frames to another goroutine rely on Feed returning value
// copies.
//
// Events must be fed in exact arrival order; the kernel guarantees ordering
// across reports and the decoder has no way to recover from reordered or
// dropped events.
type Decoder struct {
	slots   []slot
	current int // slot index subsequent axis events apply to; persists across frames

	screenW, screenH int
	boundsX, boundsY AxisRange

	last    Frame
	hasLast bool
}

// NewDecoder creates a decoder with pre-allocated slot state.
func NewDecoder(cfg Config) *Decoder {
	if cfg.MaxPoints <= 0 {
		cfg.MaxPoints = DefaultMaxPoints
	}
	if cfg.ScreenWidth <= 0 {
		cfg.ScreenWidth = DefaultScreenWidth
	}
	if cfg.ScreenHeight <= 0 {
		cfg.ScreenHeight = DefaultScreenHeight
	}
	return &Decoder{
		slots:   make([]slot, cfg.MaxPoints),
		screenW: cfg.ScreenWidth,
		screenH: cfg.ScreenHeight,
		boundsX: cfg.BoundsX,
		boundsY: cfg.BoundsY,
	}
}

// Feed processes a batch of events in order and returns the frames emitted
// at the report boundaries the batch contains. A batch with no boundary
// returns nil: slot state accumulates silently until one is seen. Feeding
// an empty batch is a no-op.
//
// Feed never fails: out-of-range values are clamped, unknown event types
// and codes are ignored.
func (d *Decoder) Feed(events []evdev.Event) []Frame {
	var frames []Frame
	for _, ev := range events {
		switch ev.Type {
		case evdev.EvAbs:
			d.handleAbs(ev)
		case evdev.EvSyn:
			if ev.Code == evdev.SynReport {
				frames = append(frames, d.emit(ev.TimestampMS()))
			}
		}
	}
	return frames
}

// Latest returns the most recent emitted frame, for callers that poll
// rather than consume Feed's return value. ok is false before the first
// boundary.
func (d *Decoder) Latest() (frame Frame, ok bool) {
	return d.last, d.hasLast
}

func (d *Decoder) handleAbs(ev evdev.Event) {
	switch ev.Code {
	case evdev.AbsMTSlot:
		idx := int(ev.Value)
		if idx < 0 || idx >= len(d.slots) {
			// Malformed or out-of-range selection: fall back to slot 0
			// instead of rejecting, so short reports cannot wedge the
			// decoder.
			idx = 0
		}
		d.current = idx

	case evdev.AbsMTTrackingID:
		s := &d.slots[d.current]
		if ev.Value < 0 {
			s.valid = false
			s.hasID = false
			s.pending = KindRelease
		} else {
			// A reassignment to a new ID without an intervening release
			// is deliberately treated as a plain press; the old contact's
			// release is not synthesized.
			s.valid = true
			s.hasID = true
			s.trackingID = ev.Value
			s.pending = KindPress
		}

	case evdev.AbsMTPositionX, evdev.AbsX:
		s := &d.slots[d.current]
		s.x = d.mapAxis(ev.Value, d.boundsX, d.screenW)
		// Recorded even while the slot is invalid so coordinates are
		// right when the press arrives later in the same report; a press
		// already pending is not downgraded to a move.
		if s.valid && s.pending != KindPress {
			s.pending = KindMove
		}

	case evdev.AbsMTPositionY, evdev.AbsY:
		s := &d.slots[d.current]
		s.y = d.mapAxis(ev.Value, d.boundsY, d.screenH)
		if s.valid && s.pending != KindPress {
			s.pending = KindMove
		}

	case evdev.AbsMTPressure, evdev.AbsPressure:
		v := ev.Value
		if v < 0 {
			v = 0
		}
		if v > 255 {
			v = 255
		}
		d.slots[d.current].pressure = uint8(v)
	}
}

func (d *Decoder) mapAxis(raw int32, bounds AxisRange, extent int) int {
	if bounds.valid() {
		return Scale(raw, bounds.Min, bounds.Max, extent)
	}
	return ScaleFixed(raw, extent)
}

// emit assembles the frame for a report boundary and resets each slot's
// pending kind. Everything else (validity, tracking ID, coordinates,
// pressure) persists into the next report.
func (d *Decoder) emit(timestampMS int64) Frame {
	frame := Frame{
		Points:      make([]Point, len(d.slots)),
		TimestampMS: timestampMS,
	}
	for i := range d.slots {
		s := &d.slots[i]
		frame.Points[i] = Point{
			ID:       i,
			X:        s.x,
			Y:        s.y,
			Kind:     s.pending,
			Pressure: s.pressure,
			Valid:    s.valid,
		}
		if s.valid {
			frame.Count++
		}
		s.pending = KindNone
	}
	// Latest gets its own Points copy so neither snapshot can be edited
	// through the other.
	d.last = frame
	d.last.Points = append([]Point(nil), frame.Points...)
	d.hasLast = true
	return frame
}
