//go:build linux

package evdev

import (
	"bytes"
	"encoding/binary"

	"golang.org/x/sys/unix"
)

// rawEvent matches the kernel input_event struct for this architecture.
// The timeval fields are 32-bit on 32-bit ARM targets and 64-bit elsewhere,
// which unix.Timeval tracks for us.
type rawEvent struct {
	Time  unix.Timeval
	Type  uint16
	Code  uint16
	Value int32
}

// EventSize is the wire size of one input_event record on this platform.
var EventSize = binary.Size(rawEvent{})

// DecodeEvents parses a buffer returned by a read on an evdev fd into
// events. A trailing partial record is ignored; the kernel only ever
// returns whole records, so a short tail indicates a caller bug rather
// than stream corruption.
func DecodeEvents(buf []byte) []Event {
	n := len(buf) / EventSize
	if n == 0 {
		return nil
	}
	events := make([]Event, 0, n)
	r := bytes.NewReader(buf[:n*EventSize])
	for i := 0; i < n; i++ {
		var raw rawEvent
		if err := binary.Read(r, binary.LittleEndian, &raw); err != nil {
			break
		}
		events = append(events, Event{
			Sec:   int64(raw.Time.Sec),
			Usec:  int64(raw.Time.Usec),
			Type:  raw.Type,
			Code:  raw.Code,
			Value: raw.Value,
		})
	}
	return events
}
