//go:build linux

package evdev

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golang.org/x/sys/unix"
)

func encodeEvents(t *testing.T, events []rawEvent) []byte {
	t.Helper()
	var buf bytes.Buffer
	for _, ev := range events {
		require.NoError(t, binary.Write(&buf, binary.LittleEndian, &ev))
	}
	return buf.Bytes()
}

func TestDecodeEvents(t *testing.T) {
	raw := []rawEvent{
		{Time: unix.Timeval{Sec: 5, Usec: 250000}, Type: EvAbs, Code: AbsMTTrackingID, Value: 12},
		{Time: unix.Timeval{Sec: 5, Usec: 250000}, Type: EvAbs, Code: AbsMTPositionX, Value: 1000},
		{Time: unix.Timeval{Sec: 5, Usec: 250000}, Type: EvSyn, Code: SynReport, Value: 0},
	}
	events := DecodeEvents(encodeEvents(t, raw))
	require.Len(t, events, 3)

	assert.Equal(t, EvAbs, events[0].Type)
	assert.Equal(t, AbsMTTrackingID, events[0].Code)
	assert.Equal(t, int32(12), events[0].Value)
	assert.Equal(t, int64(5), events[0].Sec)
	assert.Equal(t, int64(250000), events[0].Usec)
	assert.Equal(t, int64(5250), events[0].TimestampMS())

	assert.Equal(t, EvSyn, events[2].Type)
	assert.Equal(t, SynReport, events[2].Code)
}

func TestDecodeEventsNegativeValue(t *testing.T) {
	buf := encodeEvents(t, []rawEvent{
		{Type: EvAbs, Code: AbsMTTrackingID, Value: -1},
	})
	events := DecodeEvents(buf)
	require.Len(t, events, 1)
	assert.Equal(t, int32(-1), events[0].Value)
}

func TestDecodeEventsIgnoresPartialTail(t *testing.T) {
	buf := encodeEvents(t, []rawEvent{
		{Type: EvSyn, Code: SynReport},
		{Type: EvSyn, Code: SynReport},
	})
	events := DecodeEvents(buf[:len(buf)-3])
	assert.Len(t, events, 1)
}

func TestDecodeEventsEmpty(t *testing.T) {
	assert.Nil(t, DecodeEvents(nil))
	assert.Nil(t, DecodeEvents(make([]byte, EventSize-1)))
}
