package frames

import (
	"testing"

	"github.com/godbus/dbus/v5"
	"github.com/stretchr/testify/assert"

	"panelkit/internal/touch"
)

// The godbus bus constructors must stay assignable to NewPublisher's
// connect parameter.
var (
	_ func(...dbus.ConnOption) (*dbus.Conn, error) = dbus.ConnectSessionBus
	_ func(...dbus.ConnOption) (*dbus.Conn, error) = dbus.ConnectSystemBus
)

func TestToWire(t *testing.T) {
	frame := touch.Frame{
		Points: []touch.Point{
			{ID: 0, X: 120, Y: 400, Kind: touch.KindPress, Pressure: 80, Valid: true},
			{ID: 1, Kind: touch.KindNone},
		},
		Count:       1,
		TimestampMS: 5250,
	}

	wire := toWire(frame)
	assert.Equal(t, int32(1), wire.Count)
	assert.Equal(t, int64(5250), wire.TimestampMS)
	assert.Len(t, wire.Points, 2)

	assert.Equal(t, int32(0), wire.Points[0].ID)
	assert.Equal(t, int32(120), wire.Points[0].X)
	assert.Equal(t, int32(400), wire.Points[0].Y)
	assert.Equal(t, uint8(touch.KindPress), wire.Points[0].Kind)
	assert.Equal(t, uint8(80), wire.Points[0].Pressure)
	assert.True(t, wire.Points[0].Valid)

	assert.Equal(t, int32(1), wire.Points[1].ID)
	assert.Equal(t, uint8(touch.KindNone), wire.Points[1].Kind)
	assert.False(t, wire.Points[1].Valid)
}

func TestToWireEmptyFrame(t *testing.T) {
	wire := toWire(touch.Frame{})
	assert.Empty(t, wire.Points)
	assert.Equal(t, int32(0), wire.Count)
}
