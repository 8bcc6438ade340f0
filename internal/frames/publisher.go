// Package frames publishes decoded touch frames on D-Bus so UI processes
// can consume touch data without opening the input device themselves.
//
// The daemon exports one object:
//
//	name      dev.panelkit.TouchPanel
//	path      /dev/panelkit/TouchPanel
//	interface dev.panelkit.TouchPanel
//	  method  GetLatest() -> (frame)
//	  signal  FrameReceived(frame)
//
// Frames cross the bus as flat structs; points are transmitted for every
// slot, invalid ones included, so the signal shape is fixed.
package frames

import (
	"fmt"
	"sync"

	"github.com/godbus/dbus/v5"

	"panelkit/internal/touch"
)

// D-Bus identity constants.
const (
	BusName    = "dev.panelkit.TouchPanel"
	ObjectPath = dbus.ObjectPath("/dev/panelkit/TouchPanel")
	Interface  = "dev.panelkit.TouchPanel"
)

// WirePoint is one contact snapshot in bus representation.
type WirePoint struct {
	ID       int32
	X        int32
	Y        int32
	Kind     uint8
	Pressure uint8
	Valid    bool
}

// WireFrame is a touch frame in bus representation.
type WireFrame struct {
	Points      []WirePoint
	Count       int32
	TimestampMS int64
}

// Publisher owns the bus connection and the exported object.
type Publisher struct {
	conn *dbus.Conn

	mu     sync.RWMutex
	latest WireFrame
	has    bool
}

// NewPublisher connects to the given bus and claims the panelkit name.
// connect is typically dbus.ConnectSessionBus or dbus.ConnectSystemBus.
func NewPublisher(connect func(...dbus.ConnOption) (*dbus.Conn, error)) (*Publisher, error) {
	conn, err := connect()
	if err != nil {
		return nil, fmt.Errorf("connect bus: %w", err)
	}

	p := &Publisher{conn: conn}
	if err := conn.Export(p, ObjectPath, Interface); err != nil {
		conn.Close()
		return nil, fmt.Errorf("export object: %w", err)
	}

	reply, err := conn.RequestName(BusName, dbus.NameFlagDoNotQueue)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("request name: %w", err)
	}
	if reply != dbus.RequestNameReplyPrimaryOwner {
		conn.Close()
		return nil, fmt.Errorf("bus name %s already taken", BusName)
	}
	return p, nil
}

// Publish stores a frame as the latest and emits the FrameReceived signal.
func (p *Publisher) Publish(frame touch.Frame) error {
	wire := toWire(frame)

	p.mu.Lock()
	p.latest = wire
	p.has = true
	p.mu.Unlock()

	return p.conn.Emit(ObjectPath, Interface+".FrameReceived", wire)
}

// GetLatest is the exported D-Bus method returning the most recent frame.
func (p *Publisher) GetLatest() (WireFrame, *dbus.Error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if !p.has {
		return WireFrame{}, dbus.NewError(Interface+".NoFrame", nil)
	}
	return p.latest, nil
}

// Close releases the bus name and connection.
func (p *Publisher) Close() error {
	if _, err := p.conn.ReleaseName(BusName); err != nil {
		p.conn.Close()
		return err
	}
	return p.conn.Close()
}

func toWire(frame touch.Frame) WireFrame {
	wire := WireFrame{
		Points:      make([]WirePoint, len(frame.Points)),
		Count:       int32(frame.Count),
		TimestampMS: frame.TimestampMS,
	}
	for i, pt := range frame.Points {
		wire.Points[i] = WirePoint{
			ID:       int32(pt.ID),
			X:        int32(pt.X),
			Y:        int32(pt.Y),
			Kind:     uint8(pt.Kind),
			Pressure: pt.Pressure,
			Valid:    pt.Valid,
		}
	}
	return wire
}
