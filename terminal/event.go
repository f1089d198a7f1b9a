package terminal

import (
	"fmt"
	"math/bits"
	"syscall"
)

// EventType is a single-bit event kind
// Built-in kinds occupy the low byte, bits 8-31 are reserved for custom events
type EventType uint32

const (
	EventKey EventType = 1 << iota
	EventMouse
	EventResize
	EventSignal
	EventTimeout
)

const (
	customFirstBit = 8
	customBitCount = 32 - customFirstBit

	eventCustomMask EventType = ^EventType(1<<customFirstBit - 1)
)

// CustomEventType returns the n-th custom event kind, n in [0,23]
func CustomEventType(n int) (EventType, error) {
	if n < 0 || n >= customBitCount {
		return 0, fmt.Errorf("custom event index %d: %w", n, ErrInvalidArgument)
	}
	return EventType(1) << (customFirstBit + n), nil
}

// IsCustom reports whether t is exactly one bit inside the custom range
func (t EventType) IsCustom() bool {
	return t&eventCustomMask != 0 && bits.OnesCount32(uint32(t)) == 1
}

// String returns the kind name, custom kinds as "custom(n)"
func (t EventType) String() string {
	switch t {
	case EventKey:
		return "key"
	case EventMouse:
		return "mouse"
	case EventResize:
		return "resize"
	case EventSignal:
		return "signal"
	case EventTimeout:
		return "timeout"
	}
	if t.IsCustom() {
		return fmt.Sprintf("custom(%d)", bits.TrailingZeros32(uint32(t))-customFirstBit)
	}
	return fmt.Sprintf("invalid(%#x)", uint32(t))
}

// Event is the value returned by Session.Wait
// Concrete types: KeyEvent, MouseEvent, ResizeEvent, SignalEvent, TimeoutEvent, CustomEvent
type Event interface {
	Type() EventType
}

// KeyEvent carries a decoded keypress
type KeyEvent struct {
	Key Key
}

// MouseEvent carries a button press or wheel step at emulator-reported coordinates
type MouseEvent struct {
	Button MouseButton
	X, Y   int
	Mod    Modifier
}

// ResizeEvent carries the terminal size queried after a resize notification
type ResizeEvent struct {
	Width  int
	Height int
}

// SignalEvent carries a signal delivered to the process
type SignalEvent struct {
	Signal syscall.Signal
}

// TimeoutEvent reports that no source became ready within the wait timeout
type TimeoutEvent struct{}

// CustomEvent carries an application event injected with Session.Push
type CustomEvent struct {
	Kind    EventType
	Payload Payload
}

func (KeyEvent) Type() EventType     { return EventKey }
func (MouseEvent) Type() EventType   { return EventMouse }
func (ResizeEvent) Type() EventType  { return EventResize }
func (SignalEvent) Type() EventType  { return EventSignal }
func (TimeoutEvent) Type() EventType { return EventTimeout }
func (e CustomEvent) Type() EventType {
	return e.Kind
}

// MaxPayloadSize is the inline payload bound of a custom event
const MaxPayloadSize = 96

// Payload is a fixed-capacity inline byte payload with value semantics
type Payload struct {
	n    uint8
	data [MaxPayloadSize]byte
}

// NewPayload copies b into a Payload, rejecting input over MaxPayloadSize
func NewPayload(b []byte) (Payload, error) {
	var p Payload
	if len(b) > MaxPayloadSize {
		return p, fmt.Errorf("payload of %d bytes exceeds %d: %w", len(b), MaxPayloadSize, ErrInvalidArgument)
	}
	p.n = uint8(copy(p.data[:], b))
	return p, nil
}

// Len returns the payload size in bytes
func (p Payload) Len() int {
	return int(p.n)
}

// Bytes returns a copy of the payload bytes
func (p Payload) Bytes() []byte {
	out := make([]byte, p.n)
	copy(out, p.data[:p.n])
	return out
}
