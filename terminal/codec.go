package terminal

import (
	"fmt"
	"io"
	"math/bits"
)

// Custom event frame: [bit index][payload length][payload...]
// A full frame stays below PIPE_BUF so one write is atomic
const (
	frameHeaderSize = 2
	maxFrameSize    = frameHeaderSize + MaxPayloadSize
)

// appendFrame encodes a custom event frame onto dst
func appendFrame(dst []byte, kind EventType, p Payload) ([]byte, error) {
	if !kind.IsCustom() {
		return dst, fmt.Errorf("event type %#x is not a custom kind: %w", uint32(kind), ErrInvalidArgument)
	}
	dst = append(dst, byte(bits.TrailingZeros32(uint32(kind))), p.n)
	return append(dst, p.data[:p.n]...), nil
}

// decodeFrameHeader validates a frame header and returns the kind and payload length
func decodeFrameHeader(h [frameHeaderSize]byte) (EventType, int, error) {
	idx := int(h[0])
	if idx < customFirstBit || idx >= customFirstBit+customBitCount {
		return 0, 0, fmt.Errorf("frame bit index %d: %w", idx, ErrUnexpected)
	}
	size := int(h[1])
	if size > MaxPayloadSize {
		return 0, 0, fmt.Errorf("frame length %d: %w", size, ErrUnexpected)
	}
	return EventType(1) << idx, size, nil
}

// readFrame reads one complete frame: the header, then exactly the announced payload
func readFrame(r io.Reader) (CustomEvent, error) {
	var h [frameHeaderSize]byte
	if _, err := io.ReadFull(r, h[:]); err != nil {
		return CustomEvent{}, unexpected("read frame header", err)
	}
	kind, size, err := decodeFrameHeader(h)
	if err != nil {
		return CustomEvent{}, err
	}

	ev := CustomEvent{Kind: kind}
	if _, err := io.ReadFull(r, ev.Payload.data[:size]); err != nil {
		return CustomEvent{}, unexpected("read frame payload", err)
	}
	ev.Payload.n = uint8(size)
	return ev, nil
}
