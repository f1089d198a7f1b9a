package terminal

import (
	"fmt"
	"io"
)

// BufferAction selects what happens to pending bytes when buffering is disabled
type BufferAction uint8

const (
	BufferKeep    BufferAction = iota // Hand pending bytes back to the caller
	BufferDiscard                     // Drop pending bytes
	BufferFlush                       // Write pending bytes out
)

// Buffer accumulates output bytes for a single write per flush
// Invariant: Len() <= Cap()
type Buffer struct {
	w     io.Writer
	data  []byte
	grow  bool
	limit int // growable only, 0 = unlimited
}

// NewBuffer creates a bounded buffer of the given capacity over w
func NewBuffer(w io.Writer, capacity int) *Buffer {
	return &Buffer{w: w, data: make([]byte, 0, capacity)}
}

// NewGrowableBuffer creates a buffer that grows on demand up to limit bytes
// A zero limit leaves growth unbounded
func NewGrowableBuffer(w io.Writer, initial, limit int) *Buffer {
	return &Buffer{w: w, data: make([]byte, 0, initial), grow: true, limit: limit}
}

// Len returns the number of pending bytes
func (b *Buffer) Len() int {
	return len(b.data)
}

// Cap returns the current capacity
func (b *Buffer) Cap() int {
	return cap(b.data)
}

// Bytes returns the pending bytes; valid until the next mutation
func (b *Buffer) Bytes() []byte {
	return b.data
}

// Reset discards pending bytes
func (b *Buffer) Reset() {
	b.data = b.data[:0]
}

// Append queues p for output
// Bounded: flushes first when p does not fit the remaining space, and writes p
// directly when it exceeds the whole capacity
// Growable: enlarges the backing array, failing with ErrAllocationFailure past the limit
func (b *Buffer) Append(p []byte) error {
	if len(b.data)+len(p) <= cap(b.data) {
		b.data = append(b.data, p...)
		return nil
	}

	if b.grow {
		if err := b.reserve(len(p)); err != nil {
			return err
		}
		b.data = append(b.data, p...)
		return nil
	}

	if err := b.Flush(); err != nil {
		return err
	}
	if len(p) <= cap(b.data) {
		b.data = append(b.data, p...)
		return nil
	}
	if _, err := b.w.Write(p); err != nil {
		return unexpected("write", err)
	}
	return nil
}

// AppendString is Append for string data
func (b *Buffer) AppendString(s string) error {
	if len(b.data)+len(s) <= cap(b.data) {
		b.data = append(b.data, s...)
		return nil
	}
	return b.Append([]byte(s))
}

// reserve grows capacity to hold n more bytes
func (b *Buffer) reserve(n int) error {
	need := len(b.data) + n
	newCap := max(2*cap(b.data), need)
	if b.limit > 0 && newCap > b.limit {
		if need > b.limit {
			return fmt.Errorf("grow to %d bytes, limit %d: %w", need, b.limit, ErrAllocationFailure)
		}
		newCap = b.limit
	}
	grown := make([]byte, len(b.data), newCap)
	copy(grown, b.data)
	b.data = grown
	return nil
}

// Flush writes pending bytes in one write and empties the buffer
func (b *Buffer) Flush() error {
	if len(b.data) == 0 {
		return nil
	}
	_, err := b.w.Write(b.data)
	b.data = b.data[:0]
	if err != nil {
		return unexpected("flush", err)
	}
	return nil
}
