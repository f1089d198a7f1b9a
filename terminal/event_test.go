package terminal

import (
	"bytes"
	"strings"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomEventType(t *testing.T) {
	first, err := CustomEventType(0)
	require.NoError(t, err)
	assert.Equal(t, EventType(1<<8), first)
	assert.True(t, first.IsCustom())
	assert.Equal(t, "custom(0)", first.String())

	last, err := CustomEventType(23)
	require.NoError(t, err)
	assert.Equal(t, EventType(1<<31), last)
	assert.Equal(t, "custom(23)", last.String())

	_, err = CustomEventType(24)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	_, err = CustomEventType(-1)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestEventType_IsCustom(t *testing.T) {
	for _, builtin := range []EventType{EventKey, EventMouse, EventResize, EventSignal, EventTimeout} {
		assert.False(t, builtin.IsCustom(), builtin.String())
	}
	for n := 0; n < customBitCount; n++ {
		assert.True(t, (EventType(1) << (customFirstBit + n)).IsCustom(), "bit %d", customFirstBit+n)
	}
	for bit := 0; bit < customFirstBit; bit++ {
		assert.False(t, (EventType(1) << bit).IsCustom(), "bit %d", bit)
	}
	assert.Equal(t, EventType(0xFFFFFF00), eventCustomMask)
	assert.False(t, EventType(0).IsCustom())
	assert.False(t, EventType(1<<8|1<<9).IsCustom())
	assert.False(t, EventType(1<<8|EventKey).IsCustom())
	assert.True(t, strings.HasPrefix(EventType(1<<8|1<<9).String(), "invalid"))
}

func TestEvent_Types(t *testing.T) {
	kind, _ := CustomEventType(5)
	assert.Equal(t, EventKey, KeyEvent{}.Type())
	assert.Equal(t, EventMouse, MouseEvent{}.Type())
	assert.Equal(t, EventResize, ResizeEvent{}.Type())
	assert.Equal(t, EventSignal, SignalEvent{Signal: syscall.SIGINT}.Type())
	assert.Equal(t, EventTimeout, TimeoutEvent{}.Type())
	assert.Equal(t, kind, CustomEvent{Kind: kind}.Type())
}

func TestPayload(t *testing.T) {
	p, err := NewPayload([]byte("abc"))
	require.NoError(t, err)
	assert.Equal(t, 3, p.Len())
	assert.Equal(t, []byte("abc"), p.Bytes())

	// Bytes hands out a copy
	b := p.Bytes()
	b[0] = 'z'
	assert.Equal(t, []byte("abc"), p.Bytes())

	full, err := NewPayload(bytes.Repeat([]byte{7}, MaxPayloadSize))
	require.NoError(t, err)
	assert.Equal(t, MaxPayloadSize, full.Len())

	_, err = NewPayload(make([]byte, MaxPayloadSize+1))
	assert.ErrorIs(t, err, ErrInvalidArgument)

	empty, err := NewPayload(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Len())
	assert.Empty(t, empty.Bytes())
}

func TestFrame_RoundTrip(t *testing.T) {
	kind, _ := CustomEventType(3)
	p, _ := NewPayload([]byte{1, 2, 3, 4, 5, 6, 7, 8})

	frame, err := appendFrame(nil, kind, p)
	require.NoError(t, err)
	assert.Len(t, frame, frameHeaderSize+8)
	assert.LessOrEqual(t, len(frame), maxFrameSize)

	// Two frames back to back decode independently
	frame, err = appendFrame(frame, kind, Payload{})
	require.NoError(t, err)

	r := bytes.NewReader(frame)
	ev, err := readFrame(r)
	require.NoError(t, err)
	assert.Equal(t, kind, ev.Kind)
	assert.Equal(t, p, ev.Payload)

	ev, err = readFrame(r)
	require.NoError(t, err)
	assert.Equal(t, kind, ev.Kind)
	assert.Equal(t, 0, ev.Payload.Len())
	assert.Equal(t, 0, r.Len())
}

func TestFrame_RejectsBuiltinKind(t *testing.T) {
	_, err := appendFrame(nil, EventKey, Payload{})
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestFrame_CorruptHeader(t *testing.T) {
	tests := []struct {
		name   string
		header [frameHeaderSize]byte
	}{
		{"builtin bit", [2]byte{2, 0}},
		{"bit out of range", [2]byte{32, 0}},
		{"oversized length", [2]byte{8, MaxPayloadSize + 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := decodeFrameHeader(tt.header)
			assert.ErrorIs(t, err, ErrUnexpected)
		})
	}
}

func TestFrame_Truncated(t *testing.T) {
	_, err := readFrame(bytes.NewReader([]byte{8, 4, 'a'}))
	assert.ErrorIs(t, err, ErrUnexpected)

	_, err = readFrame(bytes.NewReader([]byte{8}))
	assert.ErrorIs(t, err, ErrUnexpected)
}

func TestKey_String(t *testing.T) {
	tests := []struct {
		key  Key
		want string
	}{
		{Key{Rune: 'a'}, "a"},
		{Key{Rune: 'a', Alt: true}, "Alt+a"},
		{Key{Rune: RuneEscape}, "escape"},
		{Key{Rune: RuneEscape, Alt: true}, "Alt+escape"},
		{Key{Rune: RuneCtrlC}, "ctrl_c"},
		{Key{Rune: 0}, "ctrl_space"},
		{Key{Rune: RuneEnter}, "enter"},
		{Key{Rune: RuneTab}, "tab"},
		{Key{Rune: RuneBackspace}, "backspace"},
		{Key{Named: KeyPageUp}, "page_up"},
		{Key{Named: KeyUnknown}, "unknown"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.key.String())
	}
}

func TestParseNamedKey(t *testing.T) {
	for k := KeyF1; k <= KeyUnknown; k++ {
		got, ok := ParseNamedKey(k.String())
		require.True(t, ok, k.String())
		assert.Equal(t, k, got)
	}
	_, ok := ParseNamedKey("none")
	assert.False(t, ok)
	assert.Equal(t, "none", KeyNone.String())
}

func TestMouseButton_String(t *testing.T) {
	assert.Equal(t, "Left", MouseBtnLeft.String())
	assert.Equal(t, "WheelDown", MouseBtnWheelDown.String())
	assert.Equal(t, "None", MouseBtnNone.String())
}
