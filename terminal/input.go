package terminal

import (
	"fmt"
	"time"
	"unicode/utf8"
)

const (
	keyEsc = 0x1b

	// DefaultEscapeTimeout is how long to wait after ESC (and after ESC [ / ESC O)
	// before treating the bytes as a standalone keypress
	DefaultEscapeTimeout = 5 * time.Millisecond

	// maxEscapeLen caps an accumulated CSI/SS3 sequence
	maxEscapeLen = 32
)

// byteSource is the decoder's view of stdin
type byteSource interface {
	// ReadByte blocks until one byte is available
	ReadByte() (byte, error)
	// Ready reports whether a byte arrives within timeout
	Ready(timeout time.Duration) (bool, error)
}

// decoder turns stdin bytes into key and mouse events
// Each call to next consumes exactly one logical input unit
type decoder struct {
	src        byteSource
	profile    *Profile
	escTimeout time.Duration

	seq [maxEscapeLen]byte
}

func newDecoder(src byteSource, p *Profile, escTimeout time.Duration) *decoder {
	if escTimeout <= 0 {
		escTimeout = DefaultEscapeTimeout
	}
	return &decoder{src: src, profile: p, escTimeout: escTimeout}
}

// next decodes one event
// ignore is true when the input was consumed but produced nothing to surface
// (SGR mouse release, unsupported button); the caller should wait again
func (d *decoder) next() (ev Event, ignore bool, err error) {
	b, err := d.src.ReadByte()
	if err != nil {
		return nil, false, unexpected("read input", err)
	}
	if b != keyEsc {
		return d.decodeUTF8(b, false)
	}

	// ESC alone or the start of a sequence
	ok, err := d.src.Ready(d.escTimeout)
	if err != nil {
		return nil, false, unexpected("poll input", err)
	}
	if !ok {
		return KeyEvent{Key: Key{Rune: keyEsc}}, false, nil
	}

	b, err = d.src.ReadByte()
	if err != nil {
		return nil, false, unexpected("read input", err)
	}
	if b != '[' && b != 'O' {
		// Alt+<key>, including Alt+ESC
		return d.decodeUTF8(b, true)
	}

	// Alt+[ and Alt+O arrive as the bare introducer
	ok, err = d.src.Ready(d.escTimeout)
	if err != nil {
		return nil, false, unexpected("poll input", err)
	}
	if !ok {
		return KeyEvent{Key: Key{Rune: rune(b), Alt: true}}, false, nil
	}
	return d.decodeSequence(b)
}

// decodeSequence accumulates a CSI/SS3 sequence through its final byte (0x40-0x7E)
// and resolves it as a mouse report or a profile key
func (d *decoder) decodeSequence(intro byte) (Event, bool, error) {
	seq := append(d.seq[:0], keyEsc, intro)
	for {
		b, err := d.src.ReadByte()
		if err != nil {
			return nil, false, unexpected("read input", err)
		}
		seq = append(seq, b)
		if b >= 0x40 && b <= 0x7e {
			break
		}
		if len(seq) == maxEscapeLen {
			return KeyEvent{Key: Key{Named: KeyUnknown}}, false, nil
		}
		// Stalled mid-sequence: report what arrived as unrecognized
		ok, err := d.src.Ready(d.escTimeout)
		if err != nil {
			return nil, false, unexpected("poll input", err)
		}
		if !ok {
			return KeyEvent{Key: Key{Named: KeyUnknown}}, false, nil
		}
	}

	final := seq[len(seq)-1]
	if intro == '[' && seq[2] == '<' && (final == 'M' || final == 'm') {
		mev, res := parseSGRMouse(seq)
		switch res {
		case mouseEvent:
			return mev, false, nil
		case mouseIgnore:
			return nil, true, nil
		}
	}

	if k, ok := d.profile.KeyName(seq); ok {
		return KeyEvent{Key: Key{Named: k}}, false, nil
	}
	return KeyEvent{Key: Key{Named: KeyUnknown}}, false, nil
}

// decodeUTF8 reads the continuation bytes announced by lead and decodes one codepoint
func (d *decoder) decodeUTF8(lead byte, alt bool) (Event, bool, error) {
	n := utf8SeqLen(lead)
	if n == 0 {
		return nil, false, fmt.Errorf("lead byte %#x: %w", lead, ErrInvalidEncoding)
	}

	var buf [utf8.UTFMax]byte
	buf[0] = lead
	// Continuation bytes may arrive in a later read, so they are not bound by the escape timeout
	for i := 1; i < n; i++ {
		b, err := d.src.ReadByte()
		if err != nil {
			return nil, false, unexpected("read input", err)
		}
		buf[i] = b
	}

	// Invalid, overlong and surrogate encodings decode short
	r, size := utf8.DecodeRune(buf[:n])
	if size != n {
		return nil, false, fmt.Errorf("sequence % x: %w", buf[:n], ErrInvalidEncoding)
	}
	return KeyEvent{Key: Key{Rune: r, Alt: alt}}, false, nil
}

// utf8SeqLen returns expected UTF-8 sequence length from lead byte
// Returns 0 for continuation bytes and invalid leads
func utf8SeqLen(b byte) int {
	switch {
	case b < 0x80:
		return 1
	case b&0xe0 == 0xc0:
		return 2
	case b&0xf0 == 0xe0:
		return 3
	case b&0xf8 == 0xf0:
		return 4
	default:
		return 0
	}
}
