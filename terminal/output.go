// @lixen: #focus{sys[term,io,output]}
// @lixen: #interact{trigger[output,ansi]}
package terminal

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// SizeFunc reports the current terminal size in columns and rows
type SizeFunc func() (width, height int, err error)

// colorFuncs groups the fidelity levels of one color layer
type colorFuncs struct {
	rgb, c256, c8, def Function
}

var (
	fgFuncs = colorFuncs{rgb: FuncFgRGB, c256: FuncFgC256, c8: FuncFgC8, def: FuncFgDefault}
	bgFuncs = colorFuncs{rgb: FuncBgRGB, c256: FuncBgC256, c8: FuncBgC8, def: FuncBgDefault}
)

// styleFuncs is indexed by Attr bit position
var styleFuncs = [8]Function{
	FuncStyleBold,
	FuncStyleFaint,
	FuncStyleItalic,
	FuncStyleUnderline,
	FuncStyleBlink,
	FuncStyleReverse,
	FuncStyleHidden,
	FuncStyleStrikethrough,
}

// Renderer turns text and graphics requests into profile escape sequences
// Not safe for concurrent use
type Renderer struct {
	profile *Profile
	depth   ColorDepth
	w       io.Writer
	buf     *Buffer // nil when unbuffered
	size    SizeFunc

	scratch []byte
}

// NewRenderer creates a renderer writing to w
func NewRenderer(w io.Writer, p *Profile, depth ColorDepth, size SizeFunc) *Renderer {
	return &Renderer{
		profile: p,
		depth:   depth,
		w:       w,
		size:    size,
		scratch: make([]byte, 0, 64),
	}
}

// Profile returns the profile in use
func (r *Renderer) Profile() *Profile {
	return r.profile
}

// Depth returns the color depth in use
func (r *Renderer) Depth() ColorDepth {
	return r.depth
}

// Write emits text at the cursor with the requested graphics state
// Returns the attribute bits the terminal supports out of gfx.Attr
func (r *Renderer) Write(text string, gfx GFX) (Attr, error) {
	if err := r.exec(FuncGfxReset); err != nil {
		return AttrNone, err
	}
	applied, err := r.setGFX(gfx)
	if err != nil {
		return applied, err
	}

	for {
		i := strings.IndexByte(text, '\n')
		if i < 0 {
			break
		}
		// Reset before the newline so the next row is not painted with the current background
		if err := r.emitString(text[:i]); err != nil {
			return applied, err
		}
		if err := r.exec(FuncGfxReset); err != nil {
			return applied, err
		}
		if err := r.emitString("\n"); err != nil {
			return applied, err
		}
		if _, err := r.setGFX(gfx); err != nil {
			return applied, err
		}
		text = text[i+1:]
	}

	return applied, r.emitString(text)
}

// WriteAt moves the cursor to the 0-based cell (x, y) and writes text there
func (r *Renderer) WriteAt(text string, gfx GFX, x, y int) (Attr, error) {
	if err := r.moveCursor(x, y); err != nil {
		return AttrNone, err
	}
	return r.Write(text, gfx)
}

// WriteRune writes a single codepoint
// Surrogate halves and values above U+10FFFF fail with ErrInvalidEncoding
func (r *Renderer) WriteRune(ch rune, gfx GFX) (Attr, error) {
	if !utf8.ValidRune(ch) {
		return AttrNone, fmt.Errorf("rune %#x: %w", ch, ErrInvalidEncoding)
	}
	var b [utf8.UTFMax]byte
	n := utf8.EncodeRune(b[:], ch)
	return r.Write(string(b[:n]), gfx)
}

// WriteRuneAt writes a single codepoint at the 0-based cell (x, y)
func (r *Renderer) WriteRuneAt(ch rune, gfx GFX, x, y int) (Attr, error) {
	if !utf8.ValidRune(ch) {
		return AttrNone, fmt.Errorf("rune %#x: %w", ch, ErrInvalidEncoding)
	}
	if err := r.moveCursor(x, y); err != nil {
		return AttrNone, err
	}
	return r.WriteRune(ch, gfx)
}

// moveCursor bounds-checks (x, y) against a fresh size query and moves there
func (r *Renderer) moveCursor(x, y int) error {
	if r.size == nil {
		return fmt.Errorf("no size source: %w", ErrUnexpected)
	}
	w, h, err := r.size()
	if err != nil {
		return err
	}
	if x < 0 || y < 0 || x >= w || y >= h {
		return fmt.Errorf("cell (%d,%d) in %dx%d: %w", x, y, w, h, ErrOutOfBounds)
	}
	return r.exec(FuncCursorMove, y+1, x+1)
}

// CursorShow makes the cursor visible
func (r *Renderer) CursorShow() error { return r.exec(FuncCursorShow) }

// CursorHide hides the cursor
func (r *Renderer) CursorHide() error { return r.exec(FuncCursorHide) }

// AltBufferEnter switches to the alternate screen
func (r *Renderer) AltBufferEnter() error { return r.exec(FuncAltBufferEnter) }

// AltBufferExit returns to the main screen
func (r *Renderer) AltBufferExit() error { return r.exec(FuncAltBufferExit) }

// MouseEnable turns on SGR mouse reporting
func (r *Renderer) MouseEnable() error { return r.exec(FuncMouseEnable) }

// MouseDisable turns off SGR mouse reporting
func (r *Renderer) MouseDisable() error { return r.exec(FuncMouseDisable) }

// EraseScreen clears the screen with the default background
func (r *Renderer) EraseScreen() error { return r.erase(FuncEraseScreen) }

// EraseScrollback clears the scrollback with the default background
func (r *Renderer) EraseScrollback() error { return r.erase(FuncEraseScrollback) }

// EraseLine clears the cursor line with the default background
func (r *Renderer) EraseLine() error { return r.erase(FuncEraseLine) }

func (r *Renderer) erase(f Function) error {
	if err := r.setColor(DefaultColor, bgFuncs); err != nil {
		return err
	}
	return r.exec(f)
}

// EnableBuffer routes output through a bounded buffer of the given capacity
func (r *Renderer) EnableBuffer(capacity int) error {
	if capacity <= 0 {
		return fmt.Errorf("buffer capacity %d: %w", capacity, ErrInvalidArgument)
	}
	if r.buf != nil {
		return ErrAlreadyBuffered
	}
	r.buf = NewBuffer(r.w, capacity)
	return nil
}

// EnableGrowableBuffer routes output through a buffer growing up to limit bytes
func (r *Renderer) EnableGrowableBuffer(initial, limit int) error {
	if initial < 0 || limit < 0 || (limit > 0 && initial > limit) {
		return fmt.Errorf("buffer size %d limit %d: %w", initial, limit, ErrInvalidArgument)
	}
	if r.buf != nil {
		return ErrAlreadyBuffered
	}
	r.buf = NewGrowableBuffer(r.w, initial, limit)
	return nil
}

// DisableBuffer returns to unbuffered output
// With BufferKeep the pending bytes are returned to the caller unwritten
func (r *Renderer) DisableBuffer(action BufferAction) ([]byte, error) {
	if r.buf == nil {
		return nil, nil
	}
	b := r.buf
	r.buf = nil

	switch action {
	case BufferKeep:
		kept := make([]byte, b.Len())
		copy(kept, b.Bytes())
		return kept, nil
	case BufferFlush:
		return nil, b.Flush()
	default:
		return nil, nil
	}
}

// Buffered reports the pending byte count, 0 when unbuffered
func (r *Renderer) Buffered() int {
	if r.buf == nil {
		return 0
	}
	return r.buf.Len()
}

// Flush writes any buffered output
func (r *Renderer) Flush() error {
	if r.buf == nil {
		return nil
	}
	return r.buf.Flush()
}

// setGFX applies colors then attributes, returning the attributes that took effect
func (r *Renderer) setGFX(gfx GFX) (Attr, error) {
	if err := r.setColor(gfx.Fg, fgFuncs); err != nil {
		return AttrNone, err
	}
	if err := r.setColor(gfx.Bg, bgFuncs); err != nil {
		return AttrNone, err
	}

	var applied Attr
	for i, f := range styleFuncs {
		bit := Attr(1) << i
		if gfx.Attr&bit == 0 {
			continue
		}
		err := r.exec(f)
		if err == nil {
			applied |= bit
			continue
		}
		if !errors.Is(err, ErrFunctionNotSupported) {
			return applied, err
		}
	}
	return applied, nil
}

// setColor emits the highest-fidelity form the profile supports, starting at the
// resolved depth and stepping down to the default color escape
func (r *Renderer) setColor(c Color, fn colorFuncs) error {
	if c.IsDefault() {
		return r.exec(fn.def)
	}

	var err error
	switch r.depth {
	case DepthTrueColor:
		err = r.exec(fn.rgb, int(c.rgb.R), int(c.rgb.G), int(c.rgb.B))
		if !errors.Is(err, ErrFunctionNotSupported) {
			return err
		}
		fallthrough
	case Depth256:
		err = r.exec(fn.c256, int(c.c256))
		if !errors.Is(err, ErrFunctionNotSupported) {
			return err
		}
		fallthrough
	default:
		err = r.exec(fn.c8, int(c.c8))
		if !errors.Is(err, ErrFunctionNotSupported) {
			return err
		}
	}
	return r.exec(fn.def)
}

// exec expands and emits the profile sequence for f
func (r *Renderer) exec(f Function, args ...int) error {
	t, ok := r.profile.FunctionSequence(f)
	if !ok {
		return fmt.Errorf("%s: %w", f, ErrFunctionNotSupported)
	}
	r.scratch = t.Expand(r.scratch[:0], args...)
	return r.emit(r.scratch)
}

func (r *Renderer) emit(p []byte) error {
	if r.buf != nil {
		return r.buf.Append(p)
	}
	if _, err := r.w.Write(p); err != nil {
		return unexpected("write", err)
	}
	return nil
}

func (r *Renderer) emitString(s string) error {
	if len(s) == 0 {
		return nil
	}
	if r.buf != nil {
		return r.buf.AppendString(s)
	}
	if _, err := io.WriteString(r.w, s); err != nil {
		return unexpected("write", err)
	}
	return nil
}
