package terminal

// Function names a terminal operation whose escape sequence varies per profile
type Function uint8

const (
	FuncCursorShow Function = iota
	FuncCursorHide
	FuncCursorMove // row;col, 1-based

	FuncFgC8
	FuncFgC256
	FuncFgRGB
	FuncFgDefault
	FuncBgC8
	FuncBgC256
	FuncBgRGB
	FuncBgDefault

	// Style functions, in Attr bit order
	FuncStyleBold
	FuncStyleFaint
	FuncStyleItalic
	FuncStyleUnderline
	FuncStyleBlink
	FuncStyleReverse
	FuncStyleHidden
	FuncStyleStrikethrough

	FuncGfxReset

	FuncEraseScreen
	FuncEraseScrollback
	FuncEraseLine

	FuncAltBufferEnter
	FuncAltBufferExit

	FuncMouseEnable
	FuncMouseDisable

	funcCount
)

var functionNames = [funcCount]string{
	"cursor_show", "cursor_hide", "cursor_move",
	"fg_c8", "fg_c256", "fg_rgb", "fg_default",
	"bg_c8", "bg_c256", "bg_rgb", "bg_default",
	"style_bold", "style_faint", "style_italic", "style_underline",
	"style_blink", "style_reverse", "style_hidden", "style_strikethrough",
	"gfx_reset",
	"erase_screen", "erase_scrollback", "erase_line",
	"alt_buffer_enter", "alt_buffer_exit",
	"mouse_enable", "mouse_disable",
}

// String returns the function name
func (f Function) String() string {
	if f < funcCount {
		return functionNames[f]
	}
	return "invalid"
}

// Profile is the immutable escape-sequence description of one terminal family
type Profile struct {
	name  string
	keys  map[string]NamedKey
	funcs map[Function]Template
}

// newProfile builds a profile from its key and function tables
func newProfile(name string, keys map[NamedKey]string, funcs map[Function]Template) *Profile {
	p := &Profile{
		name:  name,
		keys:  make(map[string]NamedKey, len(keys)),
		funcs: funcs,
	}
	for k, seq := range keys {
		p.keys[seq] = k
	}
	return p
}

// Name returns the family name matched against TERM
func (p *Profile) Name() string {
	return p.name
}

// FunctionSequence returns the template for f, false when the terminal lacks it
func (p *Profile) FunctionSequence(f Function) (Template, bool) {
	t, ok := p.funcs[f]
	return t, ok
}

// KeyName resolves a complete escape sequence to a named key
// Exact match only; partial sequences never match
func (p *Profile) KeyName(seq []byte) (NamedKey, bool) {
	k, ok := p.keys[string(seq)]
	return k, ok
}

// KeySequence returns the byte sequence the terminal sends for k
func (p *Profile) KeySequence(k NamedKey) ([]byte, bool) {
	for seq, named := range p.keys {
		if named == k {
			return []byte(seq), true
		}
	}
	return nil, false
}
