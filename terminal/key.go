package terminal

// NamedKey identifies a key recognized by its escape sequence rather than a codepoint
type NamedKey uint8

const (
	KeyNone NamedKey = iota // Plain codepoint, check Key.Rune

	// Function keys
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12

	// Arrows, in profile table order
	KeyUp
	KeyRight
	KeyDown
	KeyLeft

	// Editing and navigation
	KeyInsert
	KeyDelete
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyBacktab // Shift+Tab

	// KeyUnknown is reported for complete escape sequences missing from the profile
	KeyUnknown
)

// Common control codepoints delivered as plain runes in raw mode
const (
	RuneCtrlC     rune = 0x03
	RuneTab       rune = 0x09
	RuneEnter     rune = 0x0d
	RuneEscape    rune = 0x1b
	RuneBackspace rune = 0x7f
)

// Key is a decoded keypress: either a codepoint with an Alt flag or a named key
type Key struct {
	Named NamedKey
	Rune  rune
	Alt   bool
}

// IsRune reports whether the key carries a codepoint
func (k Key) IsRune() bool {
	return k.Named == KeyNone
}

// String returns a readable form such as "Alt+a", "up" or "unknown"
func (k Key) String() string {
	if !k.IsRune() {
		return k.Named.String()
	}
	var s string
	switch {
	case k.Rune == RuneEscape:
		s = "escape"
	case k.Rune == RuneEnter:
		s = "enter"
	case k.Rune == RuneTab:
		s = "tab"
	case k.Rune == RuneBackspace:
		s = "backspace"
	case k.Rune == 0:
		s = "ctrl_space"
	case k.Rune < 0x1b:
		s = "ctrl_" + string('a'+k.Rune-1)
	default:
		s = string(k.Rune)
	}
	if k.Alt {
		return "Alt+" + s
	}
	return s
}
