package terminal

import (
	"github.com/gdamore/tcell/v2"
)

// Conversions between this package and tcell, for applications migrating
// between the two or sharing color and key definitions

// ColorFromTcell converts a tcell color
// Palette colors keep their index; unknown specials map to DefaultColor
func ColorFromTcell(tc tcell.Color) Color {
	switch {
	case tc == tcell.ColorDefault:
		return DefaultColor
	case tc&tcell.ColorIsRGB != 0:
		r, g, b := tc.RGB()
		return NewColor(uint8(r), uint8(g), uint8(b))
	case tc >= tcell.ColorValid && tc < tcell.ColorValid+256:
		return PaletteColor(uint8(tc - tcell.ColorValid))
	default:
		return DefaultColor
	}
}

// TcellColor converts c to a tcell RGB color, or tcell.ColorDefault
func (c Color) TcellColor() tcell.Color {
	if c.IsDefault() {
		return tcell.ColorDefault
	}
	return tcell.NewRGBColor(int32(c.rgb.R), int32(c.rgb.G), int32(c.rgb.B))
}

// attrPairs maps Attr bits to tcell attributes; hidden has no tcell counterpart
var attrPairs = []struct {
	attr  Attr
	tcell tcell.AttrMask
}{
	{AttrBold, tcell.AttrBold},
	{AttrFaint, tcell.AttrDim},
	{AttrItalic, tcell.AttrItalic},
	{AttrUnderline, tcell.AttrUnderline},
	{AttrBlink, tcell.AttrBlink},
	{AttrReverse, tcell.AttrReverse},
	{AttrStrikethrough, tcell.AttrStrikeThrough},
}

// AttrFromTcell converts a tcell attribute mask
func AttrFromTcell(mask tcell.AttrMask) Attr {
	var a Attr
	for _, p := range attrPairs {
		if mask&p.tcell != 0 {
			a |= p.attr
		}
	}
	return a
}

// TcellAttr converts a to a tcell attribute mask, dropping AttrHidden
func (a Attr) TcellAttr() tcell.AttrMask {
	mask := tcell.AttrNone
	for _, p := range attrPairs {
		if a&p.attr != 0 {
			mask |= p.tcell
		}
	}
	return mask
}

// namedKeyPairs maps named keys to tcell keys
var namedKeyPairs = map[NamedKey]tcell.Key{
	KeyF1:       tcell.KeyF1,
	KeyF2:       tcell.KeyF2,
	KeyF3:       tcell.KeyF3,
	KeyF4:       tcell.KeyF4,
	KeyF5:       tcell.KeyF5,
	KeyF6:       tcell.KeyF6,
	KeyF7:       tcell.KeyF7,
	KeyF8:       tcell.KeyF8,
	KeyF9:       tcell.KeyF9,
	KeyF10:      tcell.KeyF10,
	KeyF11:      tcell.KeyF11,
	KeyF12:      tcell.KeyF12,
	KeyUp:       tcell.KeyUp,
	KeyRight:    tcell.KeyRight,
	KeyDown:     tcell.KeyDown,
	KeyLeft:     tcell.KeyLeft,
	KeyInsert:   tcell.KeyInsert,
	KeyDelete:   tcell.KeyDelete,
	KeyHome:     tcell.KeyHome,
	KeyEnd:      tcell.KeyEnd,
	KeyPageUp:   tcell.KeyPgUp,
	KeyPageDown: tcell.KeyPgDn,
	KeyBacktab:  tcell.KeyBacktab,
}

// tcellToNamed is the reverse lookup, built at init
var tcellToNamed map[tcell.Key]NamedKey

func init() {
	tcellToNamed = make(map[tcell.Key]NamedKey, len(namedKeyPairs))
	for k, tk := range namedKeyPairs {
		tcellToNamed[tk] = k
	}
}

// TcellEvent converts k into a tcell key event
// KeyUnknown has no tcell form and returns nil
func (k Key) TcellEvent() *tcell.EventKey {
	mod := tcell.ModNone
	if k.Alt {
		mod = tcell.ModAlt
	}
	if k.IsRune() {
		if tk, ctrl, ok := controlToTcell(k.Rune); ok {
			if ctrl {
				mod |= tcell.ModCtrl
			}
			return tcell.NewEventKey(tk, 0, mod)
		}
		return tcell.NewEventKey(tcell.KeyRune, k.Rune, mod)
	}
	tk, ok := namedKeyPairs[k.Named]
	if !ok {
		return nil
	}
	return tcell.NewEventKey(tk, 0, mod)
}

// controlToTcell maps a control rune to its tcell key
// ctrl is set for keys tcell reports as Ctrl chords
func controlToTcell(r rune) (tk tcell.Key, ctrl, ok bool) {
	switch r {
	case RuneEscape:
		return tcell.KeyEsc, false, true
	case RuneTab:
		return tcell.KeyTab, false, true
	case RuneEnter:
		return tcell.KeyEnter, false, true
	case RuneBackspace:
		return tcell.KeyBackspace2, false, true
	}
	if r >= 0 && r < ' ' {
		return tcell.KeyCtrlSpace + tcell.Key(r), true, true
	}
	return 0, false, false
}

// KeyFromTcell converts a tcell key event
// Returns false for tcell keys without a counterpart
func KeyFromTcell(ev *tcell.EventKey) (Key, bool) {
	alt := ev.Modifiers()&tcell.ModAlt != 0
	tk := ev.Key()
	switch {
	case tk == tcell.KeyRune:
		return Key{Rune: ev.Rune(), Alt: alt}, true
	case tk >= tcell.KeyCtrlSpace && tk <= tcell.KeyCtrlUnderscore:
		// Ctrl+@ through Ctrl+_ are numbered from 64, not by their control code
		return Key{Rune: rune(tk - tcell.KeyCtrlSpace), Alt: alt}, true
	case tk == tcell.KeyBackspace || tk == tcell.KeyBackspace2:
		// tcell folds DEL into KeyBackspace
		return Key{Rune: RuneBackspace, Alt: alt}, true
	case tk == tcell.KeyEsc || tk == tcell.KeyTab || tk == tcell.KeyEnter:
		return Key{Rune: rune(tk), Alt: alt}, true
	case tk >= tcell.KeyNUL && tk <= tcell.KeyUS:
		// Raw control runes keep their ASCII code as the key
		return Key{Rune: rune(tk), Alt: alt}, true
	}
	if k, ok := tcellToNamed[tk]; ok {
		return Key{Named: k, Alt: alt}, true
	}
	return Key{}, false
}
