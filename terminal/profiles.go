package terminal

// Key tables per terminal family

var xtermKeys = map[NamedKey]string{
	KeyF1: "\x1bOP", KeyF2: "\x1bOQ", KeyF3: "\x1bOR", KeyF4: "\x1bOS",
	KeyF5: "\x1b[15~", KeyF6: "\x1b[17~", KeyF7: "\x1b[18~", KeyF8: "\x1b[19~",
	KeyF9: "\x1b[20~", KeyF10: "\x1b[21~", KeyF11: "\x1b[23~", KeyF12: "\x1b[24~",

	KeyUp: "\x1b[A", KeyRight: "\x1b[C", KeyDown: "\x1b[B", KeyLeft: "\x1b[D",

	KeyInsert: "\x1b[2~", KeyDelete: "\x1b[3~",
	KeyHome: "\x1b[H", KeyEnd: "\x1b[F",
	KeyPageUp: "\x1b[5~", KeyPageDown: "\x1b[6~",

	KeyBacktab: "\x1b[Z",
}

var rxvtKeys = map[NamedKey]string{
	KeyF1: "\x1b[11~", KeyF2: "\x1b[12~", KeyF3: "\x1b[13~", KeyF4: "\x1b[14~",
	KeyF5: "\x1b[15~", KeyF6: "\x1b[17~", KeyF7: "\x1b[18~", KeyF8: "\x1b[19~",
	KeyF9: "\x1b[20~", KeyF10: "\x1b[21~", KeyF11: "\x1b[23~", KeyF12: "\x1b[24~",

	KeyUp: "\x1b[A", KeyRight: "\x1b[C", KeyDown: "\x1b[B", KeyLeft: "\x1b[D",

	KeyInsert: "\x1b[2~", KeyDelete: "\x1b[3~",
	KeyHome: "\x1b[7~", KeyEnd: "\x1b[8~",
	KeyPageUp: "\x1b[5~", KeyPageDown: "\x1b[6~",

	KeyBacktab: "\x1b[Z",
}

// tmux reports arrows in application cursor mode
var tmuxKeys = map[NamedKey]string{
	KeyF1: "\x1bOP", KeyF2: "\x1bOQ", KeyF3: "\x1bOR", KeyF4: "\x1bOS",
	KeyF5: "\x1b[15~", KeyF6: "\x1b[17~", KeyF7: "\x1b[18~", KeyF8: "\x1b[19~",
	KeyF9: "\x1b[20~", KeyF10: "\x1b[21~", KeyF11: "\x1b[23~", KeyF12: "\x1b[24~",

	KeyUp: "\x1bOA", KeyRight: "\x1bOC", KeyDown: "\x1bOB", KeyLeft: "\x1bOD",

	KeyInsert: "\x1b[2~", KeyDelete: "\x1b[3~",
	KeyHome: "\x1b[1~", KeyEnd: "\x1b[4~",
	KeyPageUp: "\x1b[5~", KeyPageDown: "\x1b[6~",

	KeyBacktab: "\x1b[Z",
}

// xtermFunctions returns the full ECMA-48/xterm function set
// Each profile gets its own map so removals stay local
func xtermFunctions() map[Function]Template {
	return map[Function]Template{
		FuncCursorShow: T("\x1b[?25h"),
		FuncCursorHide: T("\x1b[?25l"),
		FuncCursorMove: T("\x1b[%d;%dH"),

		FuncFgC8:      T("\x1b[3%dm"),
		FuncFgC256:    T("\x1b[38;5;%dm"),
		FuncFgRGB:     T("\x1b[38;2;%d;%d;%dm"),
		FuncFgDefault: T("\x1b[39m"),
		FuncBgC8:      T("\x1b[4%dm"),
		FuncBgC256:    T("\x1b[48;5;%dm"),
		FuncBgRGB:     T("\x1b[48;2;%d;%d;%dm"),
		FuncBgDefault: T("\x1b[49m"),

		FuncStyleBold:          T("\x1b[1m"),
		FuncStyleFaint:         T("\x1b[2m"),
		FuncStyleItalic:        T("\x1b[3m"),
		FuncStyleUnderline:     T("\x1b[4m"),
		FuncStyleBlink:         T("\x1b[5m"),
		FuncStyleReverse:       T("\x1b[7m"),
		FuncStyleHidden:        T("\x1b[8m"),
		FuncStyleStrikethrough: T("\x1b[9m"),

		FuncGfxReset: T("\x1b[m\x0f"),

		FuncEraseScreen:     T("\x1b[2J"),
		FuncEraseScrollback: T("\x1b[3J"),
		FuncEraseLine:       T("\x1b[2K"),

		FuncAltBufferEnter: T("\x1b[?1049h"),
		FuncAltBufferExit:  T("\x1b[?1049l"),

		FuncMouseEnable:  T("\x1b[?1006h\x1b[?1000h"),
		FuncMouseDisable: T("\x1b[?1006l\x1b[?1000l"),
	}
}

func rxvtFunctions() map[Function]Template {
	f := xtermFunctions()
	delete(f, FuncFgRGB)
	delete(f, FuncBgRGB)
	delete(f, FuncStyleBlink)
	delete(f, FuncStyleHidden)
	delete(f, FuncStyleStrikethrough)
	delete(f, FuncEraseScrollback)
	f[FuncGfxReset] = T("\x1b(B\x1b[m")
	return f
}

func alacrittyFunctions() map[Function]Template {
	f := xtermFunctions()
	delete(f, FuncStyleBlink)
	return f
}

// Known profiles in TERM matching order; the first is the fallback
var (
	profileXterm     = newProfile("xterm", xtermKeys, xtermFunctions())
	profileRxvt      = newProfile("rxvt", rxvtKeys, rxvtFunctions())
	profileAlacritty = newProfile("alacritty", xtermKeys, alacrittyFunctions())
	profileTmux      = newProfile("tmux", tmuxKeys, xtermFunctions())

	knownProfiles = []*Profile{profileXterm, profileRxvt, profileAlacritty, profileTmux}
)

// Profiles returns the known profiles in matching order
func Profiles() []*Profile {
	out := make([]*Profile, len(knownProfiles))
	copy(out, knownProfiles)
	return out
}

// ProfileByName returns the profile with the exact family name
func ProfileByName(name string) (*Profile, bool) {
	for _, p := range knownProfiles {
		if p.name == name {
			return p, true
		}
	}
	return nil, false
}
