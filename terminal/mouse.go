package terminal

// MouseButton represents the button or wheel direction of a mouse report
type MouseButton uint8

const (
	MouseBtnNone MouseButton = iota
	MouseBtnLeft
	MouseBtnMiddle
	MouseBtnRight
	MouseBtnWheelUp
	MouseBtnWheelDown
)

// Modifier represents keyboard modifiers held during a mouse report (bitmask)
type Modifier uint8

const (
	ModNone  Modifier = 0
	ModShift Modifier = 1 << 0
	ModAlt   Modifier = 1 << 1
	ModCtrl  Modifier = 1 << 2
)

// SGR button code bits
const (
	sgrModShift = 4
	sgrModAlt   = 8
	sgrModCtrl  = 16
	sgrWheelUp  = 64
	sgrWheelDn  = 65
)

// String returns human-readable button name
func (b MouseButton) String() string {
	switch b {
	case MouseBtnLeft:
		return "Left"
	case MouseBtnMiddle:
		return "Middle"
	case MouseBtnRight:
		return "Right"
	case MouseBtnWheelUp:
		return "WheelUp"
	case MouseBtnWheelDown:
		return "WheelDown"
	default:
		return "None"
	}
}

// mouseResult classifies an accumulated CSI sequence against the SGR mouse format
type mouseResult uint8

const (
	mouseNotMouse mouseResult = iota // Structural mismatch, fall through to key lookup
	mouseEvent                       // Press or wheel, surfaced
	mouseIgnore                      // Release or unsupported button, re-poll
)

// parseSGRMouse parses ESC [ < Btn ; X ; Y (M|m)
// Coordinates are passed through as reported (1-based)
func parseSGRMouse(seq []byte) (MouseEvent, mouseResult) {
	// Minimum: ESC [ < 0 ; 1 ; 1 M = 9 bytes
	if len(seq) < 9 || seq[0] != 0x1b || seq[1] != '[' || seq[2] != '<' {
		return MouseEvent{}, mouseNotMouse
	}
	term := seq[len(seq)-1]
	if term != 'M' && term != 'm' {
		return MouseEvent{}, mouseNotMouse
	}

	btn, x, y, ok := parseSGRParams(seq[3 : len(seq)-1])
	if !ok {
		return MouseEvent{}, mouseNotMouse
	}
	if term == 'm' {
		return MouseEvent{}, mouseIgnore
	}

	ev := MouseEvent{X: x, Y: y}
	if btn&sgrModShift != 0 {
		ev.Mod |= ModShift
	}
	if btn&sgrModAlt != 0 {
		ev.Mod |= ModAlt
	}
	if btn&sgrModCtrl != 0 {
		ev.Mod |= ModCtrl
	}

	// Modifier bits are reported but never change the button
	switch {
	case btn == sgrWheelUp:
		ev.Button = MouseBtnWheelUp
	case btn == sgrWheelDn:
		ev.Button = MouseBtnWheelDown
	default:
		// Bits 0-1: 0=left, 1=right, 2=middle, 3=unsupported
		switch btn & 0x03 {
		case 0:
			ev.Button = MouseBtnLeft
		case 1:
			ev.Button = MouseBtnRight
		case 2:
			ev.Button = MouseBtnMiddle
		default:
			return MouseEvent{}, mouseIgnore
		}
	}
	return ev, mouseEvent
}

// parseSGRParams extracts btn, x, y from "Btn;X;Y" format
// Each field must be a non-empty run of digits
func parseSGRParams(data []byte) (btn, x, y int, ok bool) {
	state := 0 // 0=btn, 1=x, 2=y
	val := 0
	digits := 0

	for _, b := range data {
		if b == ';' {
			if digits == 0 {
				return 0, 0, 0, false
			}
			switch state {
			case 0:
				btn = val
			case 1:
				x = val
			}
			state++
			val = 0
			digits = 0
			if state > 2 {
				return 0, 0, 0, false
			}
		} else if b >= '0' && b <= '9' {
			val = val*10 + int(b-'0')
			digits++
			if val > 99999 { // Sanity limit
				return 0, 0, 0, false
			}
		} else {
			return 0, 0, 0, false
		}
	}

	if state != 2 || digits == 0 {
		return 0, 0, 0, false
	}
	y = val
	return btn, x, y, true
}
