// @focus: #terminal { ansi }
package terminal

import (
	"strings"
)

// Fixed sequences for crash recovery, independent of the resolved profile
var (
	csiSGR0          = []byte("\x1b[0m")
	csiCursorShow    = []byte("\x1b[?25h")
	csiAltScreenExit = []byte("\x1b[?1049l")
	csiMouseOff      = []byte("\x1b[?1006l\x1b[?1000l")
)

// Template is an escape sequence with ordered decimal placeholders
// Built from a printf-style format where each %d marks one integer argument
type Template struct {
	parts []string
}

// T builds a Template from a format using %d placeholders
func T(format string) Template {
	return Template{parts: strings.Split(format, "%d")}
}

// Arity returns the number of integer arguments the template consumes
func (t Template) Arity() int {
	if len(t.parts) == 0 {
		return 0
	}
	return len(t.parts) - 1
}

// Expand appends the concrete sequence to dst
// Missing arguments expand as 0, extra arguments are ignored
func (t Template) Expand(dst []byte, args ...int) []byte {
	if len(t.parts) == 0 {
		return dst
	}
	dst = append(dst, t.parts[0]...)
	for i := 1; i < len(t.parts); i++ {
		v := 0
		if i-1 < len(args) {
			v = args[i-1]
		}
		dst = appendInt(dst, v)
		dst = append(dst, t.parts[i]...)
	}
	return dst
}

// String returns the template in its format form
func (t Template) String() string {
	return strings.Join(t.parts, "%d")
}

// appendInt appends a non-negative integer without allocation
// Optimized for terminal values (0-255 common, 0-9999 typical max)
func appendInt(dst []byte, n int) []byte {
	if n < 0 {
		n = 0
	}
	if n < 10 {
		return append(dst, byte(n)+'0')
	}
	if n < 100 {
		return append(dst, byte(n/10)+'0', byte(n%10)+'0')
	}
	if n < 1000 {
		return append(dst, byte(n/100)+'0', byte(n/10%10)+'0', byte(n%10)+'0')
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte(n%10) + '0'
		n /= 10
	}
	return append(dst, buf[i:]...)
}
