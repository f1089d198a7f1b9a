package envconfig

import (
	"fmt"
	"log/slog"
	"strconv"
)

// BoolWithDefault returns a getter for a boolean variable
// Unparseable non-empty values count as true
func BoolWithDefault(k string) func(defaultValue bool) bool {
	return func(defaultValue bool) bool {
		if s := Var(k); s != "" {
			b, err := strconv.ParseBool(s)
			if err != nil {
				return true
			}
			return b
		}
		return defaultValue
	}
}

// Bool returns a getter for a boolean variable defaulting to false
func Bool(k string) func() bool {
	withDefault := BoolWithDefault(k)
	return func() bool {
		return withDefault(false)
	}
}

// String returns a getter for a string variable
func String(s string) func() string {
	return func() string {
		return Var(s)
	}
}

// Uint returns a getter for an unsigned integer variable with a default
func Uint(key string, defaultValue uint) func() uint {
	return func() uint {
		if s := Var(key); s != "" {
			if n, err := strconv.ParseUint(s, 10, 64); err != nil {
				slog.Warn("invalid environment variable, using default", "key", key, "value", s, "default", defaultValue)
			} else {
				return uint(n)
			}
		}
		return defaultValue
	}
}

// EnvVar describes one consumed variable
type EnvVar struct {
	Name        string
	Value       any
	Description string
}

// AsMap returns every consumed variable with its effective value
func AsMap() map[string]EnvVar {
	return map[string]EnvVar{
		"TERM":                {"TERM", Term(), "Terminal family used to select escape sequences"},
		"COLORTERM":           {"COLORTERM", ColorTerm(), "Color capability hint (truecolor/24bit enables RGB)"},
		"RAWTERM_BUFFER_SIZE": {"RAWTERM_BUFFER_SIZE", BufferSize(), "Output buffer capacity in bytes (0 = unbuffered)"},
		"RAWTERM_DEBUG":       {"RAWTERM_DEBUG", LogLevel(), "Show additional debug information (e.g. RAWTERM_DEBUG=1)"},
		"RAWTERM_ESC_TIMEOUT": {"RAWTERM_ESC_TIMEOUT", EscapeTimeout(), "Window to tell ESC from escape sequences (default \"5ms\")"},
		"RAWTERM_LOG_FILE":    {"RAWTERM_LOG_FILE", LogFile(), "File receiving session logs"},
		"RAWTERM_RAW":         {"RAWTERM_RAW", RawMode(true), "Switch the terminal to raw mode at init (default true)"},
		"RAWTERM_NO_MOUSE":    {"RAWTERM_NO_MOUSE", NoMouse(), "Disable mouse reporting in bundled tools"},
	}
}

// Values returns every consumed variable formatted as a string
func Values() map[string]string {
	vals := make(map[string]string)
	for k, v := range AsMap() {
		vals[k] = fmt.Sprintf("%v", v.Value)
	}
	return vals
}
