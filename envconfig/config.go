// Package envconfig reads runtime tuning from environment variables.
//
// Getters are evaluated on every call so tests can override variables with t.Setenv.
// Invalid values are logged with slog.Warn and replaced by the default.
package envconfig

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

// Terminal detection
var (
	// Term is the terminal family, matched against known profiles
	Term = String("TERM")
	// ColorTerm is the color capability hint; "truecolor" or "24bit" enables RGB output
	ColorTerm = String("COLORTERM")
)

// Tuning
var (
	// BufferSize enables bounded output buffering of this many bytes at session init
	// Configurable via RAWTERM_BUFFER_SIZE, 0 = unbuffered
	BufferSize = Uint("RAWTERM_BUFFER_SIZE", 0)
	// LogFile receives session logs; logs are discarded when unset
	LogFile = String("RAWTERM_LOG_FILE")
	// RawMode controls whether Init switches the TTY to raw mode
	// Configurable via RAWTERM_RAW, e.g. RAWTERM_RAW=0 when input is piped
	RawMode = BoolWithDefault("RAWTERM_RAW")
	// NoMouse disables mouse reporting in tools that enable it by default
	NoMouse = Bool("RAWTERM_NO_MOUSE")
)

// defaultEscapeTimeout mirrors the decoder default
const defaultEscapeTimeout = 5 * time.Millisecond

// EscapeTimeout returns the ESC disambiguation window
// Configurable via RAWTERM_ESC_TIMEOUT as a duration ("10ms") or integer milliseconds
// Default: 5ms
func EscapeTimeout() time.Duration {
	s := Var("RAWTERM_ESC_TIMEOUT")
	if s == "" {
		return defaultEscapeTimeout
	}
	if d, err := time.ParseDuration(s); err == nil && d > 0 {
		return d
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil && n > 0 {
		return time.Duration(n) * time.Millisecond
	}
	slog.Warn("invalid environment variable, using default", "key", "RAWTERM_ESC_TIMEOUT", "value", s, "default", defaultEscapeTimeout)
	return defaultEscapeTimeout
}

// LogLevel returns the session log level
// Configurable via RAWTERM_DEBUG
// Values: 0/false = INFO (default), 1/true = DEBUG, 2 = TRACE-like (-8)
func LogLevel() slog.Level {
	level := slog.LevelInfo
	if s := Var("RAWTERM_DEBUG"); s != "" {
		if b, _ := strconv.ParseBool(s); b {
			level = slog.LevelDebug
		} else if i, _ := strconv.ParseInt(s, 10, 64); i != 0 {
			level = slog.Level(i * -4)
		}
	}
	return level
}

// Var returns an environment variable with surrounding whitespace and quotes removed
func Var(key string) string {
	return strings.Trim(strings.TrimSpace(os.Getenv(key)), "\"'")
}
