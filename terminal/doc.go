// @focus: #sys { term }
// Package terminal provides a raw terminal session with direct escape-sequence output.
//
// Features:
//   - Per-family escape tables (xterm, rxvt, alacritty, tmux) chosen from TERM
//   - Color output with truecolor, 256 and 8-color fallback
//   - Raw stdin decoding of keys, function keys and SGR mouse reports
//   - Signal and SIGWINCH delivery through the same wait loop as input
//   - Custom events pushed from any goroutine
//
// A Session is driven from one goroutine: Init, then Wait and the write methods,
// then Fini. Push is the only method safe to call concurrently.
//
// This package bypasses terminfo/termcap entirely, emitting direct ANSI sequences.
// Target environments: Linux, macOS, BSDs.
package terminal
