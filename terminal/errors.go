package terminal

import (
	"errors"
	"fmt"
)

// Error kinds returned by session, renderer and decoder operations
// Callers match with errors.Is; OS errors are wrapped alongside the kind
var (
	ErrUnexpected           = errors.New("unexpected failure")
	ErrFunctionNotSupported = errors.New("function not supported by terminal")
	ErrInvalidArgument      = errors.New("invalid argument")
	ErrAllocationFailure    = errors.New("buffer allocation failure")
	ErrInvalidEncoding      = errors.New("invalid encoding")
	ErrOutOfBounds          = errors.New("position out of bounds")
	ErrPipeInit             = errors.New("pipe initialization failure")
	ErrNotTerminal          = errors.New("input is not a terminal")
	ErrAlreadyBuffered      = errors.New("output buffering already enabled")
	ErrClosed               = errors.New("session closed")

	// ErrTerminalNotSupported is informational: the xterm profile is used instead
	ErrTerminalNotSupported = errors.New("terminal not supported, assuming xterm compatible")
)

// unexpected tags an OS-level failure of op as ErrUnexpected
func unexpected(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrUnexpected, err)
}
