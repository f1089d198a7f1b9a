//go:build unix

package terminal

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// unixBackend owns the TTY mode and the session pipes
type unixBackend struct {
	in      *os.File
	out     *os.File
	inFd    int
	outFd   int
	oldTerm *term.State

	// Pipe pairs: [0] read end, [1] write end
	resizePipe [2]int
	signalPipe [2]int
	customPipe [2]int
}

func newBackend(in, out *os.File) *unixBackend {
	b := &unixBackend{
		in:    in,
		out:   out,
		inFd:  int(in.Fd()),
		outFd: int(out.Fd()),
	}
	for _, p := range []*[2]int{&b.resizePipe, &b.signalPipe, &b.customPipe} {
		*p = [2]int{-1, -1}
	}
	return b
}

// makeRaw disables echo, canonical mode and signal-generating characters
func (b *unixBackend) makeRaw() error {
	if !term.IsTerminal(b.inFd) {
		return ErrNotTerminal
	}

	old, err := term.MakeRaw(b.inFd)
	if err != nil {
		return unexpected("enter raw mode", err)
	}
	b.oldTerm = old
	return nil
}

// restore returns the TTY to the mode saved by makeRaw
func (b *unixBackend) restore() error {
	if b.oldTerm == nil {
		return nil
	}
	err := term.Restore(b.inFd, b.oldTerm)
	b.oldTerm = nil
	if err != nil {
		return unexpected("restore terminal mode", err)
	}
	return nil
}

// openPipes creates the resize, signal and custom pipes
// Relay write ends are non-blocking so a stalled reader never blocks signal delivery
func (b *unixBackend) openPipes() error {
	for _, p := range []*[2]int{&b.resizePipe, &b.signalPipe, &b.customPipe} {
		var fds [2]int
		if err := unix.Pipe(fds[:]); err != nil {
			b.closePipes()
			return fmt.Errorf("%w: %w", ErrPipeInit, err)
		}
		unix.CloseOnExec(fds[0])
		unix.CloseOnExec(fds[1])
		*p = fds
	}
	for _, fd := range []int{b.resizePipe[1], b.signalPipe[1]} {
		if err := unix.SetNonblock(fd, true); err != nil {
			b.closePipes()
			return fmt.Errorf("%w: %w", ErrPipeInit, err)
		}
	}
	return nil
}

func (b *unixBackend) closePipes() {
	for _, p := range []*[2]int{&b.resizePipe, &b.signalPipe, &b.customPipe} {
		for i, fd := range p {
			if fd >= 0 {
				unix.Close(fd)
				p[i] = -1
			}
		}
	}
}

// closeCustomReader closes the read end of the custom pipe
// Writers blocked on a full pipe fail with EPIPE
func (b *unixBackend) closeCustomReader() {
	if b.customPipe[0] >= 0 {
		unix.Close(b.customPipe[0])
		b.customPipe[0] = -1
	}
}

// size queries the window size from output, falling back to input
func (b *unixBackend) size() (int, int, error) {
	ws, err := unix.IoctlGetWinsize(b.outFd, unix.TIOCGWINSZ)
	if err != nil {
		ws, err = unix.IoctlGetWinsize(b.inFd, unix.TIOCGWINSZ)
	}
	if err != nil {
		return 0, 0, unexpected("query window size", err)
	}
	return int(ws.Col), int(ws.Row), nil
}
