//go:build unix

package terminal

import (
	"encoding/binary"
	"fmt"
	"io"
	"syscall"
	"time"

	"golang.org/x/sys/unix"
)

// Forever makes Wait block until an event arrives
const Forever time.Duration = -1

// Event sources in priority order
const (
	sourceStdin = iota
	sourceResize
	sourceSignal
	sourceCustom
	sourceCount
)

const noSource = -1

// Wait blocks until one event source is ready or timeout elapses
// Returns the event and the time spent waiting, never more than timeout
// A negative timeout waits indefinitely
func (s *Session) Wait(timeout time.Duration) (Event, time.Duration, error) {
	if !s.initialized || s.finalized {
		return nil, 0, ErrClosed
	}

	start := time.Now()
	remaining := timeout
	for {
		src, err := s.pollSources(remaining)

		elapsed := time.Since(start)
		if timeout >= 0 && elapsed > timeout {
			elapsed = timeout
		}
		if err != nil {
			return nil, elapsed, err
		}
		if src == noSource {
			return TimeoutEvent{}, elapsed, nil
		}

		ev, ignore, err := s.drain(src)
		if err != nil {
			return nil, elapsed, err
		}
		if !ignore {
			return ev, elapsed, nil
		}

		// Consumed input with nothing to report; wait out the remaining budget
		if timeout >= 0 {
			remaining = timeout - elapsed
		}
	}
}

// pollSources returns the highest-priority ready source, or noSource on timeout
func (s *Session) pollSources(timeout time.Duration) (int, error) {
	// Bytes already pulled from stdin are invisible to poll
	if s.stdin.buffered() > 0 {
		return sourceStdin, nil
	}

	for i := range s.pollSet {
		s.pollSet[i].Revents = 0
	}
	n, err := pollFds(s.pollSet[:], timeout)
	if err != nil {
		return noSource, unexpected("poll", err)
	}
	if n == 0 {
		return noSource, nil
	}

	for i, fd := range s.pollSet {
		if fd.Revents&unix.POLLNVAL != 0 {
			return noSource, fmt.Errorf("poll source %d: invalid descriptor: %w", i, ErrUnexpected)
		}
		if fd.Revents&(unix.POLLIN|unix.POLLHUP|unix.POLLERR) != 0 {
			return i, nil
		}
	}
	return noSource, nil
}

// drain consumes exactly one unit from src and converts it into an event
func (s *Session) drain(src int) (Event, bool, error) {
	switch src {
	case sourceStdin:
		return s.dec.next()
	case sourceResize:
		ev, err := s.drainResize()
		return ev, false, err
	case sourceSignal:
		ev, err := s.drainSignal()
		return ev, false, err
	case sourceCustom:
		ev, err := readFrame(fdReader(s.backend.customPipe[0]))
		if err != nil {
			return nil, false, err
		}
		return ev, false, nil
	}
	return nil, false, fmt.Errorf("source %d: %w", src, ErrUnexpected)
}

// drainResize collapses all pending resize markers into one size query
func (s *Session) drainResize() (Event, error) {
	fd := s.backend.resizePipe[0]
	var buf [64]byte
	for {
		if _, err := readFd(fd, buf[:]); err != nil {
			return nil, unexpected("read resize marker", err)
		}
		pending := []unix.PollFd{{Fd: int32(fd), Events: unix.POLLIN}}
		n, err := pollFds(pending, 0)
		if err != nil {
			return nil, unexpected("poll resize pipe", err)
		}
		if n == 0 {
			break
		}
	}

	w, h, err := s.querySize()
	if err != nil {
		return nil, err
	}
	s.logger.Debug("terminal resized", "width", w, "height", h)
	return ResizeEvent{Width: w, Height: h}, nil
}

// drainSignal reads one signal record
func (s *Session) drainSignal() (Event, error) {
	var rec [signalRecordSize]byte
	if _, err := io.ReadFull(fdReader(s.backend.signalPipe[0]), rec[:]); err != nil {
		return nil, unexpected("read signal record", err)
	}
	sig := syscall.Signal(binary.LittleEndian.Uint32(rec[:]))
	s.logger.Debug("signal received", "signal", sig)
	return SignalEvent{Signal: sig}, nil
}
