//go:build unix

package terminal

import (
	"io"
	"time"

	"golang.org/x/sys/unix"
)

// readFd reads from fd, retrying on EINTR
func readFd(fd int, p []byte) (int, error) {
	for {
		n, err := unix.Read(fd, p)
		if err == unix.EINTR {
			continue
		}
		return n, err
	}
}

// writeFd writes all of p to fd, retrying on EINTR and short writes
func writeFd(fd int, p []byte) (int, error) {
	written := 0
	for written < len(p) {
		n, err := unix.Write(fd, p[written:])
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			return written, err
		}
		written += n
	}
	return written, nil
}

// pollFds polls fds, retrying on EINTR with the remaining timeout
// A negative timeout blocks indefinitely
func pollFds(fds []unix.PollFd, timeout time.Duration) (int, error) {
	var deadline time.Time
	if timeout >= 0 {
		deadline = time.Now().Add(timeout)
	}
	for {
		ms := -1
		if timeout >= 0 {
			ms = durationToMs(time.Until(deadline))
		}
		n, err := unix.Poll(fds, ms)
		if err == unix.EINTR {
			continue
		}
		return n, err
	}
}

// durationToMs rounds up to whole milliseconds so short timeouts never become zero
func durationToMs(d time.Duration) int {
	if d <= 0 {
		return 0
	}
	return int((d + time.Millisecond - 1) / time.Millisecond)
}

// fdReader adapts a file descriptor to io.Reader
type fdReader int

func (fd fdReader) Read(p []byte) (int, error) {
	n, err := readFd(int(fd), p)
	if err != nil {
		return n, err
	}
	if n == 0 && len(p) > 0 {
		return 0, io.EOF
	}
	return n, nil
}

// fdWriter adapts a file descriptor to io.Writer
type fdWriter int

func (fd fdWriter) Write(p []byte) (int, error) {
	return writeFd(int(fd), p)
}

// fdSource is the decoder byte source over stdin
// Reads are chunked; bytes left in the chunk count as ready input
type fdSource struct {
	fd  int
	buf [256]byte
	pos int
	end int
}

func newFdSource(fd int) *fdSource {
	return &fdSource{fd: fd}
}

// buffered returns the number of bytes read from the fd but not yet consumed
func (s *fdSource) buffered() int {
	return s.end - s.pos
}

func (s *fdSource) ReadByte() (byte, error) {
	if s.pos == s.end {
		n, err := fdReader(s.fd).Read(s.buf[:])
		if err != nil {
			return 0, err
		}
		s.pos, s.end = 0, n
	}
	b := s.buf[s.pos]
	s.pos++
	return b, nil
}

func (s *fdSource) Ready(timeout time.Duration) (bool, error) {
	if s.pos < s.end {
		return true, nil
	}
	fds := []unix.PollFd{{Fd: int32(s.fd), Events: unix.POLLIN}}
	n, err := pollFds(fds, timeout)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
