//go:build unix

package terminal

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/lixenwraith/rawterm/envconfig"
	"golang.org/x/sys/unix"
)

// Options configures a Session. Zero values fall back to envconfig
type Options struct {
	In  *os.File // default os.Stdin
	Out *os.File // default os.Stdout

	// Term and ColorTerm override TERM and COLORTERM for detection
	Term      string
	ColorTerm string
	// Profile skips family detection; color depth is still resolved
	Profile *Profile
	// Depth overrides the detected color depth
	Depth *ColorDepth

	EscapeTimeout time.Duration
	BufferSize    int // >0 enables a bounded output buffer at Init
	Signals       []os.Signal
	Logger        *slog.Logger

	// NoRawMode leaves the TTY mode untouched, required when In is not a terminal
	NoRawMode bool
}

// Session is one live terminal: renderer, decoder, signal relay and event pipes
// Wait and the rendering methods belong to a single goroutine; Push is safe from any
type Session struct {
	*Renderer

	opts    Options
	logger  *slog.Logger
	logFile io.Closer
	res     Resolution
	backend *unixBackend
	sizeFn  SizeFunc

	relay   *signalRelay
	stdin   *fdSource
	dec     *decoder
	pollSet [sourceCount]unix.PollFd

	mu          sync.Mutex
	initialized bool
	finalized   bool

	pushMu   sync.RWMutex
	pushOpen bool
}

// New creates a session and resolves the terminal profile; Init starts it
func New(opts Options) *Session {
	if opts.In == nil {
		opts.In = os.Stdin
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.Term == "" {
		opts.Term = envconfig.Term()
	}
	if opts.ColorTerm == "" {
		opts.ColorTerm = envconfig.ColorTerm()
	}
	if opts.EscapeTimeout <= 0 {
		opts.EscapeTimeout = envconfig.EscapeTimeout()
	}
	if opts.BufferSize == 0 {
		opts.BufferSize = int(envconfig.BufferSize())
	}
	if len(opts.Signals) == 0 {
		opts.Signals = DefaultSignals
	}
	if !envconfig.RawMode(true) {
		opts.NoRawMode = true
	}

	s := &Session{opts: opts}
	s.logger, s.logFile = opts.Logger, nil
	if s.logger == nil {
		s.logger, s.logFile = defaultLogger()
	}

	s.res = Resolve(opts.Term, opts.ColorTerm)
	if opts.Profile != nil {
		s.res.Profile = opts.Profile
		s.res.Supported = true
	}
	if opts.Depth != nil {
		s.res.Depth = *opts.Depth
	}

	s.backend = newBackend(opts.In, opts.Out)
	s.sizeFn = s.backend.size
	s.Renderer = NewRenderer(fdWriter(s.backend.outFd), s.res.Profile, s.res.Depth, s.querySize)
	return s
}

// defaultLogger writes to RAWTERM_LOG_FILE when set, otherwise discards
// Logs never go to the terminal being driven
func defaultLogger() (*slog.Logger, io.Closer) {
	path := envconfig.LogFile()
	if path == "" {
		return slog.New(slog.DiscardHandler), nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return slog.New(slog.DiscardHandler), nil
	}
	h := slog.NewTextHandler(f, &slog.HandlerOptions{Level: envconfig.LogLevel()})
	return slog.New(h).With("component", "rawterm"), f
}

// Init opens the event pipes, enters raw mode and starts the signal relay
func (s *Session) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.finalized {
		return ErrClosed
	}
	if s.initialized {
		return nil
	}

	if !s.res.Supported {
		s.logger.Warn("terminal not recognized, assuming xterm compatible", "term", s.opts.Term)
	}

	if err := s.backend.openPipes(); err != nil {
		return err
	}
	if !s.opts.NoRawMode {
		if err := s.backend.makeRaw(); err != nil {
			s.backend.closePipes()
			return err
		}
	}

	s.relay = newSignalRelay(s.backend.signalPipe[1], s.backend.resizePipe[1], s.opts.Signals, s.logger)
	s.relay.start()

	s.stdin = newFdSource(s.backend.inFd)
	s.dec = newDecoder(s.stdin, s.res.Profile, s.opts.EscapeTimeout)
	s.pollSet = [sourceCount]unix.PollFd{
		sourceStdin:  {Fd: int32(s.backend.inFd), Events: unix.POLLIN},
		sourceResize: {Fd: int32(s.backend.resizePipe[0]), Events: unix.POLLIN},
		sourceSignal: {Fd: int32(s.backend.signalPipe[0]), Events: unix.POLLIN},
		sourceCustom: {Fd: int32(s.backend.customPipe[0]), Events: unix.POLLIN},
	}

	if s.opts.BufferSize > 0 && s.Renderer.buf == nil {
		if err := s.Renderer.EnableBuffer(s.opts.BufferSize); err != nil {
			s.logger.Warn("output buffering not enabled", "size", s.opts.BufferSize, "error", err)
		}
	}

	s.pushMu.Lock()
	s.pushOpen = true
	s.pushMu.Unlock()

	s.initialized = true
	s.logger.Debug("session initialized",
		"profile", s.res.Profile.Name(),
		"depth", s.res.Depth,
		"raw", !s.opts.NoRawMode,
		"escape_timeout", s.opts.EscapeTimeout)
	return nil
}

// Fini resets graphics, flushes output, stops the relay and restores the TTY
// Safe to call multiple times
func (s *Session) Fini() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized || s.finalized {
		s.finalized = true
		return
	}
	s.finalized = true

	// Leave the shell with default graphics
	if _, err := s.Renderer.Write("", DefaultGFX); err != nil {
		s.logger.Warn("graphics reset failed", "error", err)
	}
	if err := s.Renderer.Flush(); err != nil {
		s.logger.Warn("final flush failed", "error", err)
	}

	s.relay.stop()

	// Release pushers blocked on a full pipe before waiting for them
	s.backend.closeCustomReader()
	s.pushMu.Lock()
	s.pushOpen = false
	s.backend.closePipes()
	s.pushMu.Unlock()

	if err := s.backend.restore(); err != nil {
		s.logger.Error("terminal mode not restored", "error", err)
	}

	s.logger.Debug("session finalized")
	if s.logFile != nil {
		s.logFile.Close()
		s.logFile = nil
	}
}

// Resolution returns the detected profile and color depth
func (s *Session) Resolution() Resolution {
	return s.res
}

// Size returns the current terminal size
func (s *Session) Size() (int, int, error) {
	return s.querySize()
}

func (s *Session) querySize() (int, int, error) {
	return s.sizeFn()
}

// Push injects a custom event; kind must come from CustomEventType
// The frame goes out in one atomic pipe write, so concurrent pushes stay FIFO
func (s *Session) Push(kind EventType, payload []byte) error {
	p, err := NewPayload(payload)
	if err != nil {
		return err
	}
	var frame [maxFrameSize]byte
	buf, err := appendFrame(frame[:0], kind, p)
	if err != nil {
		return err
	}

	s.pushMu.RLock()
	defer s.pushMu.RUnlock()
	if !s.pushOpen {
		return ErrClosed
	}
	if _, err := writeFd(s.backend.customPipe[1], buf); err != nil {
		if errors.Is(err, unix.EPIPE) {
			return ErrClosed
		}
		return unexpected("push event", err)
	}
	return nil
}

// EmergencyReset attempts to restore terminal to sane state
// Call this from panic recovery if Fini() cannot be called normally
func EmergencyReset(w io.Writer) {
	w.Write(csiMouseOff)
	w.Write(csiCursorShow)
	w.Write(csiAltScreenExit)
	w.Write(csiSGR0)

	if f, ok := w.(*os.File); ok {
		f.Sync()
	}
}
