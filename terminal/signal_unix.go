//go:build unix

package terminal

import (
	"encoding/binary"
	"log/slog"
	"os"
	"os/signal"
	"runtime/debug"
	"sync"
	"syscall"

	"golang.org/x/sys/unix"
)

// signalRecordSize is the size of one record on the signal pipe
const signalRecordSize = 4

// DefaultSignals are relayed when Options.Signals is empty
var DefaultSignals = []os.Signal{
	unix.SIGWINCH,
	unix.SIGINT,
	unix.SIGTERM,
	unix.SIGHUP,
	unix.SIGQUIT,
	unix.SIGCONT,
	unix.SIGUSR1,
	unix.SIGUSR2,
}

// signalRelay forwards signals into the session pipes
// SIGWINCH additionally drops a marker into the resize pipe
type signalRelay struct {
	signals  []os.Signal
	signalFd int // write end
	resizeFd int // write end
	logger   *slog.Logger

	sigCh  chan os.Signal
	stopCh chan struct{}
	doneCh chan struct{}

	mu      sync.Mutex
	stopped bool
}

func newSignalRelay(signalFd, resizeFd int, signals []os.Signal, logger *slog.Logger) *signalRelay {
	return &signalRelay{
		signals:  signals,
		signalFd: signalFd,
		resizeFd: resizeFd,
		logger:   logger,
		sigCh:    make(chan os.Signal, 16),
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// start begins listening for the configured signals
func (r *signalRelay) start() {
	signal.Notify(r.sigCh, r.signals...)
	go r.relayLoop()
}

// stop unblocks the relay and waits for it to exit
func (r *signalRelay) stop() {
	r.mu.Lock()
	if r.stopped {
		r.mu.Unlock()
		return
	}
	r.stopped = true
	r.mu.Unlock()

	signal.Stop(r.sigCh)
	close(r.stopCh)
	<-r.doneCh
}

// relayLoop moves signals from the channel into the pipes until stopped
func (r *signalRelay) relayLoop() {
	defer close(r.doneCh)

	defer func() {
		if p := recover(); p != nil {
			r.logger.Error("signal relay crashed", "panic", p, "stack", string(debug.Stack()))
		}
	}()

	for {
		r.mu.Lock()
		stopped := r.stopped
		r.mu.Unlock()
		if stopped {
			return
		}

		select {
		case <-r.stopCh:
			return
		case sig := <-r.sigCh:
			r.forward(sig)
		}
	}
}

// forward writes the signal record, plus the resize marker for SIGWINCH
// Pipe write ends are non-blocking; a full pipe drops the record
func (r *signalRelay) forward(sig os.Signal) {
	num, ok := sig.(syscall.Signal)
	if !ok {
		return
	}

	var rec [signalRecordSize]byte
	binary.LittleEndian.PutUint32(rec[:], uint32(num))
	if _, err := writeFd(r.signalFd, rec[:]); err != nil {
		r.logger.Warn("signal dropped", "signal", num, "error", err)
	}

	if num == unix.SIGWINCH {
		// A pending marker already covers this resize
		if _, err := writeFd(r.resizeFd, []byte{1}); err != nil && err != unix.EAGAIN {
			r.logger.Warn("resize marker dropped", "error", err)
		}
	}
}
