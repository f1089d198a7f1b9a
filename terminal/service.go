//go:build unix

package terminal

import (
	"fmt"
	"os"
	"runtime/debug"
	"sync"
	"time"
)

// servicePollInterval bounds each Wait so the loop notices Stop
const servicePollInterval = 100 * time.Millisecond

// EventService runs a session's wait loop on its own goroutine and delivers
// events on a channel. Rendering stays with the caller; the loop only waits
type EventService struct {
	session *Session
	eventCh chan Event
	errCh   chan error
	stopCh  chan struct{}
	doneCh  chan struct{}
	mu      sync.Mutex
	running bool
}

// NewService creates a service over an initialized session
func NewService(s *Session) *EventService {
	return &EventService{
		session: s,
		eventCh: make(chan Event, 256),
		errCh:   make(chan error, 1),
		stopCh:  make(chan struct{}),
		doneCh:  make(chan struct{}),
	}
}

// Start launches the wait loop
func (svc *EventService) Start() error {
	svc.mu.Lock()
	defer svc.mu.Unlock()
	if svc.running {
		return nil
	}
	svc.running = true

	go svc.waitLoop()
	return nil
}

// waitLoop forwards events until stopped or Wait fails
func (svc *EventService) waitLoop() {
	defer close(svc.doneCh)

	defer func() {
		if r := recover(); r != nil {
			EmergencyReset(os.Stdout)
			fmt.Fprintf(os.Stderr, "\r\n\x1b[31mTERMINAL WAIT CRASHED: %v\x1b[0m\r\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
			os.Exit(1)
		}
	}()

	for {
		select {
		case <-svc.stopCh:
			return
		default:
		}

		ev, _, err := svc.session.Wait(servicePollInterval)
		if err != nil {
			svc.errCh <- err
			return
		}
		if _, ok := ev.(TimeoutEvent); ok {
			continue
		}

		select {
		case svc.eventCh <- ev:
		case <-svc.stopCh:
			return
		}
	}
}

// Stop ends the wait loop and waits for it to exit
// The session is left initialized; the caller still owns Fini
func (svc *EventService) Stop() error {
	svc.mu.Lock()
	if !svc.running {
		svc.mu.Unlock()
		return nil
	}
	svc.running = false
	svc.mu.Unlock()

	close(svc.stopCh)
	<-svc.doneCh
	return nil
}

// Events returns the event channel
func (svc *EventService) Events() <-chan Event {
	return svc.eventCh
}

// Err receives the error that ended the wait loop, if any
func (svc *EventService) Err() <-chan error {
	return svc.errCh
}
