//go:build unix

package terminal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventService_DeliversEvents(t *testing.T) {
	s := newTestSession(t, Options{})
	svc := NewService(s.Session)
	require.NoError(t, svc.Start())
	require.NoError(t, svc.Start())

	kind, _ := CustomEventType(4)
	_, err := s.inW.Write([]byte("k"))
	require.NoError(t, err)
	require.NoError(t, s.Push(kind, []byte("ping")))

	var got []Event
	deadline := time.After(2 * time.Second)
	for len(got) < 2 {
		select {
		case ev := <-svc.Events():
			got = append(got, ev)
		case <-deadline:
			t.Fatalf("timed out, got %v", got)
		}
	}
	// Timeouts are never forwarded
	assert.Equal(t, KeyEvent{Key: Key{Rune: 'k'}}, got[0])
	assert.Equal(t, kind, got[1].Type())
	assert.Equal(t, []byte("ping"), got[1].(CustomEvent).Payload.Bytes())

	require.NoError(t, svc.Stop())
	require.NoError(t, svc.Stop())

	// Session outlives the service
	require.NoError(t, s.Push(kind, nil))
	ev, _, err := s.Wait(time.Second)
	require.NoError(t, err)
	assert.Equal(t, kind, ev.Type())
}

func TestEventService_ReportsWaitError(t *testing.T) {
	s := newTestSession(t, Options{})
	svc := NewService(s.Session)
	s.Fini()

	require.NoError(t, svc.Start())
	select {
	case err := <-svc.Err():
		assert.ErrorIs(t, err, ErrClosed)
	case <-time.After(2 * time.Second):
		t.Fatal("wait error not reported")
	}
	require.NoError(t, svc.Stop())
}
