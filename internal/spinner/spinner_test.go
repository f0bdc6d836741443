package spinner

import (
	"bytes"
	"strings"
	"sync"
	"testing"
	"time"
)

// syncBuffer guards a bytes.Buffer against concurrent writes from the spinner
// goroutine.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestStartStop(t *testing.T) {
	var buf syncBuffer
	s := New(&buf, "analyzing...")

	s.Start()
	time.Sleep(250 * time.Millisecond)
	s.Stop()

	if !strings.Contains(buf.String(), "analyzing...") {
		t.Errorf("spinner output %q missing message", buf.String())
	}
}

func TestStopWithoutStart(t *testing.T) {
	var buf syncBuffer
	s := New(&buf, "idle")

	// must not panic or block
	s.Stop()
}

func TestDoubleStart(t *testing.T) {
	var buf syncBuffer
	s := New(&buf, "busy")

	s.Start()
	s.Start()
	time.Sleep(120 * time.Millisecond)
	s.Stop()
}

func TestSetMessage(t *testing.T) {
	var buf syncBuffer
	s := New(&buf, "0/10")

	s.Start()
	time.Sleep(120 * time.Millisecond)
	s.SetMessage("5/10")
	time.Sleep(200 * time.Millisecond)
	s.Stop()

	if !strings.Contains(buf.String(), "5/10") {
		t.Errorf("spinner output %q missing updated message", buf.String())
	}
}

func TestRestart(t *testing.T) {
	var buf syncBuffer
	s := New(&buf, "pass one")

	s.Start()
	time.Sleep(120 * time.Millisecond)
	s.Stop()

	s.SetMessage("pass two")
	s.Start()
	time.Sleep(120 * time.Millisecond)
	s.Stop()

	out := buf.String()
	if !strings.Contains(out, "pass one") || !strings.Contains(out, "pass two") {
		t.Errorf("spinner output %q missing one of the passes", out)
	}
}
