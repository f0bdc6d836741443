// Package spinner provides a terminal progress indicator shown while a batch
// of reviews is being analyzed.
package spinner

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"golang.org/x/term"
)

// Spinner animates a progress message on a terminal. All methods are safe for
// concurrent use; on non-terminal writers the animation degrades to plain
// carriage returns.
type Spinner struct {
	frames  []string
	delay   time.Duration
	writer  io.Writer
	message string

	mu     sync.Mutex
	active bool
	stop   chan struct{}
	done   chan struct{}
}

// New creates a spinner that writes its animation to w.
func New(w io.Writer, message string) *Spinner {
	return &Spinner{
		frames:  []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"},
		delay:   90 * time.Millisecond,
		writer:  w,
		message: message,
	}
}

// Start begins the animation. Starting an active spinner is a no-op.
func (s *Spinner) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.active {
		return
	}
	s.active = true
	s.stop = make(chan struct{})
	s.done = make(chan struct{})
	go s.run(s.stop, s.done)
}

// Stop ends the animation and clears the spinner line. Stopping an inactive
// spinner is a no-op.
func (s *Spinner) Stop() {
	s.mu.Lock()
	if !s.active {
		s.mu.Unlock()
		return
	}
	s.active = false
	close(s.stop)
	done := s.done
	s.mu.Unlock()

	<-done

	if f, ok := s.writer.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fmt.Fprint(s.writer, "\r\033[2K")
	} else {
		fmt.Fprint(s.writer, "\r")
	}
}

// SetMessage replaces the message next to the animation, typically with a
// progress count.
func (s *Spinner) SetMessage(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.message = message
}

func (s *Spinner) run(stop, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(s.delay)
	defer ticker.Stop()

	frame := 0
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			s.mu.Lock()
			message := s.message
			s.mu.Unlock()
			fmt.Fprintf(s.writer, "\r%s %s", s.frames[frame%len(s.frames)], message)
			frame++
		}
	}
}
