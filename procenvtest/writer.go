package procenvtest

import (
	"strings"
	"sync"
)

// WriteCounter is an io.Writer that keeps every Write call as a separate entry.
// When Err is set, every Write fails with it and records nothing.
type WriteCounter struct {
	Err error

	mu     sync.Mutex
	writes []string
}

// Write records p as one entry.
func (w *WriteCounter) Write(p []byte) (int, error) {
	if w.Err != nil {
		return 0, w.Err
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	w.writes = append(w.writes, string(p))

	return len(p), nil
}

// Writes returns a copy of the recorded writes in call order.
func (w *WriteCounter) Writes() []string {
	w.mu.Lock()
	defer w.mu.Unlock()

	return append([]string(nil), w.writes...)
}

// String returns all recorded writes concatenated.
func (w *WriteCounter) String() string {
	w.mu.Lock()
	defer w.mu.Unlock()

	return strings.Join(w.writes, "")
}
