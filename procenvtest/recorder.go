package procenvtest

import (
	"io"
	"slices"
	"strings"
	"sync"

	"github.com/ruffel/procenv"
)

// Stream identifies a standard stream in a recorded write.
type Stream int

const (
	// StreamStdout is standard output.
	StreamStdout Stream = iota + 1
	// StreamStderr is standard error.
	StreamStderr
)

func (s Stream) String() string {
	switch s {
	case StreamStdout:
		return "stdout"
	case StreamStderr:
		return "stderr"
	default:
		return "unknown"
	}
}

// Write is one recorded Stdout or Stderr call.
type Write struct {
	Stream Stream
	Data   string
}

var (
	_ procenv.Process             = (*Recorder)(nil)
	_ procenv.RegistrationCounter = (*Recorder)(nil)
)

// Recorder is an in-memory procenv.Process. It touches no host primitive: writes,
// exit codes, and handlers are recorded, and Fire stands in for signal delivery.
//
// Overrides from procenv options still apply: WithArgs sets the arguments, and
// WithStdout, WithStderr, and WithExitFunc receive every call after it is recorded.
type Recorder struct {
	cfg procenv.Config

	mu       sync.Mutex
	writes   []Write
	exits    []int
	handlers map[procenv.Signal][]func()
}

// NewRecorder creates a Recorder. Without WithArgs its argument list is empty.
func NewRecorder(opts ...procenv.Option) *Recorder {
	return &Recorder{
		cfg:      procenv.NewConfig(opts...),
		handlers: make(map[procenv.Signal][]func()),
	}
}

// Args returns the configured arguments.
func (r *Recorder) Args() []string {
	if r.cfg.Args == nil {
		return []string{}
	}

	return slices.Clone(r.cfg.Args)
}

// Stdout records s and forwards it to the configured stdout writer, if any.
func (r *Recorder) Stdout(s string) error {
	return r.write(StreamStdout, r.cfg.Stdout, s)
}

// Stderr records s and forwards it to the configured stderr writer, if any.
func (r *Recorder) Stderr(s string) error {
	return r.write(StreamStderr, r.cfg.Stderr, s)
}

// Exit records code. It returns; nothing is terminated.
func (r *Recorder) Exit(code int) {
	r.mu.Lock()
	r.exits = append(r.exits, code)
	r.mu.Unlock()

	if r.cfg.ExitFunc != nil {
		r.cfg.ExitFunc(code)
	}
}

// Signal records handler for sig.
func (r *Recorder) Signal(sig procenv.Signal, handler func()) error {
	if err := procenv.CheckRegistration(r.cfg.Vocabulary, sig, handler); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.handlers[sig] = append(r.handlers[sig], handler)

	return nil
}

// Family returns procenv.FamilyUnknown; a Recorder is not backed by a host.
func (r *Recorder) Family() procenv.Family {
	return procenv.FamilyUnknown
}

// Registrations returns the number of handlers recorded for sig.
func (r *Recorder) Registrations(sig procenv.Signal) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.handlers[sig])
}

// Fire invokes every handler recorded for sig, in registration order, and returns how
// many ran. Handlers run on the calling goroutine without the lock held.
func (r *Recorder) Fire(sig procenv.Signal) int {
	r.mu.Lock()
	handlers := slices.Clone(r.handlers[sig])
	r.mu.Unlock()

	for _, h := range handlers {
		h()
	}

	return len(handlers)
}

// Writes returns every recorded write in call order.
func (r *Recorder) Writes() []Write {
	r.mu.Lock()
	defer r.mu.Unlock()

	return slices.Clone(r.writes)
}

// StdoutString returns everything written to stdout.
func (r *Recorder) StdoutString() string {
	return r.joined(StreamStdout)
}

// StderrString returns everything written to stderr.
func (r *Recorder) StderrString() string {
	return r.joined(StreamStderr)
}

// ExitCodes returns every code passed to Exit.
func (r *Recorder) ExitCodes() []int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return slices.Clone(r.exits)
}

func (r *Recorder) write(stream Stream, w io.Writer, s string) error {
	r.mu.Lock()
	r.writes = append(r.writes, Write{Stream: stream, Data: s})
	r.mu.Unlock()

	if w == nil {
		return nil
	}

	if _, err := io.WriteString(w, s); err != nil {
		return &procenv.HostError{Family: procenv.FamilyUnknown, Op: stream.String(), Err: err}
	}

	return nil
}

func (r *Recorder) joined(stream Stream) string {
	r.mu.Lock()
	defer r.mu.Unlock()

	var b strings.Builder

	for _, w := range r.writes {
		if w.Stream == stream {
			b.WriteString(w.Data)
		}
	}

	return b.String()
}
