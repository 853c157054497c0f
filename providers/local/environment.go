package local

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"slices"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/ruffel/procenv"
)

// Environment implements procenv.Process for the local operating system.
// Safe for concurrent use.
type Environment struct {
	cfg      procenv.Config
	targetOS procenv.TargetOS
	logger   *log.Logger

	mu       sync.Mutex
	handlers map[procenv.Signal][]*registration
	closed   bool
}

// registration is one attached handler: its own channel and dispatch goroutine.
type registration struct {
	ch chan os.Signal
}

// New creates a new local environment.
// It does not touch the host: arguments, streams, and signals are used only when the
// corresponding method is called.
func New(opts ...procenv.Option) (*Environment, error) {
	cfg := procenv.NewConfig(opts...)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("local provider: %w", err)
	}

	targetOS := cfg.TargetOS
	if targetOS == procenv.OSUnknown {
		targetOS = procenv.DetectLocalOS()
	}

	return &Environment{
		cfg:      cfg,
		targetOS: targetOS,
		logger:   cfg.Logger.WithPrefix("procenv/local"),
		handlers: make(map[procenv.Signal][]*registration),
	}, nil
}

// Args returns os.Args without the executable path, or the configured override.
func (e *Environment) Args() []string {
	if e.cfg.Args != nil {
		return slices.Clone(e.cfg.Args)
	}

	if len(os.Args) < 2 {
		return []string{}
	}

	return slices.Clone(os.Args[1:])
}

// Stdout writes s to standard output.
func (e *Environment) Stdout(s string) error {
	w := e.cfg.Stdout
	if w == nil {
		w = os.Stdout
	}

	return write(w, "stdout", s)
}

// Stderr writes s to standard error.
func (e *Environment) Stderr(s string) error {
	w := e.cfg.Stderr
	if w == nil {
		w = os.Stderr
	}

	return write(w, "stderr", s)
}

// Exit terminates the process via os.Exit, or calls the configured exit function.
func (e *Environment) Exit(code int) {
	if e.cfg.ExitFunc != nil {
		e.cfg.ExitFunc(code)

		return
	}

	os.Exit(code)
}

// Signal attaches handler to sig using os/signal.
// Each registration gets its own channel, so handlers never replace each other.
func (e *Environment) Signal(sig procenv.Signal, handler func()) error {
	if err := procenv.CheckRegistration(e.cfg.Vocabulary, sig, handler); err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return fmt.Errorf("cannot register %s: %w", sig, procenv.ErrEnvironmentClosed)
	}

	osSig, ok := osSignals[sig]
	if !ok {
		e.logger.Debug("signal unavailable on this platform, handler not attached", "signal", sig, "os", e.targetOS)

		return nil
	}

	reg := &registration{ch: make(chan os.Signal, 1)}
	signal.Notify(reg.ch, osSig)

	e.handlers[sig] = append(e.handlers[sig], reg)

	go reg.dispatch(handler)

	e.logger.Debug("handler attached", "signal", sig, "registrations", len(e.handlers[sig]))

	return nil
}

// Family returns procenv.FamilyLocal.
func (e *Environment) Family() procenv.Family {
	return procenv.FamilyLocal
}

// TargetOS returns the operating system of the host machine.
func (e *Environment) TargetOS() procenv.TargetOS {
	return e.targetOS
}

// Registrations returns the number of handlers currently attached for sig.
func (e *Environment) Registrations(sig procenv.Signal) int {
	e.mu.Lock()
	defer e.mu.Unlock()

	return len(e.handlers[sig])
}

// Close stops delivery to every attached handler.
// Further Signal calls fail; the other operations keep working. Safe to call repeatedly.
func (e *Environment) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return nil
	}

	e.closed = true

	for sig, regs := range e.handlers {
		for _, reg := range regs {
			reg.stop()
		}

		delete(e.handlers, sig)
	}

	return nil
}

func (r *registration) dispatch(handler func()) {
	for range r.ch {
		handler()
	}
}

// stop detaches the channel. After signal.Stop returns no more sends happen, so closing
// the channel is safe and ends the dispatch goroutine.
func (r *registration) stop() {
	signal.Stop(r.ch)
	close(r.ch)
}

func write(w io.Writer, op, s string) error {
	if _, err := io.WriteString(w, s); err != nil {
		return &procenv.HostError{Family: procenv.FamilyLocal, Op: op, Err: err}
	}

	return nil
}
