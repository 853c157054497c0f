//go:build js && wasm

package jshost

import (
	"fmt"
	"sync"
	"syscall/js"

	"github.com/charmbracelet/log"
	"github.com/ruffel/procenv"
)

var (
	_ procenv.Process             = (*Process)(nil)
	_ procenv.RegistrationCounter = (*Process)(nil)
)

// Process implements procenv.Process on top of the Deno or Node.js globals.
type Process struct {
	family procenv.Family
	host   host
	vocab  procenv.Vocabulary
	logger *log.Logger

	mu        sync.Mutex
	listeners map[procenv.Signal][]js.Func
	closed    bool
}

// host is the set of JavaScript primitives one runtime provides.
type host interface {
	argv() []string
	write(stream, s string) error
	exit(code int)
	addListener(name string, fn js.Func) error
	removeListener(name string, fn js.Func)
	targetOS() procenv.TargetOS
}

// HostGlobals returns Globals backed by the JavaScript global object.
func HostGlobals() Globals {
	return GlobalsFunc(func(name string) bool {
		v := js.Global().Get(name)

		return !v.IsUndefined() && !v.IsNull()
	})
}

// New selects the runtime from the Deno marker and binds to its globals.
// Nothing is read, written, or registered until a method is called.
func New(opts ...procenv.Option) (*Process, error) {
	cfg := procenv.NewConfig(opts...)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("jshost provider: %w", err)
	}

	family := Select(HostGlobals())
	if err := procenv.RejectOverrides(family, cfg); err != nil {
		return nil, err
	}

	var h host = nodeHost{process: js.Global().Get("process")}
	if family == procenv.FamilyDeno {
		h = denoHost{deno: js.Global().Get(Marker)}
	}

	return &Process{
		family:    family,
		host:      h,
		vocab:     cfg.Vocabulary,
		logger:    cfg.Logger.WithPrefix("procenv/" + family.String()),
		listeners: make(map[procenv.Signal][]js.Func),
	}, nil
}

// Args returns the user arguments from the host.
func (p *Process) Args() []string {
	return userArgs(p.family, p.host.argv())
}

// Stdout writes s to the host's standard output.
func (p *Process) Stdout(s string) error {
	if err := p.host.write("stdout", s); err != nil {
		return &procenv.HostError{Family: p.family, Op: "stdout", Err: err}
	}

	return nil
}

// Stderr writes s to the host's standard error.
func (p *Process) Stderr(s string) error {
	if err := p.host.write("stderr", s); err != nil {
		return &procenv.HostError{Family: p.family, Op: "stderr", Err: err}
	}

	return nil
}

// Exit calls the host's exit primitive.
func (p *Process) Exit(code int) {
	p.host.exit(code)
}

// Signal attaches handler as a host signal listener.
func (p *Process) Signal(sig procenv.Signal, handler func()) error {
	if err := procenv.CheckRegistration(p.vocab, sig, handler); err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return fmt.Errorf("cannot register %s: %w", sig, procenv.ErrEnvironmentClosed)
	}

	fn := js.FuncOf(func(js.Value, []js.Value) any {
		handler()

		return nil
	})

	attached, err := attach(p.family, sig, func() error {
		return p.host.addListener(sig.String(), fn)
	})
	if err != nil {
		fn.Release()

		return &procenv.HostError{Family: p.family, Op: "signal " + sig.String(), Err: err}
	}

	if !attached {
		fn.Release()
		p.logger.Debug("signal refused by host, handler not attached", "signal", sig, "os", p.host.targetOS())

		return nil
	}

	p.listeners[sig] = append(p.listeners[sig], fn)

	return nil
}

// Family reports procenv.FamilyDeno or procenv.FamilyNode.
func (p *Process) Family() procenv.Family {
	return p.family
}

// TargetOS reports the operating system as seen by the JavaScript host.
func (p *Process) TargetOS() procenv.TargetOS {
	return p.host.targetOS()
}

// Registrations returns the number of listeners this Process attached for sig.
func (p *Process) Registrations(sig procenv.Signal) int {
	p.mu.Lock()
	defer p.mu.Unlock()

	return len(p.listeners[sig])
}

// Close removes every listener this Process attached and releases its callbacks.
// Safe to call repeatedly.
func (p *Process) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil
	}

	p.closed = true

	for sig, fns := range p.listeners {
		for _, fn := range fns {
			p.host.removeListener(sig.String(), fn)
			fn.Release()
		}

		delete(p.listeners, sig)
	}

	return nil
}

// catch converts a JavaScript exception raised by fn into an error.
// Go panics that are not JavaScript exceptions are re-raised.
func catch(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			jsErr, ok := r.(js.Error)
			if !ok {
				panic(r)
			}

			err = jsErr
		}
	}()

	fn()

	return nil
}

func stringSlice(v js.Value) []string {
	n := v.Length()
	out := make([]string, n)

	for i := range n {
		out[i] = v.Index(i).String()
	}

	return out
}
