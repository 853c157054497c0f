// Package procenv provides a uniform process capability (arguments, standard streams,
// exit, and signal handlers) over interchangeable host implementations.
//
// # Core Interfaces
//
// - Process: the capability handle. Calling code depends on this and nothing else.
// - RegistrationCounter: optional; reports how many handlers are attached per signal.
//
// # Providers
//
// Each host family lives in its own package under providers/ (local, jshost, mock).
// The detect package picks the right one for the running host. Prefer passing a Process
// into the code that needs it over reaching for a global; tests can then hand in a
// procenvtest.Recorder or a mock.
//
// # Signals
//
// Signal is a closed set. A Process only accepts members of its Vocabulary. Signals that
// the host cannot deliver are accepted and silently ignored: registration succeeds but
// the handler never runs.
package procenv

// Process is the capability handle for the running process.
type Process interface {
	// Args returns the user-supplied arguments in order, excluding the executable and
	// script path. It never returns nil.
	Args() []string

	// Stdout writes s to standard output as a single write, byte for byte.
	Stdout(s string) error

	// Stderr writes s to standard error as a single write, byte for byte.
	Stderr(s string) error

	// Exit terminates the process with the given code.
	// Backed by the real host it does not return.
	Exit(code int)

	// Signal registers handler to run whenever sig is delivered.
	// Each call adds an independent registration. Signals in the vocabulary that the
	// host cannot deliver are accepted without attaching anything.
	Signal(sig Signal, handler func()) error

	// Family reports which host family backs this Process.
	Family() Family
}

// RegistrationCounter is implemented by providers that can report attached handlers.
type RegistrationCounter interface {
	// Registrations returns the number of handlers attached for sig.
	// Registrations swallowed as unsupported are not counted.
	Registrations(sig Signal) int
}
