package procenv

import (
	"errors"
	"fmt"
)

// ErrNotSupported indicates that the requested feature (e.g., a stream override) is not
// supported by the specific provider.
var ErrNotSupported = errors.New("operation not supported")

// ErrEnvironmentClosed indicates that an operation was attempted on a closed provider.
var ErrEnvironmentClosed = errors.New("environment is closed")

// ErrSignalNotInVocabulary indicates a signal outside the active vocabulary, or a value
// that is not a declared Signal at all.
var ErrSignalNotInVocabulary = errors.New("signal not in vocabulary")

// ErrNilHandler indicates a signal registration without a handler.
var ErrNilHandler = errors.New("signal handler cannot be nil")

// HostError represents a failure raised by a host primitive (a stream write, an
// argument lookup). It is returned as-is; nothing retries it.
type HostError struct {
	Family Family
	Op     string
	Err    error
}

func (e *HostError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Family, e.Op, e.Err)
}

func (e *HostError) Unwrap() error {
	return e.Err
}

// CheckRegistration validates a Signal call against the vocabulary.
// Providers call it before touching the host so a rejected call leaves no trace.
func CheckRegistration(vocab Vocabulary, sig Signal, handler func()) error {
	if !sig.Valid() || !vocab.Contains(sig) {
		return fmt.Errorf("cannot register %s (vocabulary %s): %w", sig, vocab, ErrSignalNotInVocabulary)
	}

	if handler == nil {
		return fmt.Errorf("cannot register %s: %w", sig, ErrNilHandler)
	}

	return nil
}
