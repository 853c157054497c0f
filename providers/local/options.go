package local

import "github.com/ruffel/procenv"

// API compatibility check.
var (
	_ procenv.Process             = (*Environment)(nil)
	_ procenv.RegistrationCounter = (*Environment)(nil)
)

// Supported reports whether sig can be delivered on this build of the local provider.
func Supported(sig procenv.Signal) bool {
	_, ok := osSignals[sig]

	return ok
}
