package jshost

import "github.com/ruffel/procenv"

// attach runs register and applies the unsupported-signal guard.
// A refusal for a guarded signal is discarded and reported as not attached; any other
// refusal is returned unchanged.
func attach(family procenv.Family, sig procenv.Signal, register func() error) (bool, error) {
	err := register()
	if err == nil {
		return true, nil
	}

	if procenv.Guarded(family, sig) {
		return false, nil
	}

	return false, err
}
