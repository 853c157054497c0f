//go:build !(js && wasm)

package detect

import (
	"github.com/ruffel/procenv"
	"github.com/ruffel/procenv/providers/local"
)

// New returns the local provider.
func New(opts ...procenv.Option) (procenv.Process, error) {
	env, err := local.New(opts...)
	if err != nil {
		return nil, err
	}

	return env, nil
}

// Family reports the family New would select, without constructing anything.
func Family() procenv.Family {
	return procenv.FamilyLocal
}
