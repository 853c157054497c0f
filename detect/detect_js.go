//go:build js && wasm

package detect

import (
	"github.com/ruffel/procenv"
	"github.com/ruffel/procenv/providers/jshost"
)

// New returns the jshost provider for the JavaScript runtime in use.
func New(opts ...procenv.Option) (procenv.Process, error) {
	p, err := jshost.New(opts...)
	if err != nil {
		return nil, err
	}

	return p, nil
}

// Family reports the family New would select, without constructing anything.
func Family() procenv.Family {
	return jshost.Select(jshost.HostGlobals())
}
