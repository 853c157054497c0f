//go:build !unix && !windows

package local

import (
	"os"

	"github.com/ruffel/procenv"
)

// osSignals maps the procenv vocabulary to signals this platform can deliver.
var osSignals = map[procenv.Signal]os.Signal{
	procenv.SIGINT: os.Interrupt,
}
