//go:build windows

package local

import (
	"os"
	"syscall"

	"github.com/ruffel/procenv"
)

// osSignals maps the procenv vocabulary to signals this platform can deliver.
// The runtime reports Ctrl+C and Ctrl+Break as os.Interrupt, and console close,
// logoff, and shutdown events as SIGTERM.
var osSignals = map[procenv.Signal]os.Signal{
	procenv.SIGINT:  os.Interrupt,
	procenv.SIGTERM: syscall.SIGTERM,
}
