//go:build unix

package local

import (
	"os"

	"github.com/ruffel/procenv"
	"golang.org/x/sys/unix"
)

// osSignals maps the procenv vocabulary to signals this platform can deliver.
var osSignals = map[procenv.Signal]os.Signal{
	procenv.SIGINT:  os.Interrupt,
	procenv.SIGTERM: unix.SIGTERM,
	procenv.SIGHUP:  unix.SIGHUP,
	procenv.SIGUSR1: unix.SIGUSR1,
	procenv.SIGUSR2: unix.SIGUSR2,
}
