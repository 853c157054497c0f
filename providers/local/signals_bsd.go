//go:build darwin || dragonfly || freebsd || netbsd || openbsd

package local

import (
	"github.com/ruffel/procenv"
	"golang.org/x/sys/unix"
)

func init() { osSignals[procenv.SIGINFO] = unix.SIGINFO }
