// Package local provides an implementation of the procenv.Process interface for a
// native Go process.
//
// It is a thin wrapper around the standard library's "os" and "os/signal" packages.
// Arguments come from os.Args without the executable path, writes go to os.Stdout and
// os.Stderr, and Exit calls os.Exit. Each of these can be replaced through procenv
// options, which is how the tests observe them.
//
// Signal availability is decided per platform at build time. A signal the platform
// lacks (SIGUSR1 on Windows, SIGINFO on Linux) is accepted and ignored.
//
// Usage:
//
//	env, _ := local.New()
//	defer env.Close()
//	_ = env.Signal(procenv.SIGTERM, func() { env.Exit(0) })
package local
