package procenv

import (
	"context"
	"fmt"
)

// Console adds formatting and waiting helpers on top of a Process.
type Console struct {
	proc Process
}

// NewConsole creates a new Console over the given process.
func NewConsole(proc Process) *Console {
	return &Console{proc: proc}
}

// Process returns the underlying capability.
func (c *Console) Process() Process {
	return c.proc
}

// Printf formats according to a format specifier and writes to standard output.
func (c *Console) Printf(format string, args ...any) error {
	return c.proc.Stdout(fmt.Sprintf(format, args...))
}

// Println writes its operands followed by a newline to standard output.
func (c *Console) Println(args ...any) error {
	return c.proc.Stdout(fmt.Sprintln(args...))
}

// Errorf formats according to a format specifier and writes to standard error.
func (c *Console) Errorf(format string, args ...any) error {
	return c.proc.Stderr(fmt.Sprintf(format, args...))
}

// Fail reports err on standard error and exits with code.
// A failed stderr write does not prevent the exit.
func (c *Console) Fail(code int, err error) {
	if err != nil {
		_ = c.proc.Stderr(fmt.Sprintf("error: %v\n", err))
	}

	c.proc.Exit(code)
}

// Notify registers handler for each of sigs. It stops at the first failed registration;
// handlers attached before it stay attached.
func (c *Console) Notify(handler func(Signal), sigs ...Signal) error {
	for _, sig := range sigs {
		if err := c.proc.Signal(sig, func() { handler(sig) }); err != nil {
			return err
		}
	}

	return nil
}

// Wait blocks until one of sigs is delivered or ctx is done, returning the signal.
// The handlers it attaches stay registered afterwards; repeated calls add more.
func (c *Console) Wait(ctx context.Context, sigs ...Signal) (Signal, error) {
	got := make(chan Signal, 1)

	err := c.Notify(func(sig Signal) {
		select {
		case got <- sig:
		default:
		}
	}, sigs...)
	if err != nil {
		return 0, err
	}

	select {
	case <-ctx.Done():
		return 0, ctx.Err()
	case sig := <-got:
		return sig, nil
	}
}
