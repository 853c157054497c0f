// Package mock provides a testify/mock implementation of procenv.Process for tests that
// want to assert on individual calls rather than record them.
package mock

import (
	"github.com/ruffel/procenv"
	"github.com/stretchr/testify/mock"
)

// Process implements a mock procenv.Process using testify/mock.
type Process struct {
	mock.Mock
}

var (
	_ procenv.Process             = (*Process)(nil)
	_ procenv.RegistrationCounter = (*Process)(nil)
)

// New creates a new mock process.
func New() *Process {
	return &Process{}
}

// Args mocks reading the argument list.
func (m *Process) Args() []string {
	args := m.Called()
	if args.Get(0) == nil {
		return []string{}
	}

	return args.Get(0).([]string)
}

// Stdout mocks a standard output write.
func (m *Process) Stdout(s string) error {
	args := m.Called(s)

	return args.Error(0)
}

// Stderr mocks a standard error write.
func (m *Process) Stderr(s string) error {
	args := m.Called(s)

	return args.Error(0)
}

// Exit mocks process termination. It returns.
func (m *Process) Exit(code int) {
	m.Called(code)
}

// Signal mocks a handler registration.
func (m *Process) Signal(sig procenv.Signal, handler func()) error {
	args := m.Called(sig, handler)

	return args.Error(0)
}

// Family mocks reporting the host family.
func (m *Process) Family() procenv.Family {
	args := m.Called()

	return args.Get(0).(procenv.Family)
}

// Registrations mocks the registration counter.
func (m *Process) Registrations(sig procenv.Signal) int {
	args := m.Called(sig)

	return args.Int(0)
}

// InvokeHandler is a helper that runs the registered handler as soon as Signal is called.
// Usage: proc.On("Signal", procenv.SIGTERM, mock.Anything).Run(InvokeHandler()).Return(nil).
func InvokeHandler() func(mock.Arguments) {
	return func(args mock.Arguments) {
		if h, ok := args.Get(1).(func()); ok && h != nil {
			h()
		}
	}
}
