// Package mock provides a testify-backed procenv.Process for tests that need to set
// expectations on individual capability calls.
//
// Usage:
//
//	m := new(mock.Process)
//	m.On("Args").Return([]string{"--verbose"})
//	m.On("Stdout", "ready\n").Return(nil)
//	// pass m to the code under test, then m.AssertExpectations(t)
package mock
