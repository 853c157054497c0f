// Package procenvtest holds the behavioral contract suite every procenv provider must
// pass, plus in-memory doubles for testing code that consumes a procenv.Process.
package procenvtest

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/ruffel/procenv"
	"github.com/stretchr/testify/require"
)

// Standard categories for grouping tests.
const (
	CategoryCore    = "core"
	CategoryStreams = "streams"
	CategorySignals = "signals"
	CategoryExit    = "exit"
)

// T is the minimal interface required for testify/assert and require.
type T interface {
	Errorf(format string, args ...any)
	FailNow()
	Skipf(format string, args ...any)
	Context() context.Context
	Name() string
}

// Factory builds a fresh Process for one contract run.
// Providers that cannot honour an option must fail with procenv.ErrNotSupported; the
// contract is then skipped rather than failed.
type Factory func(t T, opts ...procenv.Option) (procenv.Process, error)

// TestCase defines a single behavioral contract requirement.
type TestCase struct {
	Category    string
	Name        string
	Description string
	Prereq      func(t T, newProcess Factory) (ok bool, reason string)
	Run         func(t T, newProcess Factory)
}

// ID returns the stable, globally unique contract identifier.
func (tc TestCase) ID() string {
	return fmt.Sprintf("%s/%s", tc.Category, tc.Name)
}

// Verify is the standard Go test entry point for provider authors.
func Verify(t *testing.T, newProcess Factory) {
	t.Helper()

	for _, tc := range AllContracts() {
		t.Run(tc.ID(), func(t *testing.T) {
			if tc.Prereq != nil {
				ok, reason := tc.Prereq(t, newProcess)
				if !ok {
					t.Skipf("prereq unmet: %s", reason)
				}
			}

			tc.Run(t, newProcess)
		})
	}
}

// build constructs a Process, skipping the contract when the provider rejects opts.
func build(t T, newProcess Factory, opts ...procenv.Option) procenv.Process {
	p, err := newProcess(t, opts...)
	if errors.Is(err, procenv.ErrNotSupported) {
		t.Skipf("provider rejects options: %v", err)
	}

	require.NoError(t, err)
	require.NotNil(t, p)

	return p
}

func countingPrereq(t T, newProcess Factory) (bool, string) {
	p, err := newProcess(t)
	if err != nil {
		return false, err.Error()
	}

	if _, ok := p.(procenv.RegistrationCounter); !ok {
		return false, "provider does not implement procenv.RegistrationCounter"
	}

	return true, ""
}
