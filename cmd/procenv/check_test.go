package main

import (
	"bytes"
	"testing"

	"github.com/ruffel/procenv"
	"github.com/ruffel/procenv/procenvtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// nilArgs breaks the args contracts so the matrix has something to report.
type nilArgs struct {
	*procenvtest.Recorder
}

func (nilArgs) Args() []string { return nil }

func recorderFactory(_ procenvtest.T, opts ...procenv.Option) (procenv.Process, error) {
	return procenvtest.NewRecorder(opts...), nil
}

func findRow(t *testing.T, m matrix, id string) row {
	t.Helper()

	for _, r := range m.rows {
		if r.contract.ID() == id {
			return r
		}
	}

	require.FailNow(t, "contract not in matrix", id)

	return row{}
}

func TestRunMatrix_ReportsDivergence(t *testing.T) {
	t.Parallel()

	m := runMatrix(t.Context(), map[string]procenvtest.Factory{
		"good":   recorderFactory,
		"broken": func(_ procenvtest.T, opts ...procenv.Option) (procenv.Process, error) {
			return nilArgs{procenvtest.NewRecorder(opts...)}, nil
		},
	})

	require.Equal(t, []string{"broken", "good"}, m.providers)
	require.Len(t, m.rows, len(procenvtest.AllContracts()))

	r := findRow(t, m, "core/args-never-nil")
	assert.Equal(t, failed, r.cells[0].outcome)
	assert.Equal(t, passed, r.cells[1].outcome)

	// args-isolated must fail cleanly rather than panic on the nil slice.
	assert.Equal(t, failed, findRow(t, m, "core/args-isolated").cells[0].outcome)

	var out bytes.Buffer

	assert.True(t, m.render(&out))
	assert.Contains(t, out.String(), "Diverged:")
	assert.Contains(t, out.String(), "[broken] core/args-never-nil")
}

func TestRunMatrix_SkipsRejectedOptions(t *testing.T) {
	t.Parallel()

	m := runMatrix(t.Context(), map[string]procenvtest.Factory{
		"strict": func(tt procenvtest.T, opts ...procenv.Option) (procenv.Process, error) {
			if err := procenv.RejectOverrides(procenv.FamilyUnknown, procenv.NewConfig(opts...)); err != nil {
				return nil, err
			}

			return recorderFactory(tt, opts...)
		},
	})

	assert.Equal(t, skipped, findRow(t, m, "core/args-passthrough").cells[0].outcome)
	assert.Equal(t, passed, findRow(t, m, "core/args-never-nil").cells[0].outcome)

	var out bytes.Buffer

	assert.False(t, m.render(&out))
	assert.Contains(t, out.String(), "SKIPPED")
	assert.Contains(t, out.String(), "skipped contracts could not be compared")
}

func TestRunContract_PanicsPropagate(t *testing.T) {
	t.Parallel()

	tc := procenvtest.TestCase{
		Category: "core",
		Name:     "boom",
		Run:      func(procenvtest.T, procenvtest.Factory) { panic("boom") },
	}

	assert.PanicsWithValue(t, "boom", func() {
		runContract(t.Context(), recorderFactory, tc)
	})
}

func TestOutcomeString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "PASSED", passed.String())
	assert.Equal(t, "FAILED", failed.String())
	assert.Equal(t, "SKIPPED", skipped.String())
}
