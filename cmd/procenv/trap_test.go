package main

import (
	"testing"

	"github.com/ruffel/procenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrap_DeliversAndExits(t *testing.T) {
	t.Parallel()

	h := newHarness("trap", "--signal", "usr1", "--signal", "SIGHUP", "--count", "2", "--exit-code", "3")

	done := make(chan int, 1)

	go func() { done <- h.run(t.Context()) }()

	rec := h.configured(t)

	require.Eventually(t, func() bool {
		return rec.Registrations(procenv.SIGUSR1) == 1 && rec.Registrations(procenv.SIGHUP) == 1
	}, waitFor, tick)

	assert.Equal(t, 1, rec.Fire(procenv.SIGHUP))
	assert.Equal(t, 1, rec.Fire(procenv.SIGUSR1))

	select {
	case code := <-done:
		assert.Equal(t, 3, code)
	case <-t.Context().Done():
		require.FailNow(t, "trap never returned")
	}

	assert.Equal(t, "received SIGHUP\nreceived SIGUSR1\n", rec.StdoutString())
}

func TestTrap_Timeout(t *testing.T) {
	t.Parallel()

	h := newHarness("trap", "--timeout", "20ms")

	assert.Equal(t, 1, h.run(t.Context()))
	assert.Contains(t, h.configured(t).StderrString(), "context deadline exceeded")
}

func TestTrap_RejectsUndeclaredSignal(t *testing.T) {
	t.Parallel()

	h := newHarness("--vocabulary", "restricted", "trap", "--signal", "INT")

	assert.Equal(t, 1, h.run(t.Context()))

	rec := h.configured(t)
	assert.Contains(t, rec.StderrString(), "signal not in vocabulary")
	assert.Zero(t, rec.Registrations(procenv.SIGINT))
}

func TestTrap_InvalidFlags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "ZeroCount", args: []string{"trap", "--count", "0"}, want: "--count must be at least 1"},
		{name: "UnknownSignal", args: []string{"trap", "-s", "SIGKILL"}, want: `unknown signal "SIGKILL"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h := newHarness(tt.args...)

			assert.Equal(t, 1, h.run(t.Context()))
			assert.Contains(t, h.configured(t).StderrString(), tt.want)
		})
	}
}

func TestParseSignals(t *testing.T) {
	t.Parallel()

	sigs, err := parseSignals([]string{"int", "SIGTERM", "info"})
	require.NoError(t, err)
	assert.Equal(t, []procenv.Signal{procenv.SIGINT, procenv.SIGTERM, procenv.SIGINFO}, sigs)

	_, err = parseSignals([]string{"nope"})
	require.ErrorIs(t, err, procenv.ErrSignalNotInVocabulary)
}
