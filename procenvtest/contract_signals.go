package procenvtest

import (
	"github.com/ruffel/procenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const undeclaredSignal = procenv.Signal(99)

func signalContracts() []TestCase {
	return []TestCase{
		{
			Category:    CategorySignals,
			Name:        "vocabulary-accepted",
			Description: "Every vocabulary member registers without error, whatever the host supports",
			Run: func(t T, newProcess Factory) {
				p := build(t, newProcess)

				for _, sig := range procenv.FullVocabulary.Signals() {
					require.NoError(t, p.Signal(sig, func() {}), "signal %s", sig)
				}
			},
		},
		{
			Category:    CategorySignals,
			Name:        "restricted-vocabulary",
			Description: "A restricted vocabulary accepts its members and rejects the rest",
			Run: func(t T, newProcess Factory) {
				p := build(t, newProcess, procenv.WithVocabulary(procenv.RestrictedVocabulary))

				require.NoError(t, p.Signal(procenv.SIGTERM, func() {}))
				require.NoError(t, p.Signal(procenv.SIGINFO, func() {}))
				require.ErrorIs(t, p.Signal(procenv.SIGHUP, func() {}), procenv.ErrSignalNotInVocabulary)
				require.ErrorIs(t, p.Signal(procenv.SIGINT, func() {}), procenv.ErrSignalNotInVocabulary)
			},
		},
		{
			Category:    CategorySignals,
			Name:        "undeclared-rejected",
			Description: "A value that is not a declared Signal is rejected",
			Run: func(t T, newProcess Factory) {
				p := build(t, newProcess)

				require.ErrorIs(t, p.Signal(undeclaredSignal, func() {}), procenv.ErrSignalNotInVocabulary)
				require.ErrorIs(t, p.Signal(0, func() {}), procenv.ErrSignalNotInVocabulary)
			},
		},
		{
			Category:    CategorySignals,
			Name:        "nil-handler-rejected",
			Description: "Registering a nil handler fails",
			Run: func(t T, newProcess Factory) {
				p := build(t, newProcess)

				require.ErrorIs(t, p.Signal(procenv.SIGTERM, nil), procenv.ErrNilHandler)
			},
		},
		{
			Category:    CategorySignals,
			Name:        "rejection-leaves-no-trace",
			Description: "A rejected registration attaches nothing",
			Prereq:      countingPrereq,
			Run: func(t T, newProcess Factory) {
				p := build(t, newProcess, procenv.WithVocabulary(procenv.RestrictedVocabulary))
				counter := p.(procenv.RegistrationCounter)

				require.Error(t, p.Signal(procenv.SIGINT, func() {}))
				require.Error(t, p.Signal(procenv.SIGTERM, nil))

				assert.Zero(t, counter.Registrations(procenv.SIGINT))
				assert.Zero(t, counter.Registrations(procenv.SIGTERM))
			},
		},
		{
			Category:    CategorySignals,
			Name:        "registrations-accumulate",
			Description: "Two handlers for the same signal are both retained",
			Prereq:      countingPrereq,
			Run: func(t T, newProcess Factory) {
				p := build(t, newProcess)
				counter := p.(procenv.RegistrationCounter)

				before := counter.Registrations(procenv.SIGINT)

				require.NoError(t, p.Signal(procenv.SIGINT, func() {}))
				require.NoError(t, p.Signal(procenv.SIGINT, func() {}))

				assert.Equal(t, before+2, counter.Registrations(procenv.SIGINT))
			},
		},
	}
}
