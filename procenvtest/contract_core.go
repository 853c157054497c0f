package procenvtest

import (
	"github.com/ruffel/procenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func coreContracts() []TestCase {
	return []TestCase{
		{
			Category:    CategoryCore,
			Name:        "args-never-nil",
			Description: "Args returns a non-nil slice when read from the host",
			Run: func(t T, newProcess Factory) {
				p := build(t, newProcess)
				assert.NotNil(t, p.Args())
			},
		},
		{
			Category:    CategoryCore,
			Name:        "args-passthrough",
			Description: "Args returns exactly the supplied arguments in order",
			Run: func(t T, newProcess Factory) {
				want := []string{"alpha", "two words", "", "--flag=世界"}
				p := build(t, newProcess, procenv.WithArgs(want...))

				assert.Equal(t, want, p.Args())
			},
		},
		{
			Category:    CategoryCore,
			Name:        "args-empty",
			Description: "Args with no user arguments is an empty, non-nil slice",
			Run: func(t T, newProcess Factory) {
				p := build(t, newProcess, procenv.WithArgs())

				got := p.Args()
				require.NotNil(t, got)
				assert.Empty(t, got)
			},
		},
		{
			Category:    CategoryCore,
			Name:        "args-isolated",
			Description: "Mutating the returned slice does not affect later calls",
			Run: func(t T, newProcess Factory) {
				p := build(t, newProcess, procenv.WithArgs("one", "two"))

				first := p.Args()
				require.Len(t, first, 2)

				first[0] = "mutated"

				assert.Equal(t, []string{"one", "two"}, p.Args())
			},
		},
	}
}
