package procenvtest

import (
	"sync"

	"github.com/ruffel/procenv"
	"github.com/stretchr/testify/assert"
)

func exitContracts() []TestCase {
	return []TestCase{
		{
			Category:    CategoryExit,
			Name:        "exit-forwards-code",
			Description: "Exit accepts zero and nonzero codes and forwards them untouched",
			Run: func(t T, newProcess Factory) {
				var (
					mu    sync.Mutex
					codes []int
				)

				p := build(t, newProcess, procenv.WithExitFunc(func(code int) {
					mu.Lock()
					defer mu.Unlock()

					codes = append(codes, code)
				}))

				p.Exit(0)
				p.Exit(1)
				p.Exit(255)

				mu.Lock()
				defer mu.Unlock()

				assert.Equal(t, []int{0, 1, 255}, codes)
			},
		},
	}
}
