package procenvtest

import (
	"errors"

	"github.com/ruffel/procenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// errWriteFailed is returned by the failing writer used to check error propagation.
var errWriteFailed = errors.New("procenvtest: write failed")

func streamContracts() []TestCase {
	return []TestCase{
		{
			Category:    CategoryStreams,
			Name:        "stdout-exact-unicode",
			Description: "Stdout performs exactly one write of exactly the given text",
			Run: func(t T, newProcess Factory) {
				var out, errOut WriteCounter

				p := build(t, newProcess, procenv.WithStdout(&out), procenv.WithStderr(&errOut))

				require.NoError(t, p.Stdout("Hello 世界 🌍\n"))
				assert.Equal(t, []string{"Hello 世界 🌍\n"}, out.Writes())
				assert.Empty(t, errOut.Writes())
			},
		},
		{
			Category:    CategoryStreams,
			Name:        "stderr-exact-unicode",
			Description: "Stderr performs exactly one write of exactly the given text",
			Run: func(t T, newProcess Factory) {
				var out, errOut WriteCounter

				p := build(t, newProcess, procenv.WithStdout(&out), procenv.WithStderr(&errOut))

				require.NoError(t, p.Stderr("ошибка: ✗ no newline"))
				assert.Equal(t, []string{"ошибка: ✗ no newline"}, errOut.Writes())
				assert.Empty(t, out.Writes())
			},
		},
		{
			Category:    CategoryStreams,
			Name:        "empty-write",
			Description: "Writing an empty string succeeds and records one empty write",
			Run: func(t T, newProcess Factory) {
				var out, errOut WriteCounter

				p := build(t, newProcess, procenv.WithStdout(&out), procenv.WithStderr(&errOut))

				require.NoError(t, p.Stdout(""))
				require.NoError(t, p.Stderr(""))
				assert.Equal(t, []string{""}, out.Writes())
				assert.Equal(t, []string{""}, errOut.Writes())
			},
		},
		{
			Category:    CategoryStreams,
			Name:        "streams-independent",
			Description: "Interleaved writes keep per-stream order and never cross streams",
			Run: func(t T, newProcess Factory) {
				var out, errOut WriteCounter

				p := build(t, newProcess, procenv.WithStdout(&out), procenv.WithStderr(&errOut))

				require.NoError(t, p.Stdout("a"))
				require.NoError(t, p.Stderr("b"))
				require.NoError(t, p.Stdout("c\r\n"))
				require.NoError(t, p.Stderr("d\n"))

				assert.Equal(t, []string{"a", "c\r\n"}, out.Writes())
				assert.Equal(t, []string{"b", "d\n"}, errOut.Writes())
			},
		},
		{
			Category:    CategoryStreams,
			Name:        "write-error-propagates",
			Description: "A failing stream surfaces its error to the caller",
			Run: func(t T, newProcess Factory) {
				failing := &WriteCounter{Err: errWriteFailed}

				p := build(t, newProcess, procenv.WithStdout(failing), procenv.WithStderr(failing))

				require.ErrorIs(t, p.Stdout("lost"), errWriteFailed)
				require.ErrorIs(t, p.Stderr("lost"), errWriteFailed)
			},
		},
	}
}
