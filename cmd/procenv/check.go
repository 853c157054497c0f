package main

import (
	"context"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/ruffel/procenv"
	"github.com/ruffel/procenv/procenvtest"
	"github.com/spf13/cobra"
)

const recorderName = "recorder"

func (a *app) checkCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Run the provider contract suite against this host and the in-memory recorder",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			providers := map[string]procenvtest.Factory{
				a.proc.Family().String(): func(_ procenvtest.T, opts ...procenv.Option) (procenv.Process, error) {
					return a.newProcess(opts...)
				},
				recorderName: func(_ procenvtest.T, opts ...procenv.Option) (procenv.Process, error) {
					return procenvtest.NewRecorder(opts...), nil
				},
			}

			m := runMatrix(cmd.Context(), providers)

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, titleStyle.Render("Contract check"))

			if m.render(out) {
				return &exitError{code: 1}
			}

			return nil
		},
	}
}

// outcome is the result of one contract against one provider.
type outcome int

const (
	passed outcome = iota
	failed
	skipped
)

func (o outcome) String() string {
	switch o {
	case failed:
		return "FAILED"
	case skipped:
		return "SKIPPED"
	default:
		return "PASSED"
	}
}

func (o outcome) style() lipgloss.Style {
	switch o {
	case failed:
		return failedStyle
	case skipped:
		return skippedStyle
	default:
		return passedStyle
	}
}

type cell struct {
	outcome outcome
	detail  string
}

type row struct {
	contract procenvtest.TestCase
	cells    []cell // indexed like matrix.providers
}

type matrix struct {
	providers []string
	rows      []row
}

// runMatrix runs every contract against every provider, providers in name order.
func runMatrix(ctx context.Context, factories map[string]procenvtest.Factory) matrix {
	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}

	slices.Sort(names)

	m := matrix{providers: names}

	for _, tc := range procenvtest.AllContracts() {
		r := row{contract: tc, cells: make([]cell, len(names))}
		for i, name := range names {
			r.cells[i] = runContract(ctx, factories[name], tc)
		}

		m.rows = append(m.rows, r)
	}

	return m
}

// abort unwinds a contract after FailNow or Skipf.
type abort struct{}

// contractT satisfies procenvtest.T outside of `go test`. FailNow and Skipf unwind
// with an abort panic that runContract recovers.
type contractT struct {
	ctx    context.Context //nolint:containedctx
	name   string
	result cell
}

func (c *contractT) Errorf(format string, args ...any) {
	c.result = cell{outcome: failed, detail: fmt.Sprintf(format, args...)}
}

func (c *contractT) FailNow() {
	c.result.outcome = failed

	panic(abort{})
}

func (c *contractT) Skipf(format string, args ...any) {
	c.result = cell{outcome: skipped, detail: fmt.Sprintf(format, args...)}

	panic(abort{})
}

func (c *contractT) Context() context.Context { return c.ctx }

func (c *contractT) Name() string { return c.name }

func runContract(ctx context.Context, factory procenvtest.Factory, tc procenvtest.TestCase) (res cell) {
	t := &contractT{ctx: ctx, name: tc.ID()}

	// Providers such as local hold process-wide signal registrations until closed.
	var built []procenv.Process

	tracked := func(tt procenvtest.T, opts ...procenv.Option) (procenv.Process, error) {
		p, err := factory(tt, opts...)
		if err == nil {
			built = append(built, p)
		}

		return p, err
	}

	defer func() {
		for _, p := range built {
			if c, ok := p.(io.Closer); ok {
				_ = c.Close()
			}
		}

		if r := recover(); r != nil {
			if _, ok := r.(abort); !ok {
				panic(r)
			}
		}

		res = t.result
	}()

	if tc.Prereq != nil {
		if ok, reason := tc.Prereq(t, tracked); !ok {
			t.Skipf("prereq unmet: %s", reason)
		}
	}

	tc.Run(t, tracked)

	return t.result
}

// render prints the matrix and a list of failures. It reports whether any contract
// failed for any provider.
func (m matrix) render(w io.Writer) bool {
	width := len("CONTRACT")
	for _, r := range m.rows {
		width = max(width, len(r.contract.ID()))
	}

	col := len(skipped.String())
	for _, name := range m.providers {
		col = max(col, len(name))
	}

	cells := []string{headerStyle.Render(fmt.Sprintf("%-*s", width, "CONTRACT"))}
	for _, name := range m.providers {
		cells = append(cells, headerStyle.Render(fmt.Sprintf("%-*s", col, strings.ToUpper(name))))
	}

	fmt.Fprintln(w, strings.Join(cells, " "))

	var failures []string

	anySkipped := false

	for _, r := range m.rows {
		cells = []string{rowStyle.Render(fmt.Sprintf("%-*s", width, r.contract.ID()))}

		for i, c := range r.cells {
			cells = append(cells, c.outcome.style().Render(fmt.Sprintf("%-*s", col, c.outcome)))

			switch c.outcome {
			case failed:
				failures = append(failures, fmt.Sprintf("[%s] %s: %s", m.providers[i], r.contract.ID(), c.detail))
			case skipped:
				anySkipped = true
			case passed:
			}
		}

		fmt.Fprintln(w, strings.Join(cells, " "))
	}

	switch {
	case len(failures) > 0:
		fmt.Fprintln(w, errorStyle.Render("Diverged:"))

		for _, f := range failures {
			fmt.Fprintf(w, "  - %s\n", f)
		}
	case anySkipped:
		fmt.Fprintln(w, infoStyle.Render("No failures; skipped contracts could not be compared."))
	default:
		fmt.Fprintln(w, checkStyle.Render("All providers are in parity."))
	}

	return len(failures) > 0
}
