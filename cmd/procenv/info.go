package main

import (
	"fmt"
	"strings"

	"github.com/ruffel/procenv"
	"github.com/ruffel/procenv/providers/local"
	"github.com/spf13/cobra"
)

func (a *app) infoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show the host family and which signals it can deliver",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return a.renderInfo()
		},
	}
}

func (a *app) renderInfo() error {
	family := a.proc.Family()
	os := targetOS(a.proc)

	var b strings.Builder

	b.WriteString(titleStyle.Render("Process capability") + "\n")
	b.WriteString(infoStyle.Render(fmt.Sprintf("family:     %s", family)) + "\n")
	b.WriteString(infoStyle.Render(fmt.Sprintf("os:         %s", os)) + "\n")
	b.WriteString(infoStyle.Render(fmt.Sprintf("vocabulary: %s", a.settings.Vocabulary)) + "\n\n")

	const col = 10

	for _, h := range []string{"SIGNAL", "ACCEPTED", "DELIVERED", "GUARDED"} {
		b.WriteString(headerStyle.Render(fmt.Sprintf("%-*s", col, h)) + " ")
	}

	b.WriteString("\n")

	for _, sig := range procenv.Signals() {
		b.WriteString(rowStyle.Render(fmt.Sprintf("%-*s", col, sig)) + " ")
		b.WriteString(yesNo(a.settings.Vocabulary.Contains(sig), col) + " ")
		b.WriteString(yesNo(delivered(a.proc, os, sig), col) + " ")
		b.WriteString(yesNo(procenv.Guarded(family, sig), col) + "\n")
	}

	return a.proc.Stdout(b.String())
}

func yesNo(v bool, width int) string {
	if v {
		return passedStyle.Render(fmt.Sprintf(" %-*s", width, "yes"))
	}

	return skippedStyle.Render(fmt.Sprintf(" %-*s", width, "no"))
}

// delivered reports whether handlers for sig can ever run on this host.
// The local provider knows its build-time table; other families use the matrix.
func delivered(proc procenv.Process, os procenv.TargetOS, sig procenv.Signal) bool {
	if proc.Family() == procenv.FamilyLocal {
		return local.Supported(sig)
	}

	return procenv.Supported(proc.Family(), os, sig)
}

func targetOS(proc procenv.Process) procenv.TargetOS {
	if t, ok := proc.(interface{ TargetOS() procenv.TargetOS }); ok {
		return t.TargetOS()
	}

	return procenv.DetectLocalOS()
}
