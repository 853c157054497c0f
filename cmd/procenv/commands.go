package main

import (
	"strings"

	"github.com/spf13/cobra"
)

func (a *app) argsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "args [--] [ARG...]",
		Short: "Print each argument on its own line",
		Long: `Prints each argument on its own line. Put -- before arguments that start with a
dash so they are not read as flags.`,
		RunE: func(_ *cobra.Command, args []string) error {
			for _, arg := range args {
				if err := a.console.Println(arg); err != nil {
					return err
				}
			}

			return nil
		},
	}
}

func (a *app) echoCommand() *cobra.Command {
	var (
		toStderr  bool
		noNewline bool
	)

	cmd := &cobra.Command{
		Use:   "echo [WORD...]",
		Short: "Write the words to standard output in a single write",
		RunE: func(_ *cobra.Command, args []string) error {
			text := strings.Join(args, " ")
			if !noNewline {
				text += "\n"
			}

			if toStderr {
				return a.proc.Stderr(text)
			}

			return a.proc.Stdout(text)
		},
	}

	cmd.Flags().BoolVar(&toStderr, "stderr", false, "write to standard error instead")
	cmd.Flags().BoolVarP(&noNewline, "no-newline", "n", false, "do not append a newline")

	return cmd
}
