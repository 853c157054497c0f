package main

import (
	"context"
	"errors"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/ruffel/procenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// factory builds the configured Process once settings are known.
type factory func(opts ...procenv.Option) (procenv.Process, error)

type app struct {
	newProcess factory
	viper      *viper.Viper

	out    *streamWriter
	errOut *streamWriter

	proc     procenv.Process
	console  *procenv.Console
	logger   *log.Logger
	settings settings
}

func newApp(newProcess factory) *app {
	return &app{
		newProcess: newProcess,
		viper:      viper.New(),
	}
}

// process returns the configured Process, or fallback if configuration never ran.
func (a *app) process(fallback procenv.Process) procenv.Process {
	if a.proc != nil {
		return a.proc
	}

	return fallback
}

// run executes the command line found in boot.Args and returns the exit code.
func (a *app) run(ctx context.Context, boot procenv.Process) int {
	a.out = stdoutWriter(boot)
	a.errOut = stderrWriter(boot)

	root := a.rootCommand()
	root.SetArgs(boot.Args())
	root.SetOut(a.out)
	root.SetErr(a.errOut)

	err := root.ExecuteContext(ctx)
	if err == nil {
		return 0
	}

	var exitErr *exitError
	if errors.As(err, &exitErr) {
		return exitErr.code
	}

	_ = procenv.NewConsole(a.process(boot)).Errorf("error: %v\n", err)

	return 1
}

func (a *app) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "procenv",
		Short:         "Inspect and exercise the process capability of this host",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.configure(cmd)
		},
	}

	root.PersistentFlags().String(keyVocabulary, "", `signal vocabulary: "full", "restricted", or a list like "term,hup"`)
	root.PersistentFlags().String(keyLogLevel, "", "log level (debug, info, warn, error)")
	root.PersistentFlags().String(keyConfig, "", "config file (yaml, toml, or json)")

	root.AddCommand(
		a.argsCommand(),
		a.echoCommand(),
		a.trapCommand(),
		a.infoCommand(),
		a.checkCommand(),
	)

	return root
}

func (a *app) configure(cmd *cobra.Command) error {
	s, err := loadSettings(a.viper, cmd.Flags())
	if err != nil {
		return err
	}

	logger := log.NewWithOptions(a.errOut, log.Options{
		Prefix: "procenv",
		Level:  s.LogLevel,
	})

	proc, err := a.newProcess(procenv.WithVocabulary(s.Vocabulary), procenv.WithLogger(logger))
	if err != nil {
		return err
	}

	a.settings = s
	a.logger = logger
	a.proc = proc
	a.console = procenv.NewConsole(proc)

	// From here on all output, logs included, goes through the configured capability.
	a.out.follow(proc)
	a.errOut.follow(proc)

	logger.Debug("process ready", "family", proc.Family(), "vocabulary", s.Vocabulary)

	return nil
}

// exitError carries a specific exit code out of a command.
type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return "exit status " + strconv.Itoa(e.code)
}
