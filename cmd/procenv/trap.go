package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ruffel/procenv"
	"github.com/spf13/cobra"
)

func (a *app) trapCommand() *cobra.Command {
	var (
		names    []string
		count    int
		exitCode int
		timeout  time.Duration
	)

	cmd := &cobra.Command{
		Use:   "trap",
		Short: "Register signal handlers, wait for deliveries, then exit",
		Long: `Registers one handler per --signal and waits until --count signals have arrived.
Signals the host cannot deliver are accepted but never arrive.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if count < 1 {
				return errors.New("--count must be at least 1")
			}

			sigs, err := parseSignals(names)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			if timeout > 0 {
				var cancel context.CancelFunc

				ctx, cancel = context.WithTimeout(ctx, timeout)
				defer cancel()
			}

			received := make(chan procenv.Signal, count)

			err = a.console.Notify(func(sig procenv.Signal) {
				select {
				case received <- sig:
				default:
				}
			}, sigs...)
			if err != nil {
				return err
			}

			a.logger.Info("waiting for signals", "signals", sigs, "count", count)

			for range count {
				select {
				case <-ctx.Done():
					return fmt.Errorf("waiting for signals: %w", ctx.Err())
				case sig := <-received:
					a.logger.Debug("signal delivered", "signal", sig)

					if err := a.console.Printf("received %s\n", sig); err != nil {
						return err
					}
				}
			}

			if exitCode != 0 {
				return &exitError{code: exitCode}
			}

			return nil
		},
	}

	cmd.Flags().StringSliceVarP(&names, "signal", "s", []string{"SIGINT", "SIGTERM"}, "signal to trap (repeatable)")
	cmd.Flags().IntVarP(&count, "count", "c", 1, "number of deliveries to wait for")
	cmd.Flags().IntVar(&exitCode, "exit-code", 0, "exit code once done")
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "give up after this long (0 waits forever)")

	return cmd
}

func parseSignals(names []string) ([]procenv.Signal, error) {
	sigs := make([]procenv.Signal, 0, len(names))

	for _, name := range names {
		sig, err := procenv.ParseSignal(name)
		if err != nil {
			return nil, err
		}

		sigs = append(sigs, sig)
	}

	return sigs, nil
}
