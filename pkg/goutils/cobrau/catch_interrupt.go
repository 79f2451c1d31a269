/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package cobrau

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/voedger/clustersingleton/pkg/goutils/logger"
)

// ExecCommandAndCatchInterrupt executes the command with a context that is cancelled on SIGINT or SIGTERM
func ExecCommandAndCatchInterrupt(cmd *cobra.Command) error {
	return goAndCatchInterrupt(cmd.ExecuteContext)
}

func goAndCatchInterrupt(f func(ctx context.Context) error) error {
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(signals)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- f(ctx)
	}()

	select {
	case sig := <-signals:
		logger.Info("signal received:", sig)
		cancel()
	case err := <-done:
		return err
	}
	logger.Verbose("waiting for the command to finish...")
	return <-done
}
