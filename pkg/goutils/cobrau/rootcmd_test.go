/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package cobrau

import (
	"context"
	"errors"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
	"github.com/voedger/clustersingleton/pkg/goutils/logger"
	"github.com/voedger/clustersingleton/pkg/goutils/testingu"
)

func TestPrepareRootCmd(t *testing.T) {
	require := require.New(t)
	defer logger.SetLogLevel(logger.SetLogLevel(logger.LogLevelInfo))

	ran := false
	newSub := func() *cobra.Command {
		return &cobra.Command{
			Use: "run",
			RunE: func(cmd *cobra.Command, args []string) error {
				ran = true
				return nil
			},
		}
	}

	stdout, _, err := testingu.CaptureStdoutStderr(func() error {
		return PrepareRootCmd("tool", "test tool", []string{"tool", "version"}, "1.0.0", newSub()).Execute()
	})
	require.NoError(err)
	require.Contains(stdout, "tool version 1.0.0")

	require.NoError(PrepareRootCmd("tool", "test tool", []string{"tool", "run", "--verbose"}, "1.0.0", newSub()).Execute())
	require.True(ran)
	require.True(logger.IsVerbose())

	require.NoError(PrepareRootCmd("tool", "test tool", []string{"tool", "run", "--log-level", "warning"}, "1.0.0", newSub()).Execute())
	require.False(logger.IsInfo())
	require.True(logger.IsWarning())

	err = PrepareRootCmd("tool", "test tool", []string{"tool", "run", "--log-level", "loud"}, "1.0.0", newSub()).Execute()
	require.ErrorIs(err, logger.ErrUnknownLogLevel)
}

func TestGoAndCatchInterrupt(t *testing.T) {
	errTest := errors.New("test")
	err := goAndCatchInterrupt(func(ctx context.Context) error {
		require.NoError(t, ctx.Err())
		return errTest
	})
	require.ErrorIs(t, err, errTest)
}
