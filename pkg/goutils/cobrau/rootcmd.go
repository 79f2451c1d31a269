/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package cobrau

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/voedger/clustersingleton/pkg/goutils/logger"
)

// PrepareRootCmd builds the root command with the `version` subcommand and
// persistent --log-level, --verbose and --trace flags.
func PrepareRootCmd(use string, short string, args []string, version string, cmds ...*cobra.Command) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           use,
		Short:         short,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if name, _ := cmd.Flags().GetString("log-level"); len(name) > 0 {
				level, err := logger.ParseLogLevel(name)
				if err != nil {
					return err
				}
				logger.SetLogLevel(level)
			}
			if trace, _ := cmd.Flags().GetBool("trace"); trace {
				logger.SetLogLevel(logger.LogLevelTrace)
			} else if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
				logger.SetLogLevel(logger.LogLevelVerbose)
			}
			return nil
		},
	}
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().Bool("trace", false, "Enable extremely verbose output")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: error, warning, info, verbose or trace")

	rootCmd.AddCommand(cmds...)
	rootCmd.AddCommand(&cobra.Command{
		Use:     "version",
		Short:   "Print the current version",
		Aliases: []string{"ver"},
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Printf("%s version %s\n", cmd.Root().Name(), version)
		},
	})
	if len(args) > 0 {
		rootCmd.SetArgs(args[1:])
	}
	return rootCmd
}
