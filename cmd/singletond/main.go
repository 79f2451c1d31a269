/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package main

import (
	_ "embed"
	"os"

	"github.com/voedger/clustersingleton/pkg/goutils/cobrau"
	"github.com/voedger/clustersingleton/pkg/goutils/logger"
)

//go:embed version
var version string

func main() {
	if err := execRootCmd(os.Args, version); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

func execRootCmd(args []string, ver string) error {
	rootCmd := cobrau.PrepareRootCmd(
		"singletond",
		"Cluster singleton services node",
		args,
		ver,
		newRunCmd(),
	)
	return cobrau.ExecCommandAndCatchInterrupt(rootCmd)
}
