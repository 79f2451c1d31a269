//go:generate go run github.com/google/wire/cmd/wire
//go:build wireinject
// +build wireinject

/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package main

import (
	"github.com/google/wire"

	imetrics "github.com/voedger/clustersingleton/pkg/metrics"
)

func wireNode(params CLIParams) (wiredNode, func(), error) {
	panic(
		wire.Build(
			provideClock,
			provideStorage,
			provideEOSConfig,
			imetrics.Provide,
			wire.Struct(new(wiredNode), "*"),
		),
	)
}
