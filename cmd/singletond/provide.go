/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package main

import (
	"fmt"

	"github.com/voedger/clustersingleton/pkg/goutils/timeu"
	"github.com/voedger/clustersingleton/pkg/ielections"
	"github.com/voedger/clustersingleton/pkg/ieosimpl"
	"github.com/voedger/clustersingleton/pkg/ttlstorage/bbolt"
	"github.com/voedger/clustersingleton/pkg/ttlstorage/cas"
	"github.com/voedger/clustersingleton/pkg/ttlstorage/mem"
)

func NewDefaultCLIParams() CLIParams {
	eosCfg := ieosimpl.NewDefaultConfig()
	return CLIParams{
		Storage:            storageMem,
		CasPort:            defaultCasPort,
		CasKeyspace:        defaultCasKeyspace,
		Flavor:             flavorPlain,
		LeadershipDuration: int(eosCfg.LeadershipDuration),
		TickInterval:       defaultDemoTickInterval,
	}
}

func provideClock() timeu.ITime {
	return timeu.NewITime()
}

func provideStorage(params CLIParams, clock timeu.ITime) (ielections.ITTLStorage[string, string], func(), error) {
	switch params.Storage {
	case storageMem:
		return mem.Provide(clock), func() {}, nil
	case storageBBolt:
		return bbolt.Provide(bbolt.Params{DBDir: params.BBoltDir}, clock)
	case storageCas:
		return cas.Provide(cas.Params{
			Hosts:                   params.CasHosts,
			Port:                    params.CasPort,
			Keyspace:                params.CasKeyspace,
			KeyspaceWithReplication: defaultCasReplication,
			ConnectTimeout:          defaultCasConnectTimeout,
		})
	}
	return nil, nil, fmt.Errorf("%w: %s", errUnknownStorage, params.Storage)
}

func provideEOSConfig(params CLIParams) ieosimpl.Config {
	cfg := ieosimpl.NewDefaultConfig()
	if len(params.NodeID) > 0 {
		cfg.NodeID = params.NodeID
	}
	if params.LeadershipDuration > 0 {
		cfg.LeadershipDuration = ielections.LeadershipDurationSeconds(params.LeadershipDuration)
	}
	return cfg
}
