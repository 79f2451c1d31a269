/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package main

import (
	"context"
	"sync"
	"time"

	"github.com/voedger/clustersingleton/pkg/goutils/timeu"
	"github.com/voedger/clustersingleton/pkg/ielections"
	"github.com/voedger/clustersingleton/pkg/ieosimpl"
	"github.com/voedger/clustersingleton/pkg/isingleton"
	imetrics "github.com/voedger/clustersingleton/pkg/metrics"
)

type CLIParams struct {
	Storage  string
	BBoltDir string

	// comma separated
	CasHosts    string
	CasPort     int
	CasKeyspace string

	// random if empty
	NodeID             string
	Services           []string
	Flavor             string
	LeadershipDuration int

	// metrics are not served if 0
	MetricsPort  int
	TickInterval time.Duration

	// run until interrupted if 0
	RunFor time.Duration
}

type wiredNode struct {
	Clock     timeu.ITime
	Storage   ielections.ITTLStorage[string, string]
	EOSConfig ieosimpl.Config
	Metrics   imetrics.IMetrics
}

// demoService logs a tick periodically while instantiated
type demoService struct {
	id    isingleton.ServiceGroupIdentifier
	clock timeu.ITime
	tick  time.Duration

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}
