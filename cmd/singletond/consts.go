/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package main

import "time"

const (
	storageMem   = "mem"
	storageBBolt = "bbolt"
	storageCas   = "cas"

	flavorPlain = "plain"
	flavorPath  = "path"
)

const (
	defaultCasPort               = 9042
	defaultCasKeyspace           = "clustersingleton"
	defaultCasReplication        = "{ 'class' : 'SimpleStrategy', 'replication_factor' : 1 }"
	defaultCasConnectTimeout     = 30 * time.Second
	defaultDemoTickInterval      = 10 * time.Second
	metricsPath                  = "/metrics"
	metricsReadHeaderTimeout     = 10 * time.Second
	metricsServerShutdownTimeout = 5 * time.Second
)
