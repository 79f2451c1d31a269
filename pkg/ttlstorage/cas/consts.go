/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package cas

import "time"

const (
	DefaultPort           = 9042
	DefaultKeyspace       = "clustersingleton"
	SimpleWithReplication = "{ 'class' : 'SimpleStrategy', 'replication_factor' : 1 }"
	defaultCQLVersion     = "3.0.0"
	defaultTimeout        = 10 * time.Second
	defaultConnectTimeout = time.Minute
	connectRetryBaseDelay = 500 * time.Millisecond
	connectRetryMaxDelay  = 10 * time.Second
	leasesTable           = "leases"
)
