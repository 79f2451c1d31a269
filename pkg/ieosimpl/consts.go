/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package ieosimpl

import (
	"time"

	"github.com/voedger/clustersingleton/pkg/ielections"
)

const (
	DefaultLeadershipDuration   = ielections.LeadershipDurationSeconds(10)
	DefaultAcquireInterval      = time.Second
	DefaultRemoteStateCacheSize = 1024
	DefaultRemoteStateTTL       = time.Second
)
