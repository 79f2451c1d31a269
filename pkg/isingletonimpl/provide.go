/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package isingletonimpl

import (
	"github.com/im7mortal/kmutex"
	"github.com/voedger/clustersingleton/pkg/ieos"
	"github.com/voedger/clustersingleton/pkg/isingleton"
	imetrics "github.com/voedger/clustersingleton/pkg/metrics"
)

// Provide returns the provider electing service groups through the entity ownership service.
// nodeID labels the metrics only.
func Provide[E ieos.IEntity](eos ieos.IEntityOwnershipService[E], strategy IEntityStrategy[E], metrics imetrics.IMetrics,
	nodeID string) isingleton.IClusterSingletonServiceProvider {
	return &provider[E]{
		eos:      eos,
		strategy: strategy,
		metrics:  metrics,
		nodeID:   nodeID,
		locks:    kmutex.New(),
	}
}
