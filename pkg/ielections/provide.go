/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package ielections

import (
	"github.com/voedger/clustersingleton/pkg/goutils/timeu"
)

// Provide returns IElections working over the storage and a cleanup function.
// Cleanup releases all held leases and waits for the renewal goroutines.
func Provide[K any, V any](storage ITTLStorage[K, V], clock timeu.ITime) (IElections[K, V], func()) {
	e := &elections[K, V]{
		storage: storage,
		clock:   clock,
	}
	return e, e.cleanup
}
