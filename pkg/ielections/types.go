/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package ielections

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/voedger/clustersingleton/pkg/goutils/timeu"
)

type LeadershipDurationSeconds int

type elections[K any, V any] struct {
	storage     ITTLStorage[K, V]
	clock       timeu.ITime
	leases      sync.Map // K -> *lease[V]
	isFinalized atomic.Bool
}

type lease[V any] struct {
	val    V
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}
