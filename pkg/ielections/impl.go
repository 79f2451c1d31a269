/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package ielections

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/voedger/clustersingleton/pkg/goutils/logger"
)

func (e *elections[K, V]) AcquireLeadership(key K, val V, duration LeadershipDurationSeconds) context.Context {
	if e.isFinalized.Load() {
		logger.Verbose(fmt.Sprintf("Key=%v: elections cleaned up, lease is not acquired", key))
		return nil
	}

	inserted, err := e.storage.InsertIfNotExist(key, val, int(duration))
	if err != nil {
		logger.Error(fmt.Sprintf("Key=%v: InsertIfNotExist failed: %v", key, err))
		return nil
	}
	if !inserted {
		logger.Trace(fmt.Sprintf("Key=%v: held by someone else", key))
		return nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	l := &lease[V]{
		val:    val,
		ctx:    ctx,
		cancel: cancel,
	}
	if _, loaded := e.leases.LoadOrStore(key, l); loaded {
		// the same key is leased already by this instance under another value
		cancel()
		logger.Error(fmt.Sprintf("Key=%v: inserted into storage but leased locally already", key))
		return nil
	}
	logger.Verbose(fmt.Sprintf("Key=%v: lease acquired", key))

	l.wg.Add(1)
	renewStarted := sync.WaitGroup{}
	renewStarted.Add(1)
	go e.renew(key, duration, l, &renewStarted)
	renewStarted.Wait()
	return ctx
}

func (e *elections[K, V]) renew(key K, duration LeadershipDurationSeconds, l *lease[V], renewStarted *sync.WaitGroup) {
	defer l.wg.Done()

	leaseDuration := time.Duration(duration) * time.Second
	renewInterval := leaseDuration / renewIntervalDivisor
	retryInterval := leaseDuration / retryIntervalDivisor
	timer := e.clock.NewTimerChan(renewInterval)
	renewStarted.Done()

	ticks := 0
	for {
		select {
		case <-l.ctx.Done():
			return
		case <-timer:
		}
		timer = e.clock.NewTimerChan(renewInterval)
		ticks++
		logRenewal(key, ticks, renewInterval)

		ok, err := e.renewOnce(key, l.val, duration, retryInterval)
		if err != nil {
			logger.Error(fmt.Sprintf("Key=%v: renewal failed after %d attempts, lease released: %v", key, maxRenewRetries+1, err))
			e.releaseLeadership(key)
			return
		}
		if !ok {
			logger.Error(fmt.Sprintf("Key=%v: lease is taken over or expired, released", key))
			e.releaseLeadership(key)
			return
		}
	}
}

func (e *elections[K, V]) renewOnce(key K, val V, duration LeadershipDurationSeconds, retryInterval time.Duration) (ok bool, err error) {
	for attempt := 0; attempt <= maxRenewRetries; attempt++ {
		if ok, err = e.storage.CompareAndSwap(key, val, val, int(duration)); err == nil {
			return ok, nil
		}
		logger.Warning(fmt.Sprintf("Key=%v: renewal attempt %d failed: %v", key, attempt+1, err))
		if attempt < maxRenewRetries {
			e.clock.Sleep(retryInterval)
		}
	}
	return false, err
}

func logRenewal[K any](key K, ticks int, renewInterval time.Duration) {
	switch {
	case ticks <= verboseRenewals:
		logger.Trace(fmt.Sprintf("Key=%v: lease renewed", key))
	case ticks%renewLogEachNTicks == 0:
		// notest
		logger.Verbose(fmt.Sprintf("Key=%v: lease held for %s", key, renewInterval*time.Duration(ticks)))
	}
}

func (e *elections[K, V]) ReleaseLeadership(key K) {
	if l := e.releaseLeadership(key); l != nil {
		l.wg.Wait()
	}
}

func (e *elections[K, V]) releaseLeadership(key K) *lease[V] {
	lIntf, ok := e.leases.LoadAndDelete(key)
	if !ok {
		logger.Trace(fmt.Sprintf("Key=%v: not leased", key))
		return nil
	}
	l := lIntf.(*lease[V])
	if _, err := e.storage.CompareAndDelete(key, l.val); err != nil {
		// the record expires by TTL
		logger.Error(fmt.Sprintf("Key=%v: CompareAndDelete failed: %v", key, err))
	}
	l.cancel()
	logger.Verbose(fmt.Sprintf("Key=%v: lease released", key))
	return l
}

func (e *elections[K, V]) cleanup() {
	e.isFinalized.Store(true)
	e.leases.Range(func(key, _ any) bool {
		e.ReleaseLeadership(key.(K))
		return true
	})
}
