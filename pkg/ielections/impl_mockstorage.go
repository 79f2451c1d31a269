/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package ielections

import (
	"errors"
	"sync"
	"time"

	"github.com/voedger/clustersingleton/pkg/goutils/timeu"
)

var errForcedStorageFailure = errors.New("forced storage failure")

// ttlStorageMock keeps records in a map and expires them using the injected clock
type ttlStorageMock[K comparable, V comparable] struct {
	mu      sync.Mutex
	records map[K]expiringValue[V]
	failing map[K]bool
	clock   timeu.ITime
}

type expiringValue[V any] struct {
	value     V
	expiresAt time.Time
}

func newTTLStorageMock[K comparable, V comparable](clock timeu.ITime) *ttlStorageMock[K, V] {
	return &ttlStorageMock[K, V]{
		records: map[K]expiringValue[V]{},
		failing: map[K]bool{},
		clock:   clock,
	}
}

func (m *ttlStorageMock[K, V]) setFailing(key K, failing bool) {
	m.mu.Lock()
	m.failing[key] = failing
	m.mu.Unlock()
}

// lookup must be called under lock
func (m *ttlStorageMock[K, V]) lookup(key K) (expiringValue[V], bool, error) {
	if m.failing[key] {
		return expiringValue[V]{}, false, errForcedStorageFailure
	}
	rec, ok := m.records[key]
	if ok && !m.clock.Now().Before(rec.expiresAt) {
		delete(m.records, key)
		return expiringValue[V]{}, false, nil
	}
	return rec, ok, nil
}

func (m *ttlStorageMock[K, V]) put(key K, val V, ttlSeconds int) {
	m.records[key] = expiringValue[V]{
		value:     val,
		expiresAt: m.clock.Now().Add(time.Duration(ttlSeconds) * time.Second),
	}
}

func (m *ttlStorageMock[K, V]) InsertIfNotExist(key K, val V, ttlSeconds int) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, exists, err := m.lookup(key)
	if err != nil || exists {
		return false, err
	}
	m.put(key, val, ttlSeconds)
	return true, nil
}

func (m *ttlStorageMock[K, V]) CompareAndSwap(key K, oldVal V, newVal V, ttlSeconds int) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec, exists, err := m.lookup(key)
	if err != nil || !exists || rec.value != oldVal {
		return false, err
	}
	m.put(key, newVal, ttlSeconds)
	return true, nil
}

func (m *ttlStorageMock[K, V]) CompareAndDelete(key K, val V) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec, exists, err := m.lookup(key)
	if err != nil || !exists || rec.value != val {
		return false, err
	}
	delete(m.records, key)
	return true, nil
}

func (m *ttlStorageMock[K, V]) Get(key K) (ok bool, val V, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec, ok, err := m.lookup(key)
	return ok, rec.value, err
}
