/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package ielections

import (
	"context"
)

// IElections grants leases on keys stored in an ITTLStorage.
// A granted lease is renewed in background until it is released or renewal fails.
type IElections[K any, V any] interface {
	// AcquireLeadership tries to take the lease on `key` for `val`.
	//  - returns a non-nil context if the lease is taken, the context is cancelled when the lease is lost or released
	//  - returns nil if the key is held by someone else, the storage fails or the elections are cleaned up
	AcquireLeadership(key K, val V, duration LeadershipDurationSeconds) (ctx context.Context)

	// ReleaseLeadership stops renewal of `key`, deletes the key from the storage if it is still ours
	// and waits until the renewal goroutine is finished. Unknown key is ignored.
	ReleaseLeadership(key K)
}

// ITTLStorage is a storage with compare-and-set semantics and records that expire after ttlSeconds.
type ITTLStorage[K any, V any] interface {
	// InsertIfNotExist inserts (key, val) if the key does not exist.
	// Returns (true, nil) if inserted, (false, nil) if the key exists, (false, err) on storage error.
	InsertIfNotExist(key K, val V, ttlSeconds int) (bool, error)

	// CompareAndSwap sets `newVal` and resets the TTL if the current value is `oldVal`.
	// Returns (true, nil) on success, (false, nil) if the value differs or the key is absent, (false, err) on error.
	CompareAndSwap(key K, oldVal V, newVal V, ttlSeconds int) (bool, error)

	// CompareAndDelete deletes the key if the current value is `val`.
	// Returns (true, nil) if deleted, (false, nil) otherwise, (false, err) on error.
	CompareAndDelete(key K, val V) (bool, error)

	// Get returns the current unexpired value of the key.
	Get(key K) (ok bool, val V, err error)
}
