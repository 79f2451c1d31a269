/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package ielections

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/voedger/clustersingleton/pkg/goutils/logger"
	"github.com/voedger/clustersingleton/pkg/goutils/testingu"
)

const seconds10 = 10

type TestDataGen[K any, V any] struct {
	NextKey func() K
	NextVal func() V

	// TTL is checked by the storage server in real time, mock time can not expire records
	RealTimeTTL bool
}

// ElectionsTestSuite checks IElections over the given storage. The storage must use testingu.MockTime
// unless dataGen.RealTimeTTL is set.
func ElectionsTestSuite[K any, V any](t *testing.T, storage ITTLStorage[K, V], dataGen TestDataGen[K, V]) {
	restore := logger.SetLogLevelWithRestore(logger.LogLevelVerbose)
	defer restore()

	type testFunc func(*require.Assertions, IElections[K, V], ITTLStorage[K, V], func(), TestDataGen[K, V])
	tests := map[string]testFunc{
		"BasicUsage":                      basicUsage[K, V],
		"AcquireIfHeldBySomeoneElse":      acquireIfHeldBySomeoneElse[K, V],
		"AcquireTwiceByTheSameInstance":   acquireTwiceByTheSameInstance[K, V],
		"LeaseRenewedInBackground":        leaseRenewedInBackground[K, V],
		"LeaseLostOnValueChanged":         leaseLostOnValueChanged[K, V],
		"LeaseLostOnKeyDeleted":           leaseLostOnKeyDeleted[K, V],
		"ReleaseWithoutAcquire":           releaseWithoutAcquire[K, V],
		"ReleaseKeepsForeignValue":        releaseKeepsForeignValue[K, V],
		"AcquireFailsAfterCleanup":        acquireFailsAfterCleanup[K, V],
		"CleanupDuringRenewal":            cleanupDuringRenewal[K, V],
		"AcquireAfterForeignLeaseExpired": acquireAfterForeignLeaseExpired[K, V],
	}
	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			if dataGen.RealTimeTTL && name == "AcquireAfterForeignLeaseExpired" {
				t.Skip("storage TTL does not follow mock time")
			}
			elections, cleanup := Provide(storage, testingu.MockTime)
			defer cleanup()
			test(require.New(t), elections, storage, cleanup, dataGen)
		})
	}
}

func basicUsage[K any, V any](require *require.Assertions, elections IElections[K, V], storage ITTLStorage[K, V], _ func(), dataGen TestDataGen[K, V]) {
	key := dataGen.NextKey()
	val := dataGen.NextVal()

	ctx := elections.AcquireLeadership(key, val, seconds10)
	require.NotNil(ctx)
	require.NoError(ctx.Err())

	ok, stored, err := storage.Get(key)
	require.NoError(err)
	require.True(ok)
	require.Equal(val, stored)

	elections.ReleaseLeadership(key)
	<-ctx.Done()

	ok, _, err = storage.Get(key)
	require.NoError(err)
	require.False(ok)
}

func acquireIfHeldBySomeoneElse[K any, V any](require *require.Assertions, elections IElections[K, V], storage ITTLStorage[K, V], _ func(), dataGen TestDataGen[K, V]) {
	key := dataGen.NextKey()
	foreignVal := dataGen.NextVal()
	ok, err := storage.InsertIfNotExist(key, foreignVal, seconds10)
	require.NoError(err)
	require.True(ok)

	require.Nil(elections.AcquireLeadership(key, dataGen.NextVal(), seconds10))

	ok, stored, err := storage.Get(key)
	require.NoError(err)
	require.True(ok)
	require.Equal(foreignVal, stored)
	_, err = storage.CompareAndDelete(key, foreignVal)
	require.NoError(err)
}

func acquireTwiceByTheSameInstance[K any, V any](require *require.Assertions, elections IElections[K, V], _ ITTLStorage[K, V], _ func(), dataGen TestDataGen[K, V]) {
	key := dataGen.NextKey()
	val := dataGen.NextVal()
	ctx := elections.AcquireLeadership(key, val, seconds10)
	require.NotNil(ctx)

	require.Nil(elections.AcquireLeadership(key, val, seconds10))
	require.NoError(ctx.Err())

	elections.ReleaseLeadership(key)
	<-ctx.Done()
}

func leaseRenewedInBackground[K any, V any](require *require.Assertions, elections IElections[K, V], storage ITTLStorage[K, V], _ func(), dataGen TestDataGen[K, V]) {
	key := dataGen.NextKey()
	val := dataGen.NextVal()
	ctx := elections.AcquireLeadership(key, val, seconds10)
	require.NotNil(ctx)

	// each step fires the renewal timer, the next step waits for the next timer to be created
	renewed := make(chan struct{}, 1)
	for i := 0; i < 8; i++ {
		testingu.MockTime.SetOnNextNewTimerChan(func() { renewed <- struct{}{} })
		testingu.MockTime.Sleep(seconds10 * time.Second / renewIntervalDivisor)
		<-renewed
	}
	require.NoError(ctx.Err())

	ok, stored, err := storage.Get(key)
	require.NoError(err)
	require.True(ok)
	require.Equal(val, stored)

	elections.ReleaseLeadership(key)
	<-ctx.Done()
}

func leaseLostOnValueChanged[K any, V any](require *require.Assertions, elections IElections[K, V], storage ITTLStorage[K, V], _ func(), dataGen TestDataGen[K, V]) {
	key := dataGen.NextKey()
	val := dataGen.NextVal()
	foreignVal := dataGen.NextVal()
	ctx := elections.AcquireLeadership(key, val, seconds10)
	require.NotNil(ctx)

	ok, err := storage.CompareAndSwap(key, val, foreignVal, seconds10*2)
	require.NoError(err)
	require.True(ok)

	testingu.MockTime.Sleep(seconds10 * time.Second)
	<-ctx.Done()

	// the foreign value survives the release
	ok, stored, err := storage.Get(key)
	require.NoError(err)
	require.True(ok)
	require.Equal(foreignVal, stored)
	_, err = storage.CompareAndDelete(key, foreignVal)
	require.NoError(err)
}

func leaseLostOnKeyDeleted[K any, V any](require *require.Assertions, elections IElections[K, V], storage ITTLStorage[K, V], _ func(), dataGen TestDataGen[K, V]) {
	key := dataGen.NextKey()
	val := dataGen.NextVal()
	ctx := elections.AcquireLeadership(key, val, seconds10)
	require.NotNil(ctx)

	ok, err := storage.CompareAndDelete(key, val)
	require.NoError(err)
	require.True(ok)

	testingu.MockTime.Sleep(seconds10 * time.Second)
	<-ctx.Done()

	ok, _, err = storage.Get(key)
	require.NoError(err)
	require.False(ok)
}

func releaseWithoutAcquire[K any, V any](_ *require.Assertions, elections IElections[K, V], _ ITTLStorage[K, V], _ func(), dataGen TestDataGen[K, V]) {
	elections.ReleaseLeadership(dataGen.NextKey())
}

func releaseKeepsForeignValue[K any, V any](require *require.Assertions, elections IElections[K, V], storage ITTLStorage[K, V], _ func(), dataGen TestDataGen[K, V]) {
	key := dataGen.NextKey()
	val := dataGen.NextVal()
	foreignVal := dataGen.NextVal()
	ctx := elections.AcquireLeadership(key, val, seconds10)
	require.NotNil(ctx)

	ok, err := storage.CompareAndSwap(key, val, foreignVal, seconds10)
	require.NoError(err)
	require.True(ok)

	elections.ReleaseLeadership(key)
	<-ctx.Done()

	ok, stored, err := storage.Get(key)
	require.NoError(err)
	require.True(ok)
	require.Equal(foreignVal, stored)
	_, err = storage.CompareAndDelete(key, foreignVal)
	require.NoError(err)
}

func acquireFailsAfterCleanup[K any, V any](require *require.Assertions, elections IElections[K, V], _ ITTLStorage[K, V], cleanup func(), dataGen TestDataGen[K, V]) {
	ctx := elections.AcquireLeadership(dataGen.NextKey(), dataGen.NextVal(), seconds10)
	require.NotNil(ctx)

	cleanup()
	<-ctx.Done()

	require.Nil(elections.AcquireLeadership(dataGen.NextKey(), dataGen.NextVal(), seconds10))
}

func cleanupDuringRenewal[K any, V any](require *require.Assertions, elections IElections[K, V], _ ITTLStorage[K, V], cleanup func(), dataGen TestDataGen[K, V]) {
	ctx := elections.AcquireLeadership(dataGen.NextKey(), dataGen.NextVal(), seconds10)
	require.NotNil(ctx)

	testingu.MockTime.Sleep(seconds10 / 2 * time.Second)

	// no deadlock between cleanup and a renewal that releases the lease
	cleanup()
	<-ctx.Done()
}

func acquireAfterForeignLeaseExpired[K any, V any](require *require.Assertions, elections IElections[K, V], storage ITTLStorage[K, V], _ func(), dataGen TestDataGen[K, V]) {
	key := dataGen.NextKey()
	ok, err := storage.InsertIfNotExist(key, dataGen.NextVal(), seconds10)
	require.NoError(err)
	require.True(ok)

	val := dataGen.NextVal()
	require.Nil(elections.AcquireLeadership(key, val, seconds10))

	testingu.MockTime.Sleep((seconds10 + 1) * time.Second)

	ctx := elections.AcquireLeadership(key, val, seconds10)
	require.NotNil(ctx)
	elections.ReleaseLeadership(key)
	<-ctx.Done()
}
