/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package bbolt

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/voedger/clustersingleton/pkg/goutils/testingu"
	"github.com/voedger/clustersingleton/pkg/ielections"
	bolt "go.etcd.io/bbolt"
)

func TestElectionsOverBboltStorage(t *testing.T) {
	storage, cleanup, err := Provide(Params{DBDir: t.TempDir(), CleanupInterval: time.Hour}, testingu.MockTime)
	require.NoError(t, err)
	defer cleanup()

	ielections.ElectionsTestSuite(t, storage, ielections.TestDataGen[string, string]{
		NextKey: uuid.NewString,
		NextVal: uuid.NewString,
	})
}

func TestExpiredLeasesCleanup(t *testing.T) {
	require := require.New(t)
	clock := testingu.NewMockTime()
	iStorage, cleanup, err := Provide(Params{DBDir: t.TempDir(), CleanupInterval: time.Hour}, clock)
	require.NoError(err)
	defer cleanup()
	s := iStorage.(*storage)

	ok, err := s.InsertIfNotExist("expiring", "node1", 10)
	require.NoError(err)
	require.True(ok)
	ok, err = s.InsertIfNotExist("renewed", "node1", 10)
	require.NoError(err)
	require.True(ok)

	clock.Add(5 * time.Second)
	ok, err = s.CompareAndSwap("renewed", "node1", "node1", 10)
	require.NoError(err)
	require.True(ok)

	clock.Add(6 * time.Second)
	require.NoError(s.cleanup())

	require.Equal(1, countKeys(t, s, leasesBucketName))
	require.Equal(1, countKeys(t, s, expirationsBucketName))

	ok, val, err := s.Get("renewed")
	require.NoError(err)
	require.True(ok)
	require.Equal("node1", val)

	ok, _, err = s.Get("expiring")
	require.NoError(err)
	require.False(ok)
}

func TestReopen(t *testing.T) {
	require := require.New(t)
	dir := t.TempDir()

	s1, cleanup1, err := Provide(Params{DBDir: dir}, testingu.MockTime)
	require.NoError(err)
	ok, err := s1.InsertIfNotExist("key", "node1", 100)
	require.NoError(err)
	require.True(ok)
	cleanup1()

	s2, cleanup2, err := Provide(Params{DBDir: dir}, testingu.MockTime)
	require.NoError(err)
	defer cleanup2()
	ok, val, err := s2.Get("key")
	require.NoError(err)
	require.True(ok)
	require.Equal("node1", val)
}

func countKeys(t *testing.T, s *storage, bucket string) (n int) {
	require.NoError(t, s.db.View(func(tx *bolt.Tx) error {
		n = tx.Bucket([]byte(bucket)).Stats().KeyN
		return nil
	}))
	return n
}
