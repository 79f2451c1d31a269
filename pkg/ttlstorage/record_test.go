/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package ttlstorage

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRecord(t *testing.T) {
	require := require.New(t)
	now := time.UnixMilli(1_700_000_000_000)

	r := NewRecord([]byte("node1"), now, 10)
	require.Equal(now.Add(10*time.Second).UnixMilli(), r.ExpireAt)

	decoded, err := ReadRecord(r.ToBytes())
	require.NoError(err)
	require.Equal(r, decoded)

	require.False(r.IsExpired(now))
	require.False(r.IsExpired(now.Add(9 * time.Second)))
	require.True(r.IsExpired(now.Add(10 * time.Second)))

	forever := NewRecord([]byte("x"), now, 0)
	require.Zero(forever.ExpireAt)
	require.False(forever.IsExpired(now.Add(1000 * time.Hour)))

	_, err = ReadRecord([]byte{1, 2})
	require.ErrorIs(err, ErrMalformedRecord)
}

func TestExpirationKey(t *testing.T) {
	require := require.New(t)

	k1 := ExpirationKey(100, []byte("b"))
	k2 := ExpirationKey(200, []byte("a"))
	require.Less(string(k1), string(k2))

	expireAt, key, err := SplitExpirationKey(k2)
	require.NoError(err)
	require.Equal(int64(200), expireAt)
	require.Equal([]byte("a"), key)

	_, _, err = SplitExpirationKey(nil)
	require.ErrorIs(err, ErrMalformedRecord)
}
