/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

// Package ttlstorage holds what is shared by the ielections.ITTLStorage drivers
package ttlstorage

import (
	"encoding/binary"
	"errors"
	"time"
)

const expireAtSize = 8

var ErrMalformedRecord = errors.New("malformed ttl record")

// Record is a value that expires at ExpireAt unix millis, 0 -> never
type Record struct {
	ExpireAt int64
	Data     []byte
}

func NewRecord(data []byte, now time.Time, ttlSeconds int) Record {
	r := Record{Data: data}
	if ttlSeconds > 0 {
		r.ExpireAt = now.Add(time.Duration(ttlSeconds) * time.Second).UnixMilli()
	}
	return r
}

// ToBytes encodes the record as 8 bytes big-endian ExpireAt followed by the data
func (r Record) ToBytes() []byte {
	res := make([]byte, 0, expireAtSize+len(r.Data))
	res = binary.BigEndian.AppendUint64(res, uint64(r.ExpireAt)) // nolint G115
	return append(res, r.Data...)
}

func ReadRecord(b []byte) (Record, error) {
	if len(b) < expireAtSize {
		return Record{}, ErrMalformedRecord
	}
	return Record{
		ExpireAt: int64(binary.BigEndian.Uint64(b[:expireAtSize])), // nolint G115
		Data:     b[expireAtSize:],
	}, nil
}

func (r Record) IsExpired(now time.Time) bool {
	return r.ExpireAt > 0 && !now.Before(time.UnixMilli(r.ExpireAt))
}

// ExpirationKey is ordered by expiration time so that expired keys are found by a prefix scan
func ExpirationKey(expireAt int64, key []byte) []byte {
	res := make([]byte, 0, expireAtSize+len(key))
	res = binary.BigEndian.AppendUint64(res, uint64(expireAt)) // nolint G115
	return append(res, key...)
}

func SplitExpirationKey(expKey []byte) (expireAt int64, key []byte, err error) {
	if len(expKey) < expireAtSize {
		return 0, nil, ErrMalformedRecord
	}
	return int64(binary.BigEndian.Uint64(expKey[:expireAtSize])), expKey[expireAtSize:], nil // nolint G115
}
