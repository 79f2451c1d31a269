/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package bbolt

import (
	"context"
	"fmt"
	"sync"

	"github.com/voedger/clustersingleton/pkg/goutils/logger"
	"github.com/voedger/clustersingleton/pkg/ttlstorage"
	bolt "go.etcd.io/bbolt"
)

func (s *storage) InsertIfNotExist(key string, val string, ttlSeconds int) (ok bool, err error) {
	err = s.db.Update(func(tx *bolt.Tx) error {
		_, exists, err := s.get(tx, key)
		if err != nil || exists {
			return err
		}
		ok = true
		return s.put(tx, key, val, ttlSeconds)
	})
	return ok && err == nil, err
}

func (s *storage) CompareAndSwap(key string, oldVal string, newVal string, ttlSeconds int) (ok bool, err error) {
	err = s.db.Update(func(tx *bolt.Tx) error {
		r, exists, err := s.get(tx, key)
		if err != nil || !exists || string(r.Data) != oldVal {
			return err
		}
		if err := s.delete(tx, key, r); err != nil {
			return err
		}
		ok = true
		return s.put(tx, key, newVal, ttlSeconds)
	})
	return ok && err == nil, err
}

func (s *storage) CompareAndDelete(key string, val string) (ok bool, err error) {
	err = s.db.Update(func(tx *bolt.Tx) error {
		r, exists, err := s.get(tx, key)
		if err != nil || !exists || string(r.Data) != val {
			return err
		}
		ok = true
		return s.delete(tx, key, r)
	})
	return ok && err == nil, err
}

func (s *storage) Get(key string) (ok bool, val string, err error) {
	err = s.db.View(func(tx *bolt.Tx) error {
		r, exists, err := s.get(tx, key)
		if err != nil || !exists {
			return err
		}
		ok, val = true, string(r.Data)
		return nil
	})
	return ok, val, err
}

// get returns an unexpired record, expired ones are left for the cleaner
func (s *storage) get(tx *bolt.Tx, key string) (r ttlstorage.Record, ok bool, err error) {
	leases := tx.Bucket([]byte(leasesBucketName))
	if leases == nil {
		return r, false, fmt.Errorf("%w: %s", ErrBucketNotFound, leasesBucketName)
	}
	v := leases.Get([]byte(key))
	if v == nil {
		return r, false, nil
	}
	if r, err = ttlstorage.ReadRecord(v); err != nil {
		return r, false, fmt.Errorf("key %s: %w", key, err)
	}
	if r.IsExpired(s.clock.Now()) {
		return r, false, nil
	}
	return r, true, nil
}

func (s *storage) put(tx *bolt.Tx, key string, val string, ttlSeconds int) error {
	if err := s.dropExpired(tx, key); err != nil {
		return err
	}
	r := ttlstorage.NewRecord([]byte(val), s.clock.Now(), ttlSeconds)
	if err := tx.Bucket([]byte(leasesBucketName)).Put([]byte(key), r.ToBytes()); err != nil {
		return err
	}
	if r.ExpireAt == 0 {
		return nil
	}
	return tx.Bucket([]byte(expirationsBucketName)).Put(ttlstorage.ExpirationKey(r.ExpireAt, []byte(key)), nil)
}

// dropExpired removes the record of the key if it is expired
func (s *storage) dropExpired(tx *bolt.Tx, key string) error {
	v := tx.Bucket([]byte(leasesBucketName)).Get([]byte(key))
	if v == nil {
		return nil
	}
	r, err := ttlstorage.ReadRecord(v)
	if err != nil {
		return err
	}
	if !r.IsExpired(s.clock.Now()) {
		return nil
	}
	return s.delete(tx, key, r)
}

func (s *storage) delete(tx *bolt.Tx, key string, r ttlstorage.Record) error {
	if err := tx.Bucket([]byte(leasesBucketName)).Delete([]byte(key)); err != nil {
		return err
	}
	if r.ExpireAt == 0 {
		return nil
	}
	return tx.Bucket([]byte(expirationsBucketName)).Delete(ttlstorage.ExpirationKey(r.ExpireAt, []byte(key)))
}

func (s *storage) cleanup() error {
	return s.db.Update(func(tx *bolt.Tx) error {
		expirations := tx.Bucket([]byte(expirationsBucketName))
		if expirations == nil {
			return fmt.Errorf("%w: %s", ErrBucketNotFound, expirationsBucketName)
		}
		now := s.clock.Now().UnixMilli()
		var expired [][]byte
		cr := expirations.Cursor()
		for k, _ := cr.First(); k != nil; k, _ = cr.Next() {
			expireAt, _, err := ttlstorage.SplitExpirationKey(k)
			if err != nil {
				return err
			}
			if expireAt > now {
				break
			}
			expired = append(expired, append([]byte(nil), k...))
		}
		for _, k := range expired {
			_, key, _ := ttlstorage.SplitExpirationKey(k)
			if err := s.dropExpired(tx, string(key)); err != nil {
				return err
			}
			// the key could be rewritten after the entry was made, the entry is stale then
			if err := expirations.Delete(k); err != nil {
				return err
			}
		}
		if len(expired) > 0 {
			logger.Verbose(fmt.Sprintf("bbolt ttl storage: %d expired leases removed", len(expired)))
		}
		return nil
	})
}

func (s *storage) backgroundCleaner(ctx context.Context, wg *sync.WaitGroup) {
	defer wg.Done()
	for {
		timer := s.clock.NewTimerChan(s.cleanupInterval)
		select {
		case <-ctx.Done():
			return
		case <-timer:
			if err := s.cleanup(); err != nil {
				logger.Error("bbolt ttl storage: failed to remove expired leases: " + err.Error())
			}
		}
	}
}
