/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package mem

import (
	"sync"

	"github.com/voedger/clustersingleton/pkg/goutils/timeu"
	"github.com/voedger/clustersingleton/pkg/ttlstorage"
)

type storage struct {
	mu      sync.Mutex
	records map[string]ttlstorage.Record
	clock   timeu.ITime
}

// get must be called under lock, expired record is dropped
func (s *storage) get(key string) (ttlstorage.Record, bool) {
	r, ok := s.records[key]
	if ok && r.IsExpired(s.clock.Now()) {
		delete(s.records, key)
		return ttlstorage.Record{}, false
	}
	return r, ok
}

func (s *storage) InsertIfNotExist(key string, val string, ttlSeconds int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.get(key); ok {
		return false, nil
	}
	s.records[key] = ttlstorage.NewRecord([]byte(val), s.clock.Now(), ttlSeconds)
	return true, nil
}

func (s *storage) CompareAndSwap(key string, oldVal string, newVal string, ttlSeconds int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if r, ok := s.get(key); !ok || string(r.Data) != oldVal {
		return false, nil
	}
	s.records[key] = ttlstorage.NewRecord([]byte(newVal), s.clock.Now(), ttlSeconds)
	return true, nil
}

func (s *storage) CompareAndDelete(key string, val string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if r, ok := s.get(key); !ok || string(r.Data) != val {
		return false, nil
	}
	delete(s.records, key)
	return true, nil
}

func (s *storage) Get(key string) (ok bool, val string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.get(key)
	return ok, string(r.Data), nil
}
