/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

// Package bbolt is the ielections.ITTLStorage kept in a bbolt file, shared by the processes of one host
package bbolt

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/voedger/clustersingleton/pkg/goutils/timeu"
	"github.com/voedger/clustersingleton/pkg/ielections"
	bolt "go.etcd.io/bbolt"
)

// Provide opens or creates the database file and starts the cleaner of expired leases.
// cleanup stops the cleaner and closes the database.
func Provide(params Params, clock timeu.ITime) (s ielections.ITTLStorage[string, string], cleanup func(), err error) {
	if params.FileName == "" {
		params.FileName = DefaultFileName
	}
	if params.CleanupInterval == 0 {
		params.CleanupInterval = DefaultCleanupInterval
	}
	if params.DBDir != "" {
		if err := os.MkdirAll(params.DBDir, 0o755); err != nil {
			return nil, nil, err
		}
	}
	dbPath := filepath.Join(params.DBDir, params.FileName)
	db, err := bolt.Open(dbPath, 0o600, &bolt.Options{Timeout: openTimeout})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open %s: %w", dbPath, err)
	}
	if err := db.Update(func(tx *bolt.Tx) error {
		for _, name := range []string{leasesBucketName, expirationsBucketName} {
			if _, err := tx.CreateBucketIfNotExists([]byte(name)); err != nil {
				return err
			}
		}
		return nil
	}); err != nil {
		// notest
		_ = db.Close()
		return nil, nil, err
	}

	st := &storage{
		db:              db,
		clock:           clock,
		cleanupInterval: params.CleanupInterval,
	}
	ctx, cancel := context.WithCancel(context.Background())
	wg := &sync.WaitGroup{}
	wg.Add(1)
	go st.backgroundCleaner(ctx, wg)

	return st, func() {
		cancel()
		wg.Wait()
		_ = db.Close()
	}, nil
}
