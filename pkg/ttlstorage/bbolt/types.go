/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package bbolt

import (
	"time"

	"github.com/voedger/clustersingleton/pkg/goutils/timeu"
	bolt "go.etcd.io/bbolt"
)

type Params struct {
	DBDir           string
	FileName        string        // DefaultFileName if empty
	CleanupInterval time.Duration // DefaultCleanupInterval if 0
}

type storage struct {
	db              *bolt.DB
	clock           timeu.ITime
	cleanupInterval time.Duration
}
