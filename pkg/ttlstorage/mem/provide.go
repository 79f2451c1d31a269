/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

// Package mem is the in-process ielections.ITTLStorage, all nodes must share one instance
package mem

import (
	"github.com/voedger/clustersingleton/pkg/goutils/timeu"
	"github.com/voedger/clustersingleton/pkg/ielections"
	"github.com/voedger/clustersingleton/pkg/ttlstorage"
)

func Provide(clock timeu.ITime) ielections.ITTLStorage[string, string] {
	return &storage{
		records: map[string]ttlstorage.Record{},
		clock:   clock,
	}
}
