/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package ieosimpl

import (
	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/voedger/clustersingleton/pkg/goutils/timeu"
	"github.com/voedger/clustersingleton/pkg/ielections"
	"github.com/voedger/clustersingleton/pkg/ieos"
)

func NewDefaultConfig() Config {
	return Config{
		NodeID:               uuid.NewString(),
		LeadershipDuration:   DefaultLeadershipDuration,
		AcquireInterval:      DefaultAcquireInterval,
		RemoteStateCacheSize: DefaultRemoteStateCacheSize,
		RemoteStateTTL:       DefaultRemoteStateTTL,
	}
}

// Provide returns the entity ownership service that elects owners by leases in the storage.
// Nodes sharing the storage compete for the same entities.
// cleanup withdraws all candidates and listeners and waits for their goroutines.
func Provide[E ieos.IEntity](cfg Config, storage ielections.ITTLStorage[string, string], clock timeu.ITime) (ieos.IEntityOwnershipService[E], func()) {
	def := NewDefaultConfig()
	if cfg.NodeID == "" {
		cfg.NodeID = def.NodeID
	}
	if cfg.LeadershipDuration <= 0 {
		cfg.LeadershipDuration = def.LeadershipDuration
	}
	if cfg.AcquireInterval <= 0 {
		cfg.AcquireInterval = def.AcquireInterval
	}
	if cfg.RemoteStateCacheSize <= 0 {
		cfg.RemoteStateCacheSize = def.RemoteStateCacheSize
	}
	if cfg.RemoteStateTTL <= 0 {
		cfg.RemoteStateTTL = def.RemoteStateTTL
	}
	remoteStates, err := lru.New[E, remoteState](cfg.RemoteStateCacheSize)
	if err != nil {
		// notest
		panic("failed to create LRU cache: " + err.Error())
	}
	elections, electionsCleanup := ielections.Provide(storage, clock)
	e := &eos[E]{
		cfg:        cfg,
		storage:    storage,
		elections:  elections,
		clock:      clock,
		candidates: map[E]*candidate[E]{},
		states:     map[E]ieos.OwnershipState{},
		listeners:  map[string]map[*listener[E]]struct{}{},

		remoteStates: remoteStates,
	}
	return e, func() {
		e.cleanup()
		electionsCleanup()
	}
}
