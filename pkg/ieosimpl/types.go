/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package ieosimpl

import (
	"context"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/voedger/clustersingleton/pkg/goutils/timeu"
	"github.com/voedger/clustersingleton/pkg/ielections"
	"github.com/voedger/clustersingleton/pkg/ieos"
)

type Config struct {
	// value stored in the lease of an owned entity, must be unique in the cluster
	NodeID string

	LeadershipDuration ielections.LeadershipDurationSeconds

	// pause between attempts to take the lease of an entity owned by someone else
	AcquireInterval time.Duration

	// states of entities without local candidates are read from the storage at most once per RemoteStateTTL
	RemoteStateCacheSize int
	RemoteStateTTL       time.Duration
}

type eos[E ieos.IEntity] struct {
	cfg       Config
	storage   ielections.ITTLStorage[string, string]
	elections ielections.IElections[string, string]
	clock     timeu.ITime

	mu         sync.Mutex
	closed     bool
	candidates map[E]*candidate[E]
	states     map[E]ieos.OwnershipState // last published state of the entities of local candidates
	listeners  map[string]map[*listener[E]]struct{}

	remoteStates *lru.Cache[E, remoteState]

	wg sync.WaitGroup
}

type remoteState struct {
	state  ieos.OwnershipState
	readAt time.Time
}

type candidate[E ieos.IEntity] struct {
	eos    *eos[E]
	entity E
	ctx    context.Context
	cancel context.CancelFunc
}

type listener[E ieos.IEntity] struct {
	eos        *eos[E]
	entityType string
	target     ieos.IOwnershipListener[E]

	mu      sync.Mutex
	queue   []ieos.OwnershipChange[E]
	pending chan struct{}
	done    chan struct{}
	once    sync.Once
}
