/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package isingletonimpl

import (
	"sync"

	"github.com/im7mortal/kmutex"
	"github.com/voedger/clustersingleton/pkg/ieos"
	"github.com/voedger/clustersingleton/pkg/isingleton"
	imetrics "github.com/voedger/clustersingleton/pkg/metrics"
)

type provider[E ieos.IEntity] struct {
	eos      ieos.IEntityOwnershipService[E]
	strategy IEntityStrategy[E]
	metrics  imetrics.IMetrics
	nodeID   string

	// isingleton.ServiceGroupIdentifier -> *group[E] | *placeholder[E]
	groups sync.Map

	// per identifier: registration, withdrawal and finishShutdown
	locks *kmutex.Kmutex

	// read side: operations, write side: InitializeProvider and the beginning of Close
	lifecycle          sync.RWMutex
	initialized        bool
	closed             bool
	serviceListenerReg ieos.IRegistration
	closeListenerReg   ieos.IRegistration

	// finishShutdown goroutines
	wg sync.WaitGroup
}

type groupLifecycle int

// group contests the service entity then the close entity of one identifier
// and instantiates its services while both are owned
type group[E ieos.IEntity] struct {
	id            isingleton.ServiceGroupIdentifier
	serviceEntity E
	closeEntity   E
	eos           ieos.IEntityOwnershipService[E]
	metrics       imetrics.IMetrics
	nodeID        string

	mu            sync.Mutex
	lifecycle     groupLifecycle
	failed        bool
	entries       []*serviceEntry
	serviceReg    ieos.IRegistration
	closeReg      ieos.IRegistration
	serviceOwned  bool
	closeOwned    bool
	pendingCloses int
	closeErrs     []error
	closed        *closeFuture

	// service calls scheduled under mu and made out of it
	callsMu      sync.Mutex
	calls        []func()
	callsRunning bool
}

type serviceEntry struct {
	service isingleton.IClusterSingletonService

	// instantiated and not asked to close since then
	active bool
}

// placeholder stands for a closing group and collects the services registered meanwhile
type placeholder[E ieos.IEntity] struct {
	id      isingleton.ServiceGroupIdentifier
	closing *closeFuture

	mu       sync.Mutex
	services []isingleton.IClusterSingletonService
}

type closeFuture struct {
	done chan struct{}
	err  error
}

type registration[E ieos.IEntity] struct {
	provider *provider[E]
	service  isingleton.IClusterSingletonService
	once     sync.Once
}

type PlainEntityStrategy struct{}

type PathEntityStrategy struct{}
