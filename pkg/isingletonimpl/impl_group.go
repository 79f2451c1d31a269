/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package isingletonimpl

import (
	"errors"
	"fmt"

	"github.com/voedger/clustersingleton/pkg/goutils/logger"
	"github.com/voedger/clustersingleton/pkg/ieos"
	"github.com/voedger/clustersingleton/pkg/isingleton"
)

func newGroup[E ieos.IEntity](p *provider[E], id isingleton.ServiceGroupIdentifier) *group[E] {
	return &group[E]{
		id:            id,
		serviceEntity: p.strategy.CreateEntity(ServiceEntityType, id),
		closeEntity:   p.strategy.CreateEntity(CloseServiceEntityType, id),
		eos:           p.eos,
		metrics:       p.metrics,
		nodeID:        p.nodeID,
		closed:        newCloseFuture(),
	}
}

// initialize adds the services and registers the candidate for the service entity.
// Returns ieos.ErrCandidateAlreadyRegistered if this node contests the group through another provider.
// Other election failures leave the group inoperational.
func (g *group[E]) initialize(services []isingleton.IClusterSingletonService) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.eos.IsCandidateRegistered(g.serviceEntity) || g.eos.IsCandidateRegistered(g.closeEntity) {
		return fmt.Errorf("%w: %v", ieos.ErrCandidateAlreadyRegistered, g.serviceEntity)
	}
	reg, err := g.eos.RegisterCandidate(g.serviceEntity)
	if errors.Is(err, ieos.ErrCandidateAlreadyRegistered) {
		return err
	}
	for _, s := range services {
		g.entries = append(g.entries, &serviceEntry{service: s})
	}
	if err != nil {
		logger.Error(fmt.Sprintf("ServiceGroup=%s: %v: failed to register the candidate: %v", g.id, isingleton.ErrElectionBackendFailure, err))
		g.failed = true
		return nil
	}
	g.serviceReg = reg
	logger.Verbose(fmt.Sprintf("ServiceGroup=%s: candidate for %v registered, services: %d", g.id, g.serviceEntity, len(services)))
	return nil
}

// registerService adds the service to the group. The service is instantiated asynchronously if the group is owned.
func (g *group[E]) registerService(s isingleton.IClusterSingletonService) {
	g.mu.Lock()
	g.entries = append(g.entries, &serviceEntry{service: s})
	g.mu.Unlock()
	go func() {
		g.mu.Lock()
		g.reconcile()
		g.mu.Unlock()
		g.runCalls()
	}()
}

// unregisterService removes the service and schedules its close if it was instantiated.
// The caller must runCalls once its locks are released.
func (g *group[E]) unregisterService(s isingleton.IClusterSingletonService) (found bool, empty bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	for i, e := range g.entries {
		if e.service != s {
			continue
		}
		g.entries = append(g.entries[:i], g.entries[i+1:]...)
		if e.active {
			g.requestClose(e)
		}
		return true, len(g.entries) == 0
	}
	return false, len(g.entries) == 0
}

// closeGroup withdraws the candidacies once the services are closed. Idempotent.
// The caller must runCalls once its locks are released.
func (g *group[E]) closeGroup() *closeFuture {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.lifecycle == groupActive {
		logger.Verbose(fmt.Sprintf("ServiceGroup=%s: closing", g.id))
		g.lifecycle = groupClosing
		g.withdrawService()
		g.reconcile()
	}
	return g.closed
}

// ownershipChanged applies the change of the service entity or the close entity.
// A gain is accepted only if this group contests the entity and the ownership service confirms the ownership.
func (g *group[E]) ownershipChanged(change ieos.OwnershipChange[E]) {
	gained := change.State.IsOwner && !change.InJeopardy
	if gained {
		state, ok := g.eos.GetOwnershipState(change.Entity)
		switch {
		case !ok:
			logger.Error(fmt.Sprintf("ServiceGroup=%s: %v: ownership state of %v is unknown", g.id, isingleton.ErrElectionBackendFailure, change.Entity))
			gained = false
		case state != ieos.OwnershipState_IsOwner:
			logger.Verbose(fmt.Sprintf("ServiceGroup=%s: stale ownership change of %v ignored, state is %s", g.id, change.Entity, state))
			gained = false
		}
	}

	g.mu.Lock()
	switch change.Entity {
	case g.serviceEntity:
		g.serviceOwned = gained && g.serviceReg != nil
	case g.closeEntity:
		g.closeOwned = gained && g.closeReg != nil
	default:
		g.mu.Unlock()
		return
	}
	if logger.IsVerbose() {
		logger.Verbose(fmt.Sprintf("ServiceGroup=%s: %v %s, jeopardy: %v, service entity owned: %v, close entity owned: %v",
			g.id, change.Entity, change.State, change.InJeopardy, g.serviceOwned, g.closeOwned))
	}
	g.reconcile()
	g.mu.Unlock()
	g.runCalls()
}

// reconcile brings the services and the close candidacy in line with the ownership.
// Services run only while both entities are owned and no service close is pending.
// The close candidacy is held while the service entity is owned and until every service is closed.
// Service calls are only scheduled. Must be called under g.mu.
func (g *group[E]) reconcile() {
	if g.lifecycle == groupRetired {
		return
	}
	operational := g.lifecycle == groupActive && !g.failed

	if !operational || !g.serviceOwned || !g.closeOwned {
		for _, e := range g.entries {
			if e.active {
				g.requestClose(e)
			}
		}
	} else if g.pendingCloses == 0 {
		for _, e := range g.entries {
			if !e.active {
				e.active = true
				g.metrics.IncreaseGroup(MetricActivations, g.nodeID, string(g.id), 1)
				g.schedule(e.service.InstantiateServiceInstance)
			}
		}
	}

	wantClose := operational && g.serviceOwned
	switch {
	case wantClose && g.closeReg == nil:
		reg, err := g.eos.RegisterCandidate(g.closeEntity)
		if err != nil {
			logger.Error(fmt.Sprintf("ServiceGroup=%s: %v: failed to register the candidate for %v: %v", g.id, isingleton.ErrElectionBackendFailure, g.closeEntity, err))
			g.failed = true
			g.withdrawService()
			break
		}
		g.closeReg = reg
		logger.Verbose(fmt.Sprintf("ServiceGroup=%s: candidate for %v registered", g.id, g.closeEntity))
	case !wantClose && g.closeReg != nil && g.pendingCloses == 0:
		g.closeReg.Close()
		g.closeReg = nil
		g.closeOwned = false
		logger.Verbose(fmt.Sprintf("ServiceGroup=%s: candidate for %v withdrawn", g.id, g.closeEntity))
	}

	if g.lifecycle == groupClosing && g.pendingCloses == 0 && g.closeReg == nil && g.serviceReg == nil {
		g.lifecycle = groupRetired
		err := errors.Join(g.closeErrs...)
		logger.Verbose(fmt.Sprintf("ServiceGroup=%s: closed, errors: %v", g.id, err))
		g.closed.resolve(err)
	}
}

// requestClose schedules the close of the service. The drain counts as pending from now on.
func (g *group[E]) requestClose(e *serviceEntry) {
	e.active = false
	g.pendingCloses++
	g.metrics.IncreaseGroup(MetricDeactivations, g.nodeID, string(g.id), 1)
	service := e.service
	g.schedule(func() {
		if ch := service.CloseServiceInstance(); ch != nil {
			go g.awaitServiceClose(ch)
			return
		}
		g.serviceClosed(nil)
	})
}

func (g *group[E]) awaitServiceClose(ch <-chan error) {
	g.serviceClosed(<-ch)
}

func (g *group[E]) serviceClosed(err error) {
	g.mu.Lock()
	if err != nil {
		logger.Error(fmt.Sprintf("ServiceGroup=%s: service close failed: %v", g.id, err))
		g.closeErrs = append(g.closeErrs, err)
	}
	g.pendingCloses--
	g.reconcile()
	g.mu.Unlock()
	g.runCalls()
}

// schedule queues a call of a service. Must be called under g.mu so the queue follows the state changes.
func (g *group[E]) schedule(call func()) {
	g.callsMu.Lock()
	g.calls = append(g.calls, call)
	g.callsMu.Unlock()
}

// runCalls makes the scheduled service calls in order.
// Must not be called under g.mu or provider locks since services may register and unregister from the calls.
// Returns at once if the calls are being made by another runCalls, including the one up the stack.
func (g *group[E]) runCalls() {
	g.callsMu.Lock()
	if g.callsRunning {
		g.callsMu.Unlock()
		return
	}
	g.callsRunning = true
	for len(g.calls) > 0 {
		call := g.calls[0]
		g.calls[0] = nil
		g.calls = g.calls[1:]
		g.callsMu.Unlock()
		call()
		g.callsMu.Lock()
	}
	g.callsRunning = false
	g.callsMu.Unlock()
}

func (g *group[E]) withdrawService() {
	if g.serviceReg != nil {
		g.serviceReg.Close()
		g.serviceReg = nil
		logger.Verbose(fmt.Sprintf("ServiceGroup=%s: candidate for %v withdrawn", g.id, g.serviceEntity))
	}
	g.serviceOwned = false
}
