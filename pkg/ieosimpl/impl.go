/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package ieosimpl

import (
	"context"
	"fmt"

	"github.com/voedger/clustersingleton/pkg/goutils/logger"
	"github.com/voedger/clustersingleton/pkg/ieos"
)

func (e *eos[E]) RegisterCandidate(entity E) (ieos.IRegistration, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return nil, ErrClosed
	}
	if _, ok := e.candidates[entity]; ok {
		return nil, fmt.Errorf("%w: %v", ieos.ErrCandidateAlreadyRegistered, entity)
	}
	ctx := logger.WithContextAttrs(context.Background(), logger.LogAttr_Node, e.cfg.NodeID)
	ctx, cancel := context.WithCancel(logger.WithContextAttrs(ctx, logger.LogAttr_Entity, entity.Key()))
	c := &candidate[E]{
		eos:    e,
		entity: entity,
		ctx:    ctx,
		cancel: cancel,
	}
	e.candidates[entity] = c
	e.wg.Add(1)
	go c.run()
	logger.VerboseCtx(ctx, "candidate registered")
	return c, nil
}

func (e *eos[E]) RegisterListener(entityType string, target ieos.IOwnershipListener[E]) ieos.IRegistration {
	l := &listener[E]{
		eos:        e,
		entityType: entityType,
		target:     target,
		pending:    make(chan struct{}, 1),
		done:       make(chan struct{}),
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		l.once.Do(func() { close(l.done) })
		return l
	}
	byType, ok := e.listeners[entityType]
	if !ok {
		byType = map[*listener[E]]struct{}{}
		e.listeners[entityType] = byType
	}
	byType[l] = struct{}{}

	// the new listener learns the current state of the entities of the type
	for entity, state := range e.states {
		if entity.EntityType() == entityType && state != ieos.OwnershipState_NoOwner {
			l.enqueue(ieos.OwnershipChange[E]{
				Entity: entity,
				State:  ieos.ChangeStateFrom(ieos.OwnershipState_NoOwner, state),
			})
		}
	}

	e.wg.Add(1)
	go l.run()
	return l
}

func (e *eos[E]) GetOwnershipState(entity E) (ieos.OwnershipState, bool) {
	e.mu.Lock()
	state, ok := e.states[entity]
	e.mu.Unlock()
	if ok {
		return state, true
	}
	if cached, ok := e.remoteStates.Get(entity); ok && e.clock.Now().Sub(cached.readAt) < e.cfg.RemoteStateTTL {
		return cached.state, true
	}
	state, err := e.readState(entity)
	if err != nil {
		logger.Error(fmt.Sprintf("Entity=%v: failed to read the ownership state: %v", entity, err))
		return state, false
	}
	e.remoteStates.Add(entity, remoteState{state: state, readAt: e.clock.Now()})
	return state, true
}

func (e *eos[E]) IsCandidateRegistered(entity E) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	_, ok := e.candidates[entity]
	return ok
}

// readState reads the holder of the lease. Our own lease that is not held by a candidate is just expiring.
func (e *eos[E]) readState(entity E) (ieos.OwnershipState, error) {
	ok, holder, err := e.storage.Get(entity.Key())
	switch {
	case err != nil:
		return ieos.OwnershipState_NoOwner, err
	case !ok || holder == e.cfg.NodeID:
		return ieos.OwnershipState_NoOwner, nil
	}
	return ieos.OwnershipState_OwnedByOther, nil
}

// publish notifies listeners of the entity type if the state of the entity has changed
func (e *eos[E]) publish(entity E, state ieos.OwnershipState) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.publishLocked(entity, state)
}

// publishObserved publishes the state observed by the candidate unless the candidate is withdrawn.
// The state of the entity may belong to a newer candidate already.
func (e *eos[E]) publishObserved(c *candidate[E], state ieos.OwnershipState) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if c.ctx.Err() != nil || e.candidates[c.entity] != c {
		return
	}
	e.publishLocked(c.entity, state)
}

func (e *eos[E]) publishLocked(entity E, state ieos.OwnershipState) {
	prev, ok := e.states[entity]
	if !ok {
		prev = ieos.OwnershipState_NoOwner
	}
	e.states[entity] = state
	e.remoteStates.Remove(entity)
	if prev == state {
		return
	}
	change := ieos.OwnershipChange[E]{
		Entity: entity,
		State:  ieos.ChangeStateFrom(prev, state),
	}
	logger.Verbose(fmt.Sprintf("Entity=%v: %s -> %s", entity, prev, state))
	for l := range e.listeners[entity.EntityType()] {
		l.enqueue(change)
	}
}

// forget drops the state of the entity unless a new candidate of the entity is registered already
func (e *eos[E]) forget(c *candidate[E]) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if _, ok := e.candidates[c.entity]; !ok {
		delete(e.states, c.entity)
	}
}

func (e *eos[E]) removeCandidate(c *candidate[E]) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.candidates[c.entity] == c {
		delete(e.candidates, c.entity)
	}
}

func (e *eos[E]) removeListener(l *listener[E]) {
	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.listeners[l.entityType], l)
}

func (e *eos[E]) cleanup() {
	e.mu.Lock()
	e.closed = true
	candidates := make([]*candidate[E], 0, len(e.candidates))
	for _, c := range e.candidates {
		candidates = append(candidates, c)
	}
	listeners := []*listener[E]{}
	for _, byType := range e.listeners {
		for l := range byType {
			listeners = append(listeners, l)
		}
	}
	e.mu.Unlock()

	for _, c := range candidates {
		c.Close()
	}
	for _, l := range listeners {
		l.Close()
	}
	e.wg.Wait()
}
