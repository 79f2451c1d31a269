/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package isingletonimpl

import (
	"fmt"
	"sync"
	"testing"

	"github.com/voedger/clustersingleton/pkg/ieos"
	"github.com/voedger/clustersingleton/pkg/isingleton"
	imetrics "github.com/voedger/clustersingleton/pkg/metrics"
)

// mockEOS delivers ownership changes synchronously from the calling goroutine
type mockEOS[E ieos.IEntity] struct {
	mu           sync.Mutex
	candidates   map[E]*mockCandidate[E]
	states       map[E]ieos.OwnershipState
	listeners    map[string]map[*mockListenerReg[E]]ieos.IOwnershipListener[E]
	failRegister map[E]error
	stateUnknown bool
	history      []string
}

type mockCandidate[E ieos.IEntity] struct {
	eos    *mockEOS[E]
	entity E
	once   sync.Once
}

type mockListenerReg[E ieos.IEntity] struct {
	eos        *mockEOS[E]
	entityType string
}

func newMockEOS[E ieos.IEntity]() *mockEOS[E] {
	return &mockEOS[E]{
		candidates:   map[E]*mockCandidate[E]{},
		states:       map[E]ieos.OwnershipState{},
		listeners:    map[string]map[*mockListenerReg[E]]ieos.IOwnershipListener[E]{},
		failRegister: map[E]error{},
	}
}

func (m *mockEOS[E]) RegisterCandidate(entity E) (ieos.IRegistration, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.failRegister[entity]; err != nil {
		return nil, err
	}
	if _, ok := m.candidates[entity]; ok {
		return nil, fmt.Errorf("%w: %v", ieos.ErrCandidateAlreadyRegistered, entity)
	}
	c := &mockCandidate[E]{eos: m, entity: entity}
	m.candidates[entity] = c
	m.history = append(m.history, "register "+entity.Key())
	return c, nil
}

func (c *mockCandidate[E]) Close() {
	c.once.Do(func() {
		m := c.eos
		m.mu.Lock()
		defer m.mu.Unlock()
		if m.candidates[c.entity] == c {
			delete(m.candidates, c.entity)
		}
		if m.states[c.entity] == ieos.OwnershipState_IsOwner {
			m.states[c.entity] = ieos.OwnershipState_NoOwner
		}
		m.history = append(m.history, "withdraw "+c.entity.Key())
	})
}

func (m *mockEOS[E]) RegisterListener(entityType string, listener ieos.IOwnershipListener[E]) ieos.IRegistration {
	m.mu.Lock()
	defer m.mu.Unlock()
	reg := &mockListenerReg[E]{eos: m, entityType: entityType}
	if m.listeners[entityType] == nil {
		m.listeners[entityType] = map[*mockListenerReg[E]]ieos.IOwnershipListener[E]{}
	}
	m.listeners[entityType][reg] = listener
	return reg
}

func (r *mockListenerReg[E]) Close() {
	r.eos.mu.Lock()
	defer r.eos.mu.Unlock()
	delete(r.eos.listeners[r.entityType], r)
}

func (m *mockEOS[E]) GetOwnershipState(entity E) (ieos.OwnershipState, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.stateUnknown {
		return ieos.OwnershipState_NoOwner, false
	}
	state, ok := m.states[entity]
	if !ok {
		return ieos.OwnershipState_NoOwner, true
	}
	return state, true
}

func (m *mockEOS[E]) IsCandidateRegistered(entity E) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.candidates[entity]
	return ok
}

// grant makes this node the owner of the entity and notifies listeners
func (m *mockEOS[E]) grant(entity E) {
	m.setState(entity, ieos.OwnershipState_IsOwner)
	m.deliver(ieos.OwnershipChange[E]{Entity: entity, State: ieos.ChangeStateFrom(ieos.OwnershipState_NoOwner, ieos.OwnershipState_IsOwner)})
}

// revoke gives the entity to another node and notifies listeners
func (m *mockEOS[E]) revoke(entity E) {
	m.setState(entity, ieos.OwnershipState_OwnedByOther)
	m.deliver(ieos.OwnershipChange[E]{Entity: entity, State: ieos.ChangeStateFrom(ieos.OwnershipState_IsOwner, ieos.OwnershipState_OwnedByOther)})
}

func (m *mockEOS[E]) setState(entity E, state ieos.OwnershipState) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.states[entity] = state
}

func (m *mockEOS[E]) deliver(change ieos.OwnershipChange[E]) {
	m.mu.Lock()
	var targets []ieos.IOwnershipListener[E]
	for _, l := range m.listeners[change.Entity.EntityType()] {
		targets = append(targets, l)
	}
	m.mu.Unlock()
	for _, l := range targets {
		l.OwnershipChanged(change)
	}
}

func (m *mockEOS[E]) setFailRegister(entity E, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failRegister[entity] = err
}

func (m *mockEOS[E]) setStateUnknown(unknown bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stateUnknown = unknown
}

func (m *mockEOS[E]) listenersCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	res := 0
	for _, byType := range m.listeners {
		res += len(byType)
	}
	return res
}

// countInHistory counts the history records equal to the given one
func (m *mockEOS[E]) countInHistory(record string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	res := 0
	for _, r := range m.history {
		if r == record {
			res++
		}
	}
	return res
}

type testService struct {
	id isingleton.ServiceGroupIdentifier

	mu           sync.Mutex
	instantiated int
	closed       int
	manualClose  bool
	closeCh      chan error
}

func newTestService(id isingleton.ServiceGroupIdentifier) *testService {
	return &testService{id: id}
}

// newManualService returns a service whose close completes on finishClose.
// Closes made after the test are completed at once.
func newManualService(t *testing.T, id isingleton.ServiceGroupIdentifier) *testService {
	s := &testService{id: id, manualClose: true}
	t.Cleanup(s.autoClose)
	return s
}

func (s *testService) Identifier() isingleton.ServiceGroupIdentifier { return s.id }

func (s *testService) InstantiateServiceInstance() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.instantiated++
}

func (s *testService) CloseServiceInstance() <-chan error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed++
	if !s.manualClose {
		return nil
	}
	s.closeCh = make(chan error, 1)
	return s.closeCh
}

func (s *testService) finishClose(err error) {
	s.mu.Lock()
	ch := s.closeCh
	s.closeCh = nil
	s.mu.Unlock()
	ch <- err
}

// autoClose completes the pending close and makes the next closes synchronous
func (s *testService) autoClose() {
	s.mu.Lock()
	s.manualClose = false
	ch := s.closeCh
	s.closeCh = nil
	s.mu.Unlock()
	if ch != nil {
		ch <- nil
	}
}

func (s *testService) counts() (instantiated int, closed int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.instantiated, s.closed
}

func (s *testService) isRunning() bool {
	instantiated, closed := s.counts()
	return instantiated > closed
}

// hookedService calls onInstantiate from InstantiateServiceInstance
type hookedService struct {
	*testService
	onInstantiate func()
}

func (s *hookedService) InstantiateServiceInstance() {
	s.testService.InstantiateServiceInstance()
	if s.onInstantiate != nil {
		s.onInstantiate()
	}
}

func metricValue(m imetrics.IMetrics, name string, group string) (res float64) {
	_ = m.List(func(metric imetrics.IMetric, value float64) error {
		if metric.Name() == name && metric.Group() == group {
			res += value
		}
		return nil
	})
	return res
}
