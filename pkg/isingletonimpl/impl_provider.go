/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package isingletonimpl

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/voedger/clustersingleton/pkg/goutils/logger"
	"github.com/voedger/clustersingleton/pkg/ieos"
	"github.com/voedger/clustersingleton/pkg/isingleton"
)

func (p *provider[E]) InitializeProvider() error {
	p.lifecycle.Lock()
	defer p.lifecycle.Unlock()
	if p.initialized {
		panic("cluster singleton service provider is initialized already")
	}
	if p.closed {
		return isingleton.ErrProviderClosed
	}
	p.serviceListenerReg = p.strategy.RegisterListener(p.eos, ServiceEntityType, p)
	p.closeListenerReg = p.strategy.RegisterListener(p.eos, CloseServiceEntityType, p)
	p.initialized = true
	logger.Info(fmt.Sprintf("Node=%s: cluster singleton service provider initialized", p.nodeID))
	return nil
}

func (p *provider[E]) RegisterClusterSingletonService(service isingleton.IClusterSingletonService) (isingleton.IClusterSingletonServiceRegistration, error) {
	if service == nil {
		return nil, fmt.Errorf("%w: nil service", isingleton.ErrInvalidArgument)
	}
	id := service.Identifier()
	if len(id) == 0 {
		return nil, fmt.Errorf("%w: empty service group identifier", isingleton.ErrInvalidArgument)
	}

	p.lifecycle.RLock()
	defer p.lifecycle.RUnlock()
	if p.closed {
		return nil, isingleton.ErrProviderClosed
	}
	if !p.initialized {
		panic("InitializeProvider must be called before the first registration")
	}

	p.locks.Lock(id)
	defer p.locks.Unlock(id)

	holder, ok := p.groups.Load(id)
	if !ok {
		g := newGroup(p, id)
		// stored first so that ownership changes caused by the candidacy find the group
		p.groups.Store(id, g)
		if err := g.initialize([]isingleton.IClusterSingletonService{service}); err != nil {
			p.groups.CompareAndDelete(id, g)
			return nil, fmt.Errorf("%w: %s: %w", isingleton.ErrDuplicateRegistration, id, err)
		}
		p.metrics.IncreaseGroup(MetricGroupsCreated, p.nodeID, string(id), 1)
	} else {
		switch h := holder.(type) {
		case *group[E]:
			h.registerService(service)
		case *placeholder[E]:
			h.addService(service)
			logger.Verbose(fmt.Sprintf("ServiceGroup=%s: group is closing, service postponed", id))
		}
	}
	logger.Verbose(fmt.Sprintf("ServiceGroup=%s: service registered", id))
	return &registration[E]{provider: p, service: service}, nil
}

func (r *registration[E]) Close() {
	r.once.Do(func() {
		r.provider.unregister(r.service)
	})
}

func (p *provider[E]) unregister(service isingleton.IClusterSingletonService) {
	// the service may be closed from here, so calls are made out of the locks
	if g := p.removeService(service); g != nil {
		g.runCalls()
	}
}

// removeService returns the group which calls of the service are scheduled in
func (p *provider[E]) removeService(service isingleton.IClusterSingletonService) *group[E] {
	p.lifecycle.RLock()
	defer p.lifecycle.RUnlock()
	if p.closed {
		return nil
	}
	id := service.Identifier()
	p.locks.Lock(id)
	defer p.locks.Unlock(id)

	holder, ok := p.groups.Load(id)
	if !ok {
		return nil
	}
	switch h := holder.(type) {
	case *placeholder[E]:
		h.removeService(service)
	case *group[E]:
		found, empty := h.unregisterService(service)
		if !found {
			return nil
		}
		logger.Verbose(fmt.Sprintf("ServiceGroup=%s: service unregistered", id))
		if !empty {
			return h
		}
		ph := newPlaceholder[E](id, h.closeGroup())
		if !p.groups.CompareAndSwap(id, h, ph) {
			logger.Error(fmt.Sprintf("ServiceGroup=%s: group is replaced concurrently, closing group is not tracked", id))
			return h
		}
		p.wg.Add(1)
		go p.finishShutdown(ph)
		return h
	}
	logger.Verbose(fmt.Sprintf("ServiceGroup=%s: service unregistered", id))
	return nil
}

// finishShutdown waits for the previous group to close then retires the identifier
// or starts a new group with the services registered meanwhile
func (p *provider[E]) finishShutdown(ph *placeholder[E]) {
	defer p.wg.Done()
	if err := ph.closing.wait(); err != nil {
		logger.Error(fmt.Sprintf("ServiceGroup=%s: closed with errors: %v", ph.id, err))
	}

	p.lifecycle.RLock()
	defer p.lifecycle.RUnlock()
	p.locks.Lock(ph.id)
	defer p.locks.Unlock(ph.id)

	services := ph.takeServices()
	if p.closed || len(services) == 0 {
		p.groups.CompareAndDelete(ph.id, ph)
		p.metrics.IncreaseGroup(MetricGroupsRetired, p.nodeID, string(ph.id), 1)
		logger.Verbose(fmt.Sprintf("ServiceGroup=%s: retired", ph.id))
		return
	}

	g := newGroup(p, ph.id)
	if !p.groups.CompareAndSwap(ph.id, ph, g) {
		logger.Error(fmt.Sprintf("ServiceGroup=%s: placeholder is replaced concurrently, %d service(s) dropped", ph.id, len(services)))
		return
	}
	p.metrics.IncreaseGroup(MetricGroupsReborn, p.nodeID, string(ph.id), 1)
	if err := g.initialize(services); err != nil {
		logger.Error(fmt.Sprintf("ServiceGroup=%s: %d service(s) will remain inoperational: %v", ph.id, len(services), err))
		p.groups.CompareAndDelete(ph.id, g)
		return
	}
	logger.Verbose(fmt.Sprintf("ServiceGroup=%s: started again with %d service(s)", ph.id, len(services)))
}

// OwnershipChanged dispatches the change to the group of the entity
func (p *provider[E]) OwnershipChanged(change ieos.OwnershipChange[E]) {
	p.metrics.Increase(MetricOwnershipChanges, p.nodeID, 1)
	id, err := p.strategy.ServiceIdentifier(change.Entity)
	if err != nil {
		logger.Error(fmt.Sprintf("Entity=%v: ownership change dropped: %v", change.Entity, err))
		p.metrics.Increase(MetricOwnershipChangesDropped, p.nodeID, 1)
		return
	}
	holder, _ := p.groups.Load(id)
	g, ok := holder.(*group[E])
	if !ok {
		logger.Verbose(fmt.Sprintf("ServiceGroup=%s: no active group, ownership change of %v dropped", id, change.Entity))
		p.metrics.Increase(MetricOwnershipChangesDropped, p.nodeID, 1)
		return
	}
	g.ownershipChanged(change)
}

// Close closes every group concurrently and waits until all services are closed
func (p *provider[E]) Close() {
	p.lifecycle.Lock()
	if p.closed {
		p.lifecycle.Unlock()
		return
	}
	p.closed = true
	var holders []any
	p.groups.Range(func(_, holder any) bool {
		holders = append(holders, holder)
		return true
	})
	listenerRegs := []ieos.IRegistration{p.serviceListenerReg, p.closeListenerReg}
	p.lifecycle.Unlock()

	logger.Info(fmt.Sprintf("Node=%s: closing cluster singleton service provider, groups: %d", p.nodeID, len(holders)))
	for _, reg := range listenerRegs {
		if reg != nil {
			reg.Close()
		}
	}

	eg := errgroup.Group{}
	for _, holder := range holders {
		eg.Go(func() error {
			var id isingleton.ServiceGroupIdentifier
			var err error
			switch h := holder.(type) {
			case *group[E]:
				closing := h.closeGroup()
				h.runCalls()
				id, err = h.id, closing.wait()
			case *placeholder[E]:
				id, err = h.id, h.closing.wait()
			}
			if err != nil {
				logger.Error(fmt.Sprintf("ServiceGroup=%s: closed with errors: %v", id, err))
			}
			return err
		})
	}
	_ = eg.Wait()
	p.wg.Wait()

	p.groups.Range(func(id, _ any) bool {
		p.groups.Delete(id)
		return true
	})
	logger.Info(fmt.Sprintf("Node=%s: cluster singleton service provider closed", p.nodeID))
}
