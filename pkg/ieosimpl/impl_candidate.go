/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package ieosimpl

import (
	"github.com/voedger/clustersingleton/pkg/goutils/logger"
	"github.com/voedger/clustersingleton/pkg/ieos"
)

// Close withdraws the candidate. The lease is released in background.
func (c *candidate[E]) Close() {
	c.eos.removeCandidate(c)
	c.cancel()
}

func (c *candidate[E]) run() {
	defer c.eos.wg.Done()
	defer c.eos.forget(c)

	e := c.eos
	key := c.entity.Key()
	for c.ctx.Err() == nil {
		if leaseCtx := e.elections.AcquireLeadership(key, e.cfg.NodeID, e.cfg.LeadershipDuration); leaseCtx != nil {
			logger.InfoCtx(c.ctx, "owned")
			e.publishObserved(c, ieos.OwnershipState_IsOwner)
			select {
			case <-c.ctx.Done():
				// listeners learn about the loss before anyone else can take the lease
				e.publish(c.entity, ieos.OwnershipState_NoOwner)
				e.elections.ReleaseLeadership(key)
				logger.VerboseCtx(c.ctx, "candidate withdrawn, ownership released")
				return
			case <-leaseCtx.Done():
				logger.WarningCtx(c.ctx, "ownership lost")
				c.publishCurrent()
				continue
			}
		}
		c.publishCurrent()
		select {
		case <-c.ctx.Done():
		case <-e.clock.NewTimerChan(e.cfg.AcquireInterval):
		}
	}
	logger.VerboseCtx(c.ctx, "candidate withdrawn")
}

func (c *candidate[E]) publishCurrent() {
	state, err := c.eos.readState(c.entity)
	if err != nil {
		logger.ErrorCtx(c.ctx, "failed to read the ownership state: ", err)
		// the lease is not ours anyway
		state = ieos.OwnershipState_NoOwner
	}
	c.eos.publishObserved(c, state)
}
