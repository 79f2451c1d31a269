/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package main

import (
	"context"
	"fmt"
	"time"

	"github.com/voedger/clustersingleton/pkg/goutils/logger"
	"github.com/voedger/clustersingleton/pkg/goutils/timeu"
	"github.com/voedger/clustersingleton/pkg/isingleton"
)

func newDemoService(id isingleton.ServiceGroupIdentifier, clock timeu.ITime, tick time.Duration) *demoService {
	return &demoService{id: id, clock: clock, tick: tick}
}

func (s *demoService) Identifier() isingleton.ServiceGroupIdentifier {
	return s.id
}

func (s *demoService) InstantiateServiceInstance() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		return
	}
	ctx, cancel := context.WithCancel(logger.WithContextAttrs(context.Background(), logger.LogAttr_ServiceID, string(s.id)))
	s.cancel = cancel
	s.done = make(chan struct{})
	go s.run(ctx, s.done)
	logger.InfoCtx(ctx, "instantiated")
}

func (s *demoService) run(ctx context.Context, done chan struct{}) {
	defer close(done)
	defer logger.InfoCtx(ctx, "closed")
	for ticks := 1; ; ticks++ {
		select {
		case <-ctx.Done():
			return
		case <-s.clock.NewTimerChan(s.tick):
			logger.VerboseCtx(ctx, fmt.Sprintf("tick %d", ticks))
		}
	}
}

func (s *demoService) CloseServiceInstance() <-chan error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel == nil {
		return nil
	}
	s.cancel()
	s.cancel = nil
	done := s.done
	res := make(chan error, 1)
	go func() {
		<-done
		close(res)
	}()
	return res
}

func (s *demoService) isRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cancel != nil
}
