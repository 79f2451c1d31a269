/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package isingletonimpl

import (
	"github.com/voedger/clustersingleton/pkg/ieos"
	"github.com/voedger/clustersingleton/pkg/isingleton"
)

func newPlaceholder[E ieos.IEntity](id isingleton.ServiceGroupIdentifier, closing *closeFuture) *placeholder[E] {
	return &placeholder[E]{
		id:      id,
		closing: closing,
	}
}

func (ph *placeholder[E]) addService(s isingleton.IClusterSingletonService) {
	ph.mu.Lock()
	defer ph.mu.Unlock()
	ph.services = append(ph.services, s)
}

func (ph *placeholder[E]) removeService(s isingleton.IClusterSingletonService) bool {
	ph.mu.Lock()
	defer ph.mu.Unlock()
	for i, existing := range ph.services {
		if existing == s {
			ph.services = append(ph.services[:i], ph.services[i+1:]...)
			return true
		}
	}
	return false
}

// takeServices returns the services collected so far, the next call returns the services added after this one
func (ph *placeholder[E]) takeServices() []isingleton.IClusterSingletonService {
	ph.mu.Lock()
	defer ph.mu.Unlock()
	res := ph.services
	ph.services = nil
	return res
}
