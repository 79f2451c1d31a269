/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package isingleton

// IClusterSingletonService is instantiated on exactly one node of the cluster.
// Services sharing an Identifier form a group that is instantiated together.
// Registration identity is the object identity, so implementations are used by pointer.
type IClusterSingletonService interface {
	Identifier() ServiceGroupIdentifier

	// InstantiateServiceInstance is called when this node becomes the owner of the group
	InstantiateServiceInstance()

	// CloseServiceInstance is called when the ownership is lost or the service is unregistered.
	// The close is complete when a value is received from the channel or the channel is closed.
	// nil channel means the service is closed already.
	CloseServiceInstance() <-chan error
}

type IClusterSingletonServiceRegistration interface {
	// Close unregisters the service. Idempotent, safe to call after the provider is closed.
	Close()
}

type IClusterSingletonServiceProvider interface {
	// InitializeProvider subscribes to ownership changes. Must be called once before the first registration.
	// Panics if called twice.
	InitializeProvider() error

	// RegisterClusterSingletonService returns:
	//   - ErrInvalidArgument if the identifier is empty
	//   - ErrDuplicateRegistration if the ownership service has a candidate for the group already
	//   - ErrProviderClosed after Close
	// The service is instantiated later, when the ownership of the group is confirmed.
	RegisterClusterSingletonService(service IClusterSingletonService) (IClusterSingletonServiceRegistration, error)

	// Close closes all groups and waits until every service is closed. Idempotent.
	Close()
}
