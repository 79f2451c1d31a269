/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package ieos

// IEntity is an entity contested through IEntityOwnershipService
type IEntity interface {
	comparable
	EntityType() string

	// Key identifies the entity among all entities of all types
	Key() string
}

// IEntityOwnershipService is the cluster-wide ownership election of entities.
// Each local candidate of an entity competes with candidates of other nodes, exactly one node owns the entity.
type IEntityOwnershipService[E IEntity] interface {
	// RegisterCandidate makes this node a candidate for the entity.
	// Returns ErrCandidateAlreadyRegistered if this node has a candidate for the entity already.
	// Closing the registration withdraws the candidate, ownership is given up if owned.
	RegisterCandidate(entity E) (IRegistration, error)

	// RegisterListener subscribes for ownership changes of all entities of the type.
	// Changes of one entity are delivered in order, one at a time per listener.
	RegisterListener(entityType string, listener IOwnershipListener[E]) IRegistration

	// GetOwnershipState returns false if the ownership state of the entity is not known
	GetOwnershipState(entity E) (state OwnershipState, ok bool)

	IsCandidateRegistered(entity E) bool
}

type IOwnershipListener[E IEntity] interface {
	OwnershipChanged(change OwnershipChange[E])
}

// IRegistration is closed to withdraw a candidate or a listener. Close is idempotent.
type IRegistration interface {
	Close()
}
