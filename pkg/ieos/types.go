/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package ieos

// Entity identifies the contested resource by a plain string ID
type Entity struct {
	Type string
	ID   string
}

// PathEntity identifies the contested resource by an instance path.
// The path of a general entity is /general-entity/entity[name='<id>'].
type PathEntity struct {
	Type string
	Path string
}

type OwnershipState int

// ChangeState is the ownership transition of an entity as seen by the local node
type ChangeState struct {
	WasOwner bool
	IsOwner  bool
	HasOwner bool
}

type OwnershipChange[E IEntity] struct {
	Entity E
	State  ChangeState

	// the ownership service has lost the connection with the cluster, the state may be stale
	InJeopardy bool
}
