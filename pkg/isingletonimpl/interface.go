/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package isingletonimpl

import (
	"github.com/voedger/clustersingleton/pkg/ieos"
	"github.com/voedger/clustersingleton/pkg/isingleton"
)

// IEntityStrategy maps service group identifiers to the entities of a particular flavor
type IEntityStrategy[E ieos.IEntity] interface {
	CreateEntity(entityType string, id isingleton.ServiceGroupIdentifier) E

	// ServiceIdentifier is the inverse of CreateEntity
	ServiceIdentifier(entity E) (isingleton.ServiceGroupIdentifier, error)

	RegisterListener(eos ieos.IEntityOwnershipService[E], entityType string, listener ieos.IOwnershipListener[E]) ieos.IRegistration
}
