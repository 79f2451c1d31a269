/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package isingletonimpl

import (
	"github.com/voedger/clustersingleton/pkg/ieos"
	"github.com/voedger/clustersingleton/pkg/isingleton"
)

func (PlainEntityStrategy) CreateEntity(entityType string, id isingleton.ServiceGroupIdentifier) ieos.Entity {
	return ieos.Entity{Type: entityType, ID: string(id)}
}

func (PlainEntityStrategy) ServiceIdentifier(entity ieos.Entity) (isingleton.ServiceGroupIdentifier, error) {
	return isingleton.ServiceGroupIdentifier(entity.ID), nil
}

func (PlainEntityStrategy) RegisterListener(eos ieos.IEntityOwnershipService[ieos.Entity], entityType string,
	listener ieos.IOwnershipListener[ieos.Entity]) ieos.IRegistration {
	return eos.RegisterListener(entityType, listener)
}

func (PathEntityStrategy) CreateEntity(entityType string, id isingleton.ServiceGroupIdentifier) ieos.PathEntity {
	return ieos.NewPathEntity(entityType, string(id))
}

// ServiceIdentifier returns the name key value of the last path argument
func (PathEntityStrategy) ServiceIdentifier(entity ieos.PathEntity) (isingleton.ServiceGroupIdentifier, error) {
	id, err := entity.KeyValue()
	return isingleton.ServiceGroupIdentifier(id), err
}

func (PathEntityStrategy) RegisterListener(eos ieos.IEntityOwnershipService[ieos.PathEntity], entityType string,
	listener ieos.IOwnershipListener[ieos.PathEntity]) ieos.IRegistration {
	return eos.RegisterListener(entityType, listener)
}
