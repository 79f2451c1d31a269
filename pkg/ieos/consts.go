/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package ieos

const (
	OwnershipState_IsOwner OwnershipState = iota
	OwnershipState_OwnedByOther
	OwnershipState_NoOwner
)

const (
	entityPathPrefix = "/general-entity/entity[name='"
	entityPathSuffix = "']"
	keySeparator     = "|"
)
