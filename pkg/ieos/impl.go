/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package ieos

import (
	"fmt"
	"strings"
)

func (e Entity) EntityType() string { return e.Type }

func (e Entity) Key() string { return e.Type + keySeparator + e.ID }

func (e Entity) String() string { return fmt.Sprintf("%s[%s]", e.Type, e.ID) }

func NewPathEntity(entityType string, id string) PathEntity {
	return PathEntity{
		Type: entityType,
		Path: entityPathPrefix + strings.ReplaceAll(id, "'", "''") + entityPathSuffix,
	}
}

func (e PathEntity) EntityType() string { return e.Type }

func (e PathEntity) Key() string { return e.Type + keySeparator + e.Path }

func (e PathEntity) String() string { return fmt.Sprintf("%s%s", e.Type, e.Path) }

// KeyValue returns the value of the name key of the last path argument
func (e PathEntity) KeyValue() (string, error) {
	const nameKey = "[name='"
	i := strings.LastIndex(e.Path, nameKey)
	if strings.HasPrefix(e.Path, entityPathPrefix) {
		// the name may contain the name key itself
		i = len(entityPathPrefix) - len(nameKey)
	}
	start, end := i+len(nameKey), len(e.Path)-len(entityPathSuffix)
	if i < 0 || start > end || !strings.HasSuffix(e.Path, entityPathSuffix) {
		return "", fmt.Errorf("%w: no name key in %q", ErrMalformedEntity, e.Path)
	}
	return strings.ReplaceAll(e.Path[start:end], "''", "'"), nil
}

func (s ChangeState) String() string {
	return fmt.Sprintf("wasOwner=%t isOwner=%t hasOwner=%t", s.WasOwner, s.IsOwner, s.HasOwner)
}

// IsGained reports the transition from not owned to owned by this node
func (s ChangeState) IsGained() bool {
	return !s.WasOwner && s.IsOwner
}

// IsLost reports the transition from owned by this node to not owned by this node
func (s ChangeState) IsLost() bool {
	return s.WasOwner && !s.IsOwner
}

func (s OwnershipState) String() string {
	switch s {
	case OwnershipState_IsOwner:
		return "IsOwner"
	case OwnershipState_OwnedByOther:
		return "OwnedByOther"
	case OwnershipState_NoOwner:
		return "NoOwner"
	}
	return fmt.Sprintf("OwnershipState(%d)", int(s))
}

// ChangeStateFrom returns the transition between two ownership states
func ChangeStateFrom(was, is OwnershipState) ChangeState {
	return ChangeState{
		WasOwner: was == OwnershipState_IsOwner,
		IsOwner:  is == OwnershipState_IsOwner,
		HasOwner: is != OwnershipState_NoOwner,
	}
}
