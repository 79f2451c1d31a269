/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package ieos

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEntity(t *testing.T) {
	require := require.New(t)
	e := Entity{Type: "type1", ID: "svc1"}
	require.Equal("type1", e.EntityType())
	require.Equal("type1|svc1", e.Key())
	require.NotEqual(e.Key(), Entity{Type: "type2", ID: "svc1"}.Key())
	require.Equal("type1[svc1]", e.String())
}

func TestPathEntity(t *testing.T) {
	require := require.New(t)

	e := NewPathEntity("type1", "svc1")
	require.Equal("/general-entity/entity[name='svc1']", e.Path)
	require.Equal(e, NewPathEntity("type1", "svc1"))
	require.Equal("type1", e.EntityType())
	require.Equal("type1|/general-entity/entity[name='svc1']", e.Key())

	id, err := e.KeyValue()
	require.NoError(err)
	require.Equal("svc1", id)

	t.Run("quotes in identifier", func(t *testing.T) {
		e := NewPathEntity("type1", "it's")
		id, err := e.KeyValue()
		require.NoError(err)
		require.Equal("it's", id)
	})

	t.Run("malformed path", func(t *testing.T) {
		for _, path := range []string{"", "/general-entity/entity", "/general-entity/entity[name='x'", "[name=']"} {
			_, err := PathEntity{Type: "type1", Path: path}.KeyValue()
			require.ErrorIs(err, ErrMalformedEntity, path)
		}
	})
}

func TestChangeState(t *testing.T) {
	require := require.New(t)

	gained := ChangeStateFrom(OwnershipState_NoOwner, OwnershipState_IsOwner)
	require.Equal(ChangeState{WasOwner: false, IsOwner: true, HasOwner: true}, gained)
	require.True(gained.IsGained())
	require.False(gained.IsLost())

	lost := ChangeStateFrom(OwnershipState_IsOwner, OwnershipState_OwnedByOther)
	require.Equal(ChangeState{WasOwner: true, IsOwner: false, HasOwner: true}, lost)
	require.True(lost.IsLost())

	released := ChangeStateFrom(OwnershipState_IsOwner, OwnershipState_NoOwner)
	require.Equal(ChangeState{WasOwner: true, IsOwner: false, HasOwner: false}, released)

	require.Equal("wasOwner=true isOwner=false hasOwner=false", released.String())
	require.Equal("OwnedByOther", OwnershipState_OwnedByOther.String())
	require.Equal("OwnershipState(7)", OwnershipState(7).String())
}
