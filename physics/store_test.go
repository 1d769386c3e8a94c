package physics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStore(t *testing.T) {
	s, err := NewStore(
		PlayerSpec{Position: Vec{X: 5, Y: 5}, HalfExtent: Vec{X: 25, Y: 25}},
		[]ColliderSpec{
			platform(0, -350, 5000, 5),
			{Center: Vec{X: 650, Y: 300}, HalfExtent: Vec{X: 25, Y: 1000}, Z: 2},
		},
	)
	require.NoError(t, err)

	assert.Equal(t, 3, s.Len())
	assert.True(t, s.PlayerID().valid())

	p, err := s.Player(s.PlayerID())
	require.NoError(t, err)
	assert.Equal(t, Dynamic, p.Kind)
	assert.Equal(t, Vec{X: 5, Y: 5}, p.Position)
	assert.False(t, p.CanJump, "the gate opens on the first landing")
	assert.Zero(t, p.JumpCharge)

	cs := s.Colliders()
	require.Len(t, cs, 2)
	assert.Equal(t, Platform, cs[0].Orientation)
	assert.Equal(t, Wall, cs[1].Orientation)
	assert.Equal(t, 2.0, cs[1].Z)

	// the copy does not alias the store
	cs[0].Position.Y = 1000
	assert.Equal(t, -350.0, s.Colliders()[0].Position.Y)
}

func TestNewStoreErrors(t *testing.T) {
	good := Vec{X: 1, Y: 1}
	tests := []struct {
		name      string
		player    Vec
		colliders []ColliderSpec
		contains  string
	}{
		{"player", Vec{}, nil, "player"},
		{"first_collider", good, []ColliderSpec{platform(0, 0, 0, 1)}, "collider 0"},
		{"later_collider", good, []ColliderSpec{platform(0, 0, 1, 1), platform(0, 0, 1, -1)}, "collider 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewStore(PlayerSpec{HalfExtent: tt.player}, tt.colliders)
			require.ErrorIs(t, err, ErrInvalidHalfExtent)
			assert.Contains(t, err.Error(), tt.contains)
			assert.Nil(t, s)
		})
	}
}

func TestBodyIDs(t *testing.T) {
	a, err := NewStore(PlayerSpec{HalfExtent: Vec{X: 1, Y: 1}}, []ColliderSpec{platform(0, 0, 1, 1)})
	require.NoError(t, err)
	b, err := NewStore(PlayerSpec{HalfExtent: Vec{X: 1, Y: 1}}, nil)
	require.NoError(t, err)

	assert.NotEqual(t, a.PlayerID(), b.PlayerID(), "stores never share handles")
	assert.NotEqual(t, a.PlayerID(), a.ColliderID(0))
	assert.False(t, BodyID(0).valid())
	assert.Equal(t, "invalid", BodyID(0).String())
	assert.Equal(t, "7:0", makeBodyID(0, 7).String())

	_, err = a.Player(b.PlayerID())
	require.ErrorIs(t, err, ErrUnknownBody)
	_, err = a.Player(a.ColliderID(0))
	require.ErrorIs(t, err, ErrUnknownBody)
}
