package physics

import (
	"fmt"
	"slices"
	"strconv"
	"sync/atomic"
)

// BodyID names a body inside one Store. The low 32 bits are the body index
// (0 is always the player), the high 32 bits the store generation, so a
// handle from a previous store is never mistaken for a live one.
type BodyID uint64

const bodyIndexBits = 32

func makeBodyID(index, gen uint32) BodyID {
	return BodyID(uint64(gen)<<bodyIndexBits | uint64(index))
}

func (id BodyID) index() uint32 {
	return uint32(id)
}

func (id BodyID) generation() uint32 {
	return uint32(uint64(id) >> bodyIndexBits)
}

func (id BodyID) String() string {
	if !id.valid() {
		return "invalid"
	}
	return strconv.FormatUint(uint64(id.generation()), 10) + ":" + strconv.FormatUint(uint64(id.index()), 10)
}

// valid reports whether the handle was issued by some store.
func (id BodyID) valid() bool {
	return id.generation() != 0
}

var nextGeneration atomic.Uint32

// PlayerSpec is the initial state of the player.
type PlayerSpec struct {
	Position   Vec
	HalfExtent Vec
}

// ColliderSpec is one record of a level descriptor.
type ColliderSpec struct {
	Center     Vec
	HalfExtent Vec
	Z          float64
}

// Store holds one player and an ordered, fixed list of static colliders.
// Nothing is added or removed after NewStore returns.
type Store struct {
	gen       uint32
	player    Player
	playerID  BodyID
	colliders []StaticCollider
}

// NewStore builds the player and every collider. An invalid half extent on
// any of them is a configuration error and no store is returned.
func NewStore(player PlayerSpec, colliders []ColliderSpec) (*Store, error) {
	if err := validateHalfExtent(player.HalfExtent); err != nil {
		return nil, fmt.Errorf("physics: player: %w", err)
	}

	s := &Store{gen: nextGeneration.Add(1)}
	s.player = Player{Body: Body{
		Position:   player.Position,
		HalfExtent: player.HalfExtent,
		Kind:       Dynamic,
	}}
	s.playerID = makeBodyID(0, s.gen)

	s.colliders = make([]StaticCollider, 0, len(colliders))
	for i, spec := range colliders {
		c, err := NewStaticCollider(spec.Center, spec.HalfExtent, spec.Z)
		if err != nil {
			return nil, fmt.Errorf("physics: collider %d: %w", i, err)
		}
		s.colliders = append(s.colliders, c)
	}
	return s, nil
}

// PlayerID returns the handle of the store's only dynamic body.
func (s *Store) PlayerID() BodyID {
	return s.playerID
}

// Player returns the player addressed by id.
func (s *Store) Player(id BodyID) (*Player, error) {
	if s == nil || id != s.playerID {
		return nil, fmt.Errorf("%w: %s", ErrUnknownBody, id)
	}
	return &s.player, nil
}

// ColliderID returns the handle of the i-th collider.
func (s *Store) ColliderID(i int) BodyID {
	return makeBodyID(uint32(i+1), s.gen)
}

// Colliders returns a copy of the static colliders in level order.
func (s *Store) Colliders() []StaticCollider {
	if s == nil {
		return nil
	}
	return slices.Clone(s.colliders)
}

// Len returns the number of bodies, player included.
func (s *Store) Len() int {
	if s == nil {
		return 0
	}
	return len(s.colliders) + 1
}
