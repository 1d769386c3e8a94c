package physics

import (
	"fmt"
	"math"

	"github.com/jakecoffman/cp"
)

// Vec is a 2D vector in world units. Y points up.
type Vec = cp.Vector

type Kind uint8

const (
	Dynamic Kind = iota
	Static
)

func (k Kind) String() string {
	switch k {
	case Dynamic:
		return "dynamic"
	case Static:
		return "static"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Orientation decides which axis a static collider resolves.
type Orientation uint8

const (
	// Platform resolves vertical penetration only.
	Platform Orientation = iota
	// Wall resolves horizontal penetration only.
	Wall
)

func (o Orientation) String() string {
	switch o {
	case Platform:
		return "platform"
	case Wall:
		return "wall"
	default:
		return fmt.Sprintf("orientation(%d)", uint8(o))
	}
}

// Body is an axis-aligned box described by its center and half size.
type Body struct {
	Position   Vec
	Velocity   Vec
	HalfExtent Vec
	Kind       Kind
}

// Bounds returns the box as a Chipmunk bounding box (L, B, R, T).
func (b *Body) Bounds() cp.BB {
	return cp.NewBBForExtents(b.Position, b.HalfExtent.X, b.HalfExtent.Y)
}

// Player is the single dynamic body of a store.
type Player struct {
	Body
	CanJump    bool
	JumpCharge float64
}

// Grounded reports whether the jump gate is open.
func (p *Player) Grounded() bool {
	return p.CanJump
}

// settle closes the jump gate as soon as the player moves upward.
func (p *Player) settle() {
	if p.Velocity.Y > 0 {
		p.CanJump = false
	}
}

// StaticCollider is immutable level geometry. Orientation is derived from
// the shape once, at creation.
type StaticCollider struct {
	Body
	Orientation Orientation
	// Z is a render layer and plays no part in physics.
	Z float64
}

// NewStaticCollider validates the half extent and tags the collider as a
// Platform (wider than tall, or square) or a Wall.
func NewStaticCollider(center, halfExtent Vec, z float64) (StaticCollider, error) {
	if err := validateHalfExtent(halfExtent); err != nil {
		return StaticCollider{}, err
	}
	return StaticCollider{
		Body: Body{
			Position:   center,
			HalfExtent: halfExtent,
			Kind:       Static,
		},
		Orientation: orientationOf(halfExtent),
		Z:           z,
	}, nil
}

func orientationOf(halfExtent Vec) Orientation {
	if halfExtent.X >= halfExtent.Y {
		return Platform
	}
	return Wall
}

func validateHalfExtent(h Vec) error {
	// the negated comparisons also reject NaN
	if !(h.X > 0) || !(h.Y > 0) || math.IsInf(h.X, 0) || math.IsInf(h.Y, 0) {
		return fmt.Errorf("%w: (%g, %g)", ErrInvalidHalfExtent, h.X, h.Y)
	}
	return nil
}
