package sim

import "github.com/milk9111/jumpking/physics"

// BodyView is a read-only copy of a body for presentation.
type BodyView struct {
	ID          physics.BodyID
	Kind        physics.Kind
	Orientation physics.Orientation
	Position    physics.Vec
	HalfExtent  physics.Vec
	Z           float64
}

// PlayerView is a read-only copy of the player state.
type PlayerView struct {
	ID       physics.BodyID
	Position physics.Vec
	// Previous is the position before the last fixed tick.
	Previous   physics.Vec
	Velocity   physics.Vec
	HalfExtent physics.Vec
	CanJump    bool
	JumpCharge float64
}

// Bodies returns the colliders in level order followed by the player.
func (s *Session) Bodies() []BodyView {
	colliders := s.store.Colliders()
	views := make([]BodyView, 0, s.store.Len())
	for i, c := range colliders {
		views = append(views, BodyView{
			ID:          s.store.ColliderID(i),
			Kind:        c.Kind,
			Orientation: c.Orientation,
			Position:    c.Position,
			HalfExtent:  c.HalfExtent,
			Z:           c.Z,
		})
	}
	p := s.player()
	views = append(views, BodyView{
		ID:         s.playerID,
		Kind:       p.Kind,
		Position:   p.Position,
		HalfExtent: p.HalfExtent,
	})
	return views
}

func (s *Session) PlayerState() PlayerView {
	p := s.player()
	return PlayerView{
		ID:         s.playerID,
		Position:   p.Position,
		Previous:   s.prev,
		Velocity:   p.Velocity,
		HalfExtent: p.HalfExtent,
		CanJump:    p.CanJump,
		JumpCharge: p.JumpCharge,
	}
}

// Lerp blends the previous and current position; alpha is Session.Alpha.
func (p PlayerView) Lerp(alpha float64) physics.Vec {
	return p.Previous.Lerp(p.Position, alpha)
}
