package physics

import "math"

// Contacts summarizes one resolution step.
type Contacts struct {
	Landed    bool
	Ceiling   bool
	WallLeft  bool
	WallRight bool
	// Hits holds the indices of every collider that overlapped the player,
	// in level order.
	Hits []int
}

// Resolve pushes the player out of the static colliders.
//
// Walls only correct the horizontal axis and platforms only the vertical
// one, so a corner overlap can leave residual penetration on the other axis.
// Every overlap test uses the player's state from before this call and, per
// axis, the most restrictive surface wins: the highest floor, the lowest
// ceiling, the nearest wall face. The outcome therefore does not depend on
// the order of the collider list.
//
// A rising player only hits the underside of a platform it approaches from
// below. A rising player whose center is already above the platform's center
// passes up through it, which is what lets a player resting slightly inside
// its platform jump off it. Tuning.ValidateFor keeps a jump from skipping
// past the center in one tick.
func (s *Store) Resolve(id BodyID) (Contacts, error) {
	p, err := s.Player(id)
	if err != nil {
		return Contacts{}, err
	}
	return resolve(p, s.colliders), nil
}

type bound struct {
	at  float64
	set bool
}

func (b *bound) max(v float64) {
	if !b.set || v > b.at {
		b.at, b.set = v, true
	}
}

func (b *bound) min(v float64) {
	if !b.set || v < b.at {
		b.at, b.set = v, true
	}
}

func resolve(p *Player, colliders []StaticCollider) Contacts {
	var (
		contacts Contacts
		floor    bound
		ceiling  bound
		wallR    bound // left face of a wall to the right
		wallL    bound // right face of a wall to the left
	)

	pb := p.Bounds()
	v := p.Velocity
	for i := range colliders {
		c := &colliders[i]
		if !Overlaps(&p.Body, &c.Body) {
			continue
		}
		contacts.Hits = append(contacts.Hits, i)

		cb := c.Bounds()
		switch c.Orientation {
		case Platform:
			if v.Y <= 0 && pb.B < cb.T {
				floor.max(cb.T)
			} else if v.Y > 0 && pb.T > cb.B && p.Position.Y < c.Position.Y {
				ceiling.min(cb.B)
			}
		case Wall:
			if v.X > 0 && pb.R > cb.L {
				wallR.min(cb.L)
			} else if v.X < 0 && pb.L < cb.R {
				wallL.max(cb.R)
			}
		}
	}

	if floor.set {
		p.Position.Y = floor.at + p.HalfExtent.Y
		p.Velocity.Y = math.Max(p.Velocity.Y, 0)
		p.CanJump = true
		contacts.Landed = true
	}
	if ceiling.set {
		p.Position.Y = ceiling.at - p.HalfExtent.Y
		p.Velocity.Y = math.Min(p.Velocity.Y, 0)
		contacts.Ceiling = true
	}
	if wallR.set {
		p.Position.X = wallR.at - p.HalfExtent.X
		p.Velocity.X = math.Min(p.Velocity.X, 0)
		contacts.WallRight = true
	}
	if wallL.set {
		p.Position.X = wallL.at + p.HalfExtent.X
		p.Velocity.X = math.Max(p.Velocity.X, 0)
		contacts.WallLeft = true
	}

	p.settle()
	return contacts
}
