package physics

// ApplyGravity pulls the player's vertical velocity down by gravity*dt.
// A positive terminal caps the fall speed; zero leaves it unbounded.
func ApplyGravity(p *Player, gravity, dt, terminal float64) {
	p.Velocity.Y -= gravity * dt
	if terminal > 0 && p.Velocity.Y < -terminal {
		p.Velocity.Y = -terminal
	}
}

// IntegratePosition moves the player by velocity*scale*dt on both axes.
func IntegratePosition(p *Player, scale, dt float64) {
	p.Position = p.Position.Add(p.Velocity.Mult(scale * dt))
}
