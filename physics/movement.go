package physics

import "github.com/milk9111/jumpking/input"

// MoveHorizontal overwrites the horizontal velocity from the left/right keys.
// Pressing both, or neither, stops the player.
func MoveHorizontal(p *Player, src input.Source, speed float64) {
	left := src.IsDown(input.Left)
	right := src.IsDown(input.Right)
	switch {
	case left && !right:
		p.Velocity.X = -speed
	case right && !left:
		p.Velocity.X = speed
	default:
		p.Velocity.X = 0
	}
}
