package physics

import (
	"math"

	"github.com/milk9111/jumpking/input"
)

// JumpController turns the time the jump key is held into an upward impulse.
type JumpController struct {
	MaxCharge       float64 `yaml:"max_charge"`
	ChargeRate      float64 `yaml:"charge_rate"`
	Quantum         float64 `yaml:"quantum"`
	ForcePerQuantum float64 `yaml:"force_per_quantum"`
}

// Impulse is the velocity gained from releasing a charge: one force step
// per whole quantum, the remainder is dropped.
func (j JumpController) Impulse(charge float64) float64 {
	if charge <= 0 || j.Quantum <= 0 {
		return 0
	}
	return math.Floor(charge/j.Quantum) * j.ForcePerQuantum
}

// Update charges while the key is held on the ground and fires on release.
// The charge is zero after every release, grounded or not. It returns the
// impulse applied this call.
func (j JumpController) Update(p *Player, src input.Source) float64 {
	if src.IsDown(input.Jump) && p.CanJump {
		p.JumpCharge = math.Min(p.JumpCharge+j.ChargeRate, j.MaxCharge)
	}
	if !src.WasReleased(input.Jump) {
		return 0
	}

	var impulse float64
	if p.CanJump {
		impulse = j.Impulse(p.JumpCharge)
		p.Velocity.Y += impulse
	}
	p.JumpCharge = 0
	p.settle()
	return impulse
}
