package physics

import (
	"fmt"
	"math"
)

// Tuning holds every constant the simulation reads.
type Tuning struct {
	// Gravity is in velocity units per second.
	Gravity float64 `yaml:"gravity"`
	// Scale converts velocity units into world units per second.
	Scale       float64 `yaml:"scale"`
	PlayerSpeed float64 `yaml:"player_speed"`
	// TerminalVelocity caps the fall speed; 0 disables the cap.
	TerminalVelocity float64 `yaml:"terminal_velocity"`
	// FixedDelta is the fixed tick length in seconds.
	FixedDelta float64        `yaml:"fixed_delta"`
	Jump       JumpController `yaml:"jump"`
}

// DefaultTuning returns the stock feel of the game.
func DefaultTuning() Tuning {
	return Tuning{
		Gravity:          9.8,
		Scale:            50,
		PlayerSpeed:      10,
		TerminalVelocity: 18,
		FixedDelta:       1.0 / 64.0,
		Jump: JumpController{
			MaxCharge:       100,
			ChargeRate:      2,
			Quantum:         10,
			ForcePerQuantum: 1.2,
		},
	}
}

func (t Tuning) Validate() error {
	checks := []struct {
		name string
		v    float64
		ok   func(float64) bool
	}{
		{"gravity", t.Gravity, nonNegative},
		{"scale", t.Scale, positive},
		{"player_speed", t.PlayerSpeed, nonNegative},
		{"terminal_velocity", t.TerminalVelocity, nonNegative},
		{"fixed_delta", t.FixedDelta, positive},
		{"jump.max_charge", t.Jump.MaxCharge, nonNegative},
		{"jump.charge_rate", t.Jump.ChargeRate, nonNegative},
		{"jump.quantum", t.Jump.Quantum, positive},
		{"jump.force_per_quantum", t.Jump.ForcePerQuantum, nonNegative},
	}
	for _, c := range checks {
		if math.IsNaN(c.v) || math.IsInf(c.v, 0) || !c.ok(c.v) {
			return fmt.Errorf("%w: %s = %g", ErrInvalidTuning, c.name, c.v)
		}
	}
	return nil
}

func positive(v float64) bool    { return v > 0 }
func nonNegative(v float64) bool { return v >= 0 }

// ValidateFor checks the tuning against one level. A tick must never move the
// player far enough to skip its thinnest platform: a fall must stay under the
// combined heights, a jump under the combined half heights, since the
// underside only stops a player whose center is still below the platform's.
// An uncapped fall (TerminalVelocity 0) is not checked.
func (t Tuning) ValidateFor(playerHalf Vec, colliders []ColliderSpec) error {
	if err := t.Validate(); err != nil {
		return err
	}

	thinnest, at := math.Inf(1), -1
	for i, c := range colliders {
		if orientationOf(c.HalfExtent) == Platform && c.HalfExtent.Y < thinnest {
			thinnest, at = c.HalfExtent.Y, i
		}
	}
	if at < 0 {
		return nil
	}

	perTick := t.Scale * t.FixedDelta
	if rise, limit := t.Jump.Impulse(t.Jump.MaxCharge)*perTick, playerHalf.Y+thinnest; rise >= limit {
		return fmt.Errorf("%w: full jump rises %g per tick, platform %d needs less than %g", ErrInvalidTuning, rise, at, limit)
	}
	if t.TerminalVelocity > 0 {
		if fall, limit := t.TerminalVelocity*perTick, 2*(playerHalf.Y+thinnest); fall >= limit {
			return fmt.Errorf("%w: terminal fall %g per tick, platform %d needs less than %g", ErrInvalidTuning, fall, at, limit)
		}
	}
	return nil
}
