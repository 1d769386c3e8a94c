package physics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTuningIsValid(t *testing.T) {
	require.NoError(t, DefaultTuning().Validate())
}

func TestTuningValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Tuning)
		field  string
	}{
		{"negative_gravity", func(t *Tuning) { t.Gravity = -1 }, "gravity"},
		{"zero_scale", func(t *Tuning) { t.Scale = 0 }, "scale"},
		{"nan_speed", func(t *Tuning) { t.PlayerSpeed = math.NaN() }, "player_speed"},
		{"negative_terminal", func(t *Tuning) { t.TerminalVelocity = -2 }, "terminal_velocity"},
		{"zero_dt", func(t *Tuning) { t.FixedDelta = 0 }, "fixed_delta"},
		{"zero_quantum", func(t *Tuning) { t.Jump.Quantum = 0 }, "jump.quantum"},
		{"inf_charge", func(t *Tuning) { t.Jump.MaxCharge = math.Inf(1) }, "jump.max_charge"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tun := DefaultTuning()
			tt.mutate(&tun)
			err := tun.Validate()
			require.ErrorIs(t, err, ErrInvalidTuning)
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}

func TestTuningValidateFor(t *testing.T) {
	half := Vec{X: 25, Y: 25}
	thin := []ColliderSpec{
		platform(0, -350, 5000, 5),
		platform(650, 0, 25, 1000),
		platform(0, 0, 500, 10),
	}

	tests := []struct {
		name      string
		mutate    func(*Tuning)
		colliders []ColliderSpec
		contains  string
	}{
		{"defaults", func(*Tuning) {}, thin, ""},
		{"no_platforms", func(t *Tuning) { t.Jump.ForcePerQuantum = 1000 }, []ColliderSpec{platform(650, 0, 25, 1000)}, ""},
		{"jump_through_platform", func(t *Tuning) { t.Jump.ForcePerQuantum = 10 }, thin, "platform 0"},
		{"fall_through_platform", func(t *Tuning) { t.TerminalVelocity = 100 }, thin, "terminal fall"},
		{"uncapped_fall", func(t *Tuning) { t.TerminalVelocity = 0 }, thin, ""},
		{"invalid_base", func(t *Tuning) { t.Scale = 0 }, thin, "scale"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tun := DefaultTuning()
			tt.mutate(&tun)
			err := tun.ValidateFor(half, tt.colliders)
			if tt.contains == "" {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, ErrInvalidTuning)
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}

// A full jump under a thin platform must be stopped by its underside for any
// tuning that passes ValidateFor.
func TestValidatedJumpCannotPassThroughPlatform(t *testing.T) {
	tun := DefaultTuning()
	tun.Jump.ForcePerQuantum = 3.3
	ceiling := platform(0, 0, 500, 10)
	require.NoError(t, tun.ValidateFor(playerHalf, []ColliderSpec{ceiling}))

	s, p := newTestStore(t, Vec{Y: -60}, Vec{}, ceiling)
	p.Velocity.Y = tun.Jump.Impulse(tun.Jump.MaxCharge)

	var hit bool
	for i := 0; i < 20 && !hit; i++ {
		hit = fixedTick(t, s, tun).Ceiling
	}
	assert.True(t, hit)
	assert.LessOrEqual(t, p.Position.Y, -35.0, "player stays below the platform")
}
