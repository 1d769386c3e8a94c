package physics

import (
	"testing"

	"github.com/milk9111/jumpking/input"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const frame = 1.0 / 60.0

func testJump() JumpController {
	return JumpController{MaxCharge: 100, ChargeRate: 7, Quantum: 10, ForcePerQuantum: 1.5}
}

func TestJumpImpulse(t *testing.T) {
	j := testJump()
	tests := []struct {
		charge float64
		want   float64
	}{
		{0, 0},
		{-3, 0},
		{9.99, 0},
		{10, 1.5},
		{15, 1.5},
		{99.9, 13.5},
		{100, 15},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, j.Impulse(tt.charge), "charge %g", tt.charge)
	}
}

func TestJumpChargeWhileHeld(t *testing.T) {
	j := testJump()
	p := &Player{CanJump: true}
	var src input.Tracker

	prev := p.JumpCharge
	for i := 0; i < 40; i++ {
		src.Advance(frame, input.Jump)
		assert.Zero(t, j.Update(p, &src))
		assert.GreaterOrEqual(t, p.JumpCharge, prev, "charge must not decrease while held")
		assert.LessOrEqual(t, p.JumpCharge, j.MaxCharge)
		prev = p.JumpCharge
	}
	assert.Equal(t, j.MaxCharge, p.JumpCharge)
	assert.Zero(t, p.Velocity.Y)
}

func TestJumpRelease(t *testing.T) {
	j := testJump()
	for _, start := range []float64{0, 3, 10, 42, 99.5, 100} {
		p := &Player{CanJump: true, JumpCharge: start}
		var src input.Tracker
		src.Advance(frame, input.Jump)
		// charging on the held frame first
		j.Update(p, &src)
		charged := p.JumpCharge

		src.Advance(frame)
		require.True(t, src.WasReleased(input.Jump))
		impulse := j.Update(p, &src)

		assert.Equal(t, 0.0, p.JumpCharge, "start %g", start)
		assert.Equal(t, j.Impulse(charged), impulse, "start %g", start)
		assert.Equal(t, impulse, p.Velocity.Y, "start %g", start)
		assert.Equal(t, impulse == 0, p.CanJump, "gate closes only on upward motion, start %g", start)
	}
}

func TestJumpReleaseWhileAirborne(t *testing.T) {
	j := testJump()
	p := &Player{JumpCharge: 40}
	p.Velocity.Y = -3
	var src input.Tracker
	src.Advance(frame, input.Jump)
	j.Update(p, &src)
	assert.Equal(t, 40.0, p.JumpCharge, "no charging in the air")

	src.Advance(frame)
	assert.Zero(t, j.Update(p, &src))
	assert.Equal(t, 0.0, p.JumpCharge)
	assert.Equal(t, -3.0, p.Velocity.Y)
}

func TestJumpNoReleaseWithoutPress(t *testing.T) {
	j := testJump()
	p := &Player{CanJump: true}
	var src input.Tracker
	for i := 0; i < 5; i++ {
		src.Advance(frame)
		assert.Zero(t, j.Update(p, &src))
	}
	assert.Zero(t, p.JumpCharge)
	assert.True(t, p.CanJump)
}
