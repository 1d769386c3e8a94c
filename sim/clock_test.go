package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClockAdvance(t *testing.T) {
	c := NewClock(1.0/64, 0)

	assert.Equal(t, 2, c.Advance(1.0/32))
	assert.Zero(t, c.Alpha())

	assert.Equal(t, 0, c.Advance(1.0/128))
	assert.Equal(t, 0.5, c.Alpha())

	assert.Equal(t, 1, c.Advance(1.0/128))
	assert.Zero(t, c.Alpha())

	assert.Equal(t, 0, c.Advance(-1), "negative frames add no time")
	assert.Equal(t, 1.0/64, c.Step())
}

func TestClockMaxTicksDropsBacklog(t *testing.T) {
	c := NewClock(1.0/64, 8)

	assert.Equal(t, 8, c.Advance(1))
	assert.Equal(t, 1-8.0/64, c.Dropped())
	assert.Zero(t, c.Alpha())

	assert.Equal(t, 1, c.Advance(1.0/64))
	assert.Zero(t, c.Dropped(), "dropped is per call")
}

func TestClockUnlimited(t *testing.T) {
	c := NewClock(1.0/64, 0)
	assert.Equal(t, 64, c.Advance(1))
	assert.Zero(t, c.Dropped())
}
