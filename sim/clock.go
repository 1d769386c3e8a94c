package sim

// Clock converts variable frame lengths into whole fixed ticks.
type Clock struct {
	step     float64
	maxTicks int
	acc      float64
	dropped  float64
}

// NewClock returns a clock with the given tick length in seconds. At most
// maxTicks ticks run per frame; maxTicks <= 0 means no limit.
func NewClock(step float64, maxTicks int) *Clock {
	return &Clock{step: step, maxTicks: maxTicks}
}

// Advance adds frameDelta seconds and returns how many fixed ticks are due.
// Time beyond maxTicks ticks is discarded and reported by Dropped.
func (c *Clock) Advance(frameDelta float64) int {
	c.dropped = 0
	if frameDelta > 0 {
		c.acc += frameDelta
	}

	n := 0
	for c.acc >= c.step {
		if c.maxTicks > 0 && n == c.maxTicks {
			c.dropped = c.acc
			c.acc = 0
			break
		}
		c.acc -= c.step
		n++
	}
	return n
}

// Alpha is the fraction of a tick left in the accumulator, in [0, 1).
func (c *Clock) Alpha() float64 {
	return c.acc / c.step
}

// Dropped returns the seconds discarded by the last Advance.
func (c *Clock) Dropped() float64 {
	return c.dropped
}

func (c *Clock) Step() float64 {
	return c.step
}
