package input

// Tracker derives press and release edges from the keys held each frame.
type Tracker struct {
	down  [numKeys]bool
	prev  [numKeys]bool
	delta float64
}

// Advance starts a new frame of length dt with exactly the given keys held.
func (t *Tracker) Advance(dt float64, held ...Key) {
	t.prev = t.down
	t.down = [numKeys]bool{}
	for _, k := range held {
		if k < numKeys {
			t.down[k] = true
		}
	}
	t.delta = dt
}

func (t *Tracker) IsDown(k Key) bool {
	return k < numKeys && t.down[k]
}

func (t *Tracker) WasPressed(k Key) bool {
	return k < numKeys && t.down[k] && !t.prev[k]
}

func (t *Tracker) WasReleased(k Key) bool {
	return k < numKeys && !t.down[k] && t.prev[k]
}

func (t *Tracker) Delta() float64 {
	return t.delta
}
