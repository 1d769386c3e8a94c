package sim

import "github.com/milk9111/jumpking/input"

// Tick is what a system sees for one update. Input is nil on fixed ticks.
type Tick struct {
	Delta float64
	Input input.Source
}

// System updates a session once per tick.
type System interface {
	Update(s *Session, tick Tick)
}

// Scheduler runs systems in the order they were added.
type Scheduler struct {
	systems []System
}

func NewScheduler(systems ...System) *Scheduler {
	copied := append([]System(nil), systems...)
	return &Scheduler{systems: copied}
}

func (sc *Scheduler) Add(system System) {
	if system == nil {
		return
	}
	sc.systems = append(sc.systems, system)
}

func (sc *Scheduler) Update(s *Session, tick Tick) {
	for _, system := range sc.systems {
		system.Update(s, tick)
	}
}

func (sc *Scheduler) Systems() []System {
	systems := make([]System, 0, len(sc.systems))
	return append(systems, sc.systems...)
}
