package sim

import "github.com/milk9111/jumpking/physics"

// GravitySystem must run before CollisionSystem in the same tick, otherwise
// the resolver sees last tick's velocity.
type GravitySystem struct{}

func (GravitySystem) Update(s *Session, tick Tick) {
	t := s.tuning
	physics.ApplyGravity(s.player(), t.Gravity, tick.Delta, t.TerminalVelocity)
}

type CollisionSystem struct{}

func (CollisionSystem) Update(s *Session, tick Tick) {
	wasGrounded := s.player().Grounded()
	contacts, err := s.store.Resolve(s.playerID)
	if err != nil {
		panic(err)
	}
	s.contacts = contacts
	if contacts.Landed && !wasGrounded {
		p := s.player()
		s.logger.Debug("landed", "tick", s.ticks, "x", p.Position.X, "y", p.Position.Y)
	}
}

type PositionSystem struct{}

func (PositionSystem) Update(s *Session, tick Tick) {
	physics.IntegratePosition(s.player(), s.tuning.Scale, tick.Delta)
}

type JumpSystem struct{}

func (JumpSystem) Update(s *Session, tick Tick) {
	if impulse := s.tuning.Jump.Update(s.player(), tick.Input); impulse > 0 {
		s.logger.Debug("jump", "frame", s.frames, "impulse", impulse)
	}
}

type MovementSystem struct{}

func (MovementSystem) Update(s *Session, tick Tick) {
	physics.MoveHorizontal(s.player(), tick.Input, s.tuning.PlayerSpeed)
}
