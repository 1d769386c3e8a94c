package sim

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/milk9111/jumpking/input"
	"github.com/milk9111/jumpking/levels"
	"github.com/milk9111/jumpking/physics"
	"github.com/milk9111/jumpking/prefabs"
)

// Session owns one store and advances it. It is not safe for concurrent use;
// a single goroutine drives every tick.
type Session struct {
	id       uuid.UUID
	name     string
	store    *physics.Store
	playerID physics.BodyID
	tuning   physics.Tuning
	clock    *Clock
	fixed    *Scheduler
	frame    *Scheduler
	logger   *slog.Logger

	maxTicks int
	ticks    uint64
	frames   uint64
	contacts physics.Contacts
	prev     physics.Vec
}

type Option func(*Session)

func WithLogger(l *slog.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithMaxTicks bounds the fixed ticks run by one Frame.
func WithMaxTicks(n int) Option {
	return func(s *Session) {
		s.maxTicks = n
	}
}

// WithName labels the session in logs, usually with the level name.
func WithName(name string) Option {
	return func(s *Session) {
		s.name = name
	}
}

// NewSession validates the tuning, builds the store and wires the fixed
// (gravity, collision, position) and frame (jump, movement) schedulers.
func NewSession(tuning physics.Tuning, player physics.PlayerSpec, colliders []physics.ColliderSpec, opts ...Option) (*Session, error) {
	if err := tuning.ValidateFor(player.HalfExtent, colliders); err != nil {
		return nil, fmt.Errorf("sim: new session: %w", err)
	}
	store, err := physics.NewStore(player, colliders)
	if err != nil {
		return nil, fmt.Errorf("sim: new session: %w", err)
	}

	s := &Session{
		id:       uuid.New(),
		store:    store,
		playerID: store.PlayerID(),
		tuning:   tuning,
		logger:   slog.Default(),
		fixed:    NewScheduler(GravitySystem{}, CollisionSystem{}, PositionSystem{}),
		frame:    NewScheduler(JumpSystem{}, MovementSystem{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.clock = NewClock(tuning.FixedDelta, s.maxTicks)
	s.prev = player.Position
	s.logger = s.logger.With("session", s.id.String())

	s.logger.Info("session started", "name", s.name, "colliders", len(colliders), "fixed_delta", tuning.FixedDelta)
	return s, nil
}

// Load builds a session from a named level and the player spec.
func Load(levelName string, opts ...Option) (*Session, error) {
	lvl, err := levels.Load(levelName)
	if err != nil {
		return nil, err
	}
	spec, err := prefabs.LoadPlayerSpec()
	if err != nil {
		return nil, err
	}
	return FromSpecs(lvl, spec, opts...)
}

// FromSpecs builds a session from already loaded specs.
func FromSpecs(lvl *levels.Level, spec *prefabs.PlayerSpec, opts ...Option) (*Session, error) {
	player := physics.PlayerSpec{Position: lvl.SpawnPoint(), HalfExtent: spec.Extent()}
	opts = append([]Option{WithName(lvl.Name), WithMaxTicks(spec.MaxTicksPerFrame)}, opts...)
	return NewSession(spec.Tuning, player, lvl.ColliderSpecs(), opts...)
}

// Frame runs every fixed tick that src.Delta() makes due, then the frame
// systems. It returns the number of fixed ticks run.
func (s *Session) Frame(src input.Source) int {
	n := s.clock.Advance(src.Delta())
	for i := 0; i < n; i++ {
		s.Step()
	}
	if d := s.clock.Dropped(); d > 0 {
		s.logger.Debug("dropped fixed time", "seconds", d, "frame", s.frames)
	}

	s.frame.Update(s, Tick{Delta: src.Delta(), Input: src})
	s.frames++
	return n
}

// Step runs one fixed tick.
func (s *Session) Step() {
	s.prev = s.player().Position
	s.fixed.Update(s, Tick{Delta: s.tuning.FixedDelta})
	s.ticks++
}

func (s *Session) player() *physics.Player {
	p, err := s.store.Player(s.playerID)
	if err != nil {
		panic(fmt.Errorf("sim: session %s: %w", s.id, err))
	}
	return p
}

func (s *Session) ID() uuid.UUID              { return s.id }
func (s *Session) Name() string               { return s.name }
func (s *Session) Tuning() physics.Tuning     { return s.tuning }
func (s *Session) Ticks() uint64              { return s.ticks }
func (s *Session) Frames() uint64             { return s.frames }
func (s *Session) Contacts() physics.Contacts { return s.contacts }

// Alpha is how far the clock is into the next fixed tick, for interpolation.
func (s *Session) Alpha() float64 {
	return s.clock.Alpha()
}
