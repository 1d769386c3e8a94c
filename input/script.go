package input

import (
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

// ScriptSource replays input computed by a tengo script. Before every frame
// the script sees `frame` (int) and `dt` (float), and it answers by setting
// the booleans `left`, `right` and `jump`, which start each frame false.
type ScriptSource struct {
	Tracker

	compiled *tengo.Compiled
	frame    int
	dt       float64
}

var scriptKeys = []struct {
	name string
	key  Key
}{
	{"left", Left},
	{"right", Right},
	{"jump", Jump},
}

// NewScriptSource compiles src. Every frame it produces lasts dt seconds.
func NewScriptSource(src []byte, dt float64) (*ScriptSource, error) {
	if dt <= 0 {
		return nil, fmt.Errorf("input: script frame delta must be positive, got %g", dt)
	}

	script := tengo.NewScript(src)
	_ = script.Add("frame", 0)
	_ = script.Add("dt", dt)
	for _, k := range scriptKeys {
		_ = script.Add(k.name, false)
	}
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("input: compile script: %w", err)
	}
	return &ScriptSource{compiled: compiled, dt: dt}, nil
}

// Advance runs the script for the next frame and updates key edges.
func (s *ScriptSource) Advance() error {
	if err := s.compiled.Set("frame", s.frame); err != nil {
		return fmt.Errorf("input: set frame: %w", err)
	}
	for _, k := range scriptKeys {
		if err := s.compiled.Set(k.name, false); err != nil {
			return fmt.Errorf("input: reset %s: %w", k.name, err)
		}
	}
	if err := s.compiled.Run(); err != nil {
		return fmt.Errorf("input: run script frame %d: %w", s.frame, err)
	}

	held := make([]Key, 0, len(scriptKeys))
	for _, k := range scriptKeys {
		if s.compiled.Get(k.name).Bool() {
			held = append(held, k.key)
		}
	}
	s.Tracker.Advance(s.dt, held...)
	s.frame++
	return nil
}

// Frame returns how many frames have been produced.
func (s *ScriptSource) Frame() int {
	return s.frame
}
