package levels

import (
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/milk9111/jumpking/physics"
	"gopkg.in/yaml.v3"
)

//go:embed *.yaml
var LevelsFS embed.FS

// Default is the level used when none is named.
const Default = "tower"

var ErrNoColliders = errors.New("levels: level has no colliders")

// Level is a static level descriptor.
type Level struct {
	Name      string     `yaml:"name"`
	Spawn     Point      `yaml:"spawn"`
	Colliders []Collider `yaml:"colliders"`
}

type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Center is a collider center. Z only orders drawing.
type Center struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

type Extent struct {
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

type Collider struct {
	Center     Center `yaml:"center"`
	HalfExtent Extent `yaml:"half_extent"`
}

// Load reads levels/<name>.yaml from disk when present, otherwise from the
// embedded levels. The extension is optional.
func Load(name string) (*Level, error) {
	clean := cleanLevelName(name)
	data, err := os.ReadFile(filepath.Join("levels", clean))
	if err != nil {
		data, err = LevelsFS.ReadFile(clean)
		if err != nil {
			return nil, fmt.Errorf("levels: load %s: %w", clean, err)
		}
	}

	lvl, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("levels: load %s: %w", clean, err)
	}
	if lvl.Name == "" {
		lvl.Name = strings.TrimSuffix(clean, filepath.Ext(clean))
	}
	return lvl, nil
}

// Parse decodes and validates a level descriptor.
func Parse(data []byte) (*Level, error) {
	var lvl Level
	if err := yaml.Unmarshal(data, &lvl); err != nil {
		return nil, fmt.Errorf("unmarshal level: %w", err)
	}
	if err := lvl.Validate(); err != nil {
		return nil, err
	}
	return &lvl, nil
}

// Validate rejects levels the physics store would refuse to build.
func (l *Level) Validate() error {
	if len(l.Colliders) == 0 {
		return ErrNoColliders
	}
	for i, spec := range l.ColliderSpecs() {
		if _, err := physics.NewStaticCollider(spec.Center, spec.HalfExtent, spec.Z); err != nil {
			return fmt.Errorf("levels: collider %d: %w", i, err)
		}
	}
	return nil
}

// ColliderSpecs converts the descriptor into physics records, in order.
func (l *Level) ColliderSpecs() []physics.ColliderSpec {
	specs := make([]physics.ColliderSpec, 0, len(l.Colliders))
	for _, c := range l.Colliders {
		specs = append(specs, physics.ColliderSpec{
			Center:     physics.Vec{X: c.Center.X, Y: c.Center.Y},
			HalfExtent: physics.Vec{X: c.HalfExtent.W, Y: c.HalfExtent.H},
			Z:          c.Center.Z,
		})
	}
	return specs
}

// SpawnPoint returns the player's start position.
func (l *Level) SpawnPoint() physics.Vec {
	return physics.Vec{X: l.Spawn.X, Y: l.Spawn.Y}
}

func cleanLevelName(name string) string {
	if name == "" {
		name = Default
	}
	s := filepath.ToSlash(name)
	if after, ok := strings.CutPrefix(s, "levels/"); ok {
		s = after
	}
	if filepath.Ext(s) == "" {
		s += ".yaml"
	}
	return s
}
