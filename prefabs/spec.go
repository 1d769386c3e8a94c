package prefabs

import (
	"fmt"

	"github.com/milk9111/jumpking/physics"
	"gopkg.in/yaml.v3"
)

// DefaultMaxTicksPerFrame bounds catch-up work after a long frame.
const DefaultMaxTicksPerFrame = 8

// LoadSpecOver reads filename and decodes it over base, so fields the file
// omits keep base's values.
func LoadSpecOver[T any](filename string, base T) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	spec, err := DecodeSpecOver(data, base)
	if err != nil {
		return zero, fmt.Errorf("prefabs: %s: %w", filename, err)
	}
	return spec, nil
}

// DecodeSpecOver decodes data over a copy of base.
func DecodeSpecOver[T any](data []byte, base T) (T, error) {
	var zero T
	if err := yaml.Unmarshal(data, &base); err != nil {
		return zero, fmt.Errorf("unmarshal: %w", err)
	}
	return base, nil
}

type ExtentSpec struct {
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

// PlayerSpec carries the player's size, its look and the simulation tuning.
type PlayerSpec struct {
	Name             string         `yaml:"name"`
	HalfExtent       ExtentSpec     `yaml:"half_extent"`
	Color            *YAMLColor     `yaml:"color"`
	MaxTicksPerFrame int            `yaml:"max_ticks_per_frame"`
	Tuning           physics.Tuning `yaml:"tuning"`
}

// DefaultPlayerSpec is what an empty player.yaml decodes to.
func DefaultPlayerSpec() PlayerSpec {
	return PlayerSpec{
		Name:             "player",
		HalfExtent:       ExtentSpec{W: 25, H: 25},
		MaxTicksPerFrame: DefaultMaxTicksPerFrame,
		Tuning:           physics.DefaultTuning(),
	}
}

func LoadPlayerSpec() (*PlayerSpec, error) {
	spec, err := LoadSpecOver("player.yaml", DefaultPlayerSpec())
	if err != nil {
		return nil, err
	}
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("prefabs: player.yaml: %w", err)
	}
	return &spec, nil
}

// ParsePlayerSpec decodes data over DefaultPlayerSpec, so omitted fields
// keep their defaults, and validates the result.
func ParsePlayerSpec(data []byte) (*PlayerSpec, error) {
	spec, err := DecodeSpecOver(data, DefaultPlayerSpec())
	if err != nil {
		return nil, err
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return &spec, nil
}

func (s *PlayerSpec) Validate() error {
	if s.MaxTicksPerFrame <= 0 {
		return fmt.Errorf("max_ticks_per_frame must be positive, got %d", s.MaxTicksPerFrame)
	}
	if _, err := physics.NewStore(physics.PlayerSpec{HalfExtent: s.Extent()}, nil); err != nil {
		return err
	}
	return s.Tuning.Validate()
}

// Extent returns the half extent as a physics vector.
func (s *PlayerSpec) Extent() physics.Vec {
	return physics.Vec{X: s.HalfExtent.W, Y: s.HalfExtent.H}
}
