package deltav

import (
	"bytes"
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed presets.yaml
var presetsYAML []byte

// Presets is the structure of presets.yaml.
// Every key must be listed here; unknown keys are a parse error.
type Presets struct {
	Scenarios []Params `yaml:"scenarios"`
}

// ParsePresets decodes a presets document with strict field checking and
// validates every scenario. A missing g0 defaults to StandardGravity.
func ParsePresets(data []byte) (Presets, error) {
	var presets Presets
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&presets); err != nil {
		return Presets{}, fmt.Errorf("parsing presets: %w", err)
	}
	if len(presets.Scenarios) == 0 {
		return Presets{}, fmt.Errorf("%w: no scenarios", ErrInvalidParams)
	}
	for i := range presets.Scenarios {
		if presets.Scenarios[i].G0 == 0 {
			presets.Scenarios[i].G0 = StandardGravity
		}
		if err := presets.Scenarios[i].Validate(); err != nil {
			return Presets{}, err
		}
	}
	return presets, nil
}

// DefaultPresets returns the built-in scenarios.
func DefaultPresets() (Presets, error) {
	return ParsePresets(presetsYAML)
}

// Curves computes one curve per scenario, in file order.
func (p Presets) Curves() ([]Curve, error) {
	curves := make([]Curve, 0, len(p.Scenarios))
	for _, s := range p.Scenarios {
		c, err := Compute(s)
		if err != nil {
			return nil, err
		}
		curves = append(curves, c)
	}
	return curves, nil
}
