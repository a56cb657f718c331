// Package deltav models ideal delta-v (Tsiolkovsky) as a function of loaded
// propellant for a fixed engine and dry mass.
package deltav

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// StandardGravity is g0 in m/s^2.
const StandardGravity = 9.81

// ErrInvalidParams is returned by Validate and Compute for physically meaningless inputs.
var ErrInvalidParams = errors.New("invalid delta-v parameters")

// Params describes one engine scenario.
type Params struct {
	Name            string  `yaml:"name"`
	ISP             float64 `yaml:"isp"`       // seconds
	ThrustKN        float64 `yaml:"thrust_kn"` // informational only
	DryMassKg       float64 `yaml:"dry_mass_kg"`
	MaxPropellantKg float64 `yaml:"max_propellant_kg"`
	Samples         int     `yaml:"samples"`
	G0              float64 `yaml:"g0"`
}

// Validate reports the first out-of-range field.
func (p Params) Validate() error {
	switch {
	case p.ISP <= 0:
		return fmt.Errorf("%w: %s: isp must be positive, got %g", ErrInvalidParams, p.Name, p.ISP)
	case p.DryMassKg <= 0:
		return fmt.Errorf("%w: %s: dry mass must be positive, got %g", ErrInvalidParams, p.Name, p.DryMassKg)
	case p.MaxPropellantKg < 0:
		return fmt.Errorf("%w: %s: max propellant must not be negative, got %g", ErrInvalidParams, p.Name, p.MaxPropellantKg)
	case p.Samples < 2:
		return fmt.Errorf("%w: %s: need at least 2 samples, got %d", ErrInvalidParams, p.Name, p.Samples)
	case p.G0 <= 0:
		return fmt.Errorf("%w: %s: g0 must be positive, got %g", ErrInvalidParams, p.Name, p.G0)
	}
	return nil
}

// DeltaV returns isp*g0*ln((dry+propellant)/dry) in m/s.
func DeltaV(isp, g0, dryMass, propellant float64) float64 {
	return isp * g0 * math.Log((dryMass+propellant)/dryMass)
}

// Sample is one point on a delta-v curve.
type Sample struct {
	PropellantKg float64
	DeltaV       float64 // m/s
}

// Curve is a named, propellant-ordered delta-v curve.
type Curve struct {
	Name    string
	Samples []Sample
}

// Compute evaluates p at Samples evenly spaced propellant masses over
// [0, MaxPropellantKg]. The last sample is exactly MaxPropellantKg.
func Compute(p Params) (Curve, error) {
	if err := p.Validate(); err != nil {
		return Curve{}, err
	}
	masses := floats.Span(make([]float64, p.Samples), 0, p.MaxPropellantKg)
	c := Curve{Name: p.Name, Samples: make([]Sample, len(masses))}
	for i, m := range masses {
		c.Samples[i] = Sample{PropellantKg: m, DeltaV: DeltaV(p.ISP, p.G0, p.DryMassKg, m)}
	}
	return c, nil
}

// Final returns the sample at maximum propellant load.
func (c Curve) Final() Sample {
	if len(c.Samples) == 0 {
		return Sample{}
	}
	return c.Samples[len(c.Samples)-1]
}

// MaxKmPerSec is the delta-v at the final sample in km/s.
func (c Curve) MaxKmPerSec() float64 {
	return c.Final().DeltaV / 1000
}
