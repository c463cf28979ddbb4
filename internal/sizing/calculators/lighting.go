package calculators

import (
	"math"

	"github.com/nbr5410/load-planner/internal/sizing"
)

const (
	DefaultLightingBaseAreaM2  = 6.0
	DefaultLightingStepAreaM2  = 4.0
	DefaultLightingBasePowerVA = 100.0
	DefaultLightingStepPowerVA = 60.0
)

// Compile-time assertion that Lighting implements the RoomCalculator interface.
var _ sizing.RoomCalculator = (*Lighting)(nil)

// Lighting computes the lighting points of a room from its area.
// One point of 100 VA covers the first 6 m² and every additional 4 m², complete or not,
// adds one point of 60 VA.
type Lighting struct {
	baseAreaM2  float64
	stepAreaM2  float64
	basePowerVA float64
	stepPowerVA float64
}

type LightingOption func(*Lighting)

// WithBasePowerVA sets the power of the first lighting point.
func WithBasePowerVA(va float64) LightingOption {
	return func(l *Lighting) {
		if va >= 0 {
			l.basePowerVA = va
		}
	}
}

// WithStepPowerVA sets the power added by each additional lighting point.
func WithStepPowerVA(va float64) LightingOption {
	return func(l *Lighting) {
		if va >= 0 {
			l.stepPowerVA = va
		}
	}
}

func NewLighting(opts ...LightingOption) *Lighting {
	res := Lighting{
		baseAreaM2:  DefaultLightingBaseAreaM2,
		stepAreaM2:  DefaultLightingStepAreaM2,
		basePowerVA: DefaultLightingBasePowerVA,
		stepPowerVA: DefaultLightingStepPowerVA,
	}

	for _, opt := range opts {
		opt(&res)
	}

	return &res
}

func (l *Lighting) Name() string {
	return "Lighting"
}

// Calculate returns no points for a room without area.
func (l *Lighting) Calculate(room sizing.Room) (sizing.CalculationDetails, error) {
	if room.Area <= 0 {
		return sizing.CalculationDetails{}, nil
	}

	extra := math.Max(0, room.Area-l.baseAreaM2)
	increments := int(math.Ceil(extra / l.stepAreaM2))

	return sizing.CalculationDetails{
		Quantity: 1 + increments,
		PowerVA:  l.basePowerVA + float64(increments)*l.stepPowerVA,
	}, nil
}
