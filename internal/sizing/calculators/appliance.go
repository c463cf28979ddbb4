package calculators

import (
	"github.com/nbr5410/load-planner/internal/sizing"
)

// Compile-time assertion that ApplianceCircuit implements the ApplianceCalculator interface.
var _ sizing.ApplianceCalculator = (*ApplianceCircuit)(nil)

// ApplianceCircuit sizes the dedicated circuit (TUE) of a specific-use appliance.
type ApplianceCircuit struct {
	sizer   sizing.CircuitSizer
	minimum sizing.Cable
}

type ApplianceCircuitOption func(*ApplianceCircuit)

// WithMinimumCable sets the smallest conductor allowed on a dedicated circuit.
// Non-positive values are ignored and the default is kept.
func WithMinimumCable(cable sizing.Cable) ApplianceCircuitOption {
	return func(a *ApplianceCircuit) {
		if cable > 0 {
			a.minimum = cable
		}
	}
}

// NewApplianceCircuit creates an ApplianceCircuit calculator enforcing a 2.5 mm² minimum conductor.
func NewApplianceCircuit(sizer sizing.CircuitSizer, opts ...ApplianceCircuitOption) *ApplianceCircuit {
	res := ApplianceCircuit{
		sizer:   sizer,
		minimum: sizing.DedicatedCircuitCable,
	}

	for _, opt := range opts {
		opt(&res)
	}

	return &res
}

func (a *ApplianceCircuit) Calculate(appliance sizing.Appliance) sizing.CircuitDetails {
	return a.sizer.Size(appliance.Power, float64(appliance.Voltage), a.minimum)
}
