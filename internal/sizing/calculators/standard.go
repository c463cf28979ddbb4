package calculators

import "github.com/nbr5410/load-planner/internal/sizing"

// Standard returns the residential calculators with the default tables.
// The same circuit sizer serves the main circuit and every appliance circuit.
func Standard(applianceOpts ...ApplianceCircuitOption) sizing.Calculators {
	circuits := NewCircuit()
	return sizing.Calculators{
		Lighting:   NewLighting(),
		Outlets:    NewOutlets(),
		Appliances: NewApplianceCircuit(circuits, applianceOpts...),
		Circuits:   circuits,
		Demand:     NewDemandSchedule(),
	}
}
