package sizing

import "fmt"

// DefaultMainVoltage is the supply voltage of the main service circuit (two-phase 220 V).
const DefaultMainVoltage = Voltage220

// Calculators groups the rules the Engine is built from.
type Calculators struct {
	Lighting   RoomCalculator
	Outlets    RoomCalculator
	Appliances ApplianceCalculator
	Circuits   CircuitSizer
	Demand     DemandFactor
}

// Engine assembles room, appliance and demand calculations into a CalculationResults report.
// An Engine holds no mutable state and is safe for concurrent use.
type Engine struct {
	calculators Calculators
	mainVoltage Voltage
}

// EngineOption is a functional option for configuring an Engine.
type EngineOption func(*Engine)

// WithMainVoltage sets the voltage used to size the main service circuit.
// Non-positive values are ignored and the default is kept.
func WithMainVoltage(v Voltage) EngineOption {
	return func(e *Engine) {
		if v > 0 {
			e.mainVoltage = v
		}
	}
}

// NewEngine creates an Engine from the given calculators.
// NewEngine panics if any calculator is missing.
func NewEngine(calculators Calculators, opts ...EngineOption) *Engine {
	if calculators.Lighting == nil || calculators.Outlets == nil || calculators.Appliances == nil ||
		calculators.Circuits == nil || calculators.Demand == nil {
		panic("sizing: all calculators must be set")
	}

	e := &Engine{
		calculators: calculators,
		mainVoltage: DefaultMainVoltage,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// MainVoltage returns the voltage of the main service circuit.
func (e *Engine) MainVoltage() Voltage {
	return e.mainVoltage
}

// Run computes the full report for rooms and appliances.
// Results keep the input order. Invalid input is rejected as a whole and no partial report is returned.
func (e *Engine) Run(rooms []Room, appliances []Appliance) (*CalculationResults, error) {
	if err := ValidateInput(rooms, appliances); err != nil {
		return nil, err
	}

	var summary Summary

	roomResults := make([]RoomResult, 0, len(rooms))
	for _, room := range rooms {
		lighting, err := e.calculators.Lighting.Calculate(room)
		if err != nil {
			return nil, fmt.Errorf("%s for room %q: %w", e.calculators.Lighting.Name(), room.Name, err)
		}
		tugs, err := e.calculators.Outlets.Calculate(room)
		if err != nil {
			return nil, fmt.Errorf("%s for room %q: %w", e.calculators.Outlets.Name(), room.Name, err)
		}

		summary.TotalLightingVA += lighting.PowerVA
		summary.TotalTugsVA += tugs.PowerVA

		roomResults = append(roomResults, RoomResult{
			ID:       room.ID,
			Name:     room.Name,
			Lighting: lighting,
			Tugs:     tugs,
		})
	}

	applianceResults := make([]ApplianceResult, 0, len(appliances))
	for _, appliance := range appliances {
		summary.TotalTuesVA += appliance.Power
		applianceResults = append(applianceResults, ApplianceResult{
			ID:      appliance.ID,
			Name:    appliance.Name,
			Circuit: e.calculators.Appliances.Calculate(appliance),
		})
	}

	summary.TotalInstalledVA = summary.TotalLightingVA + summary.TotalTugsVA + summary.TotalTuesVA

	// dedicated appliance circuits carry a demand factor of 1
	summary.DemandedPowerVA = e.calculators.Demand.Apply(summary.TotalLightingVA+summary.TotalTugsVA) + summary.TotalTuesVA
	summary.MainCircuit = e.calculators.Circuits.Size(summary.DemandedPowerVA, float64(e.mainVoltage), MinimumCable)

	return &CalculationResults{
		Rooms:      roomResults,
		Appliances: applianceResults,
		Summary:    summary,
	}, nil
}
