package sizing

import (
	"fmt"

	"github.com/google/uuid"
)

// RoomType classifies a room for outlet sizing purposes.
type RoomType string

const (
	// RoomTypeDry covers living rooms and bedrooms.
	RoomTypeDry RoomType = "DRY"
	// RoomTypeWet covers kitchens, pantries and service areas.
	RoomTypeWet RoomType = "WET"
	// RoomTypeBathroom covers bathrooms.
	RoomTypeBathroom RoomType = "BATHROOM"
)

// Valid reports whether t is one of the known room types.
func (t RoomType) Valid() bool {
	switch t {
	case RoomTypeDry, RoomTypeWet, RoomTypeBathroom:
		return true
	}
	return false
}

// Label returns a human readable description of the room type.
func (t RoomType) Label() string {
	switch t {
	case RoomTypeDry:
		return "Dry area (living room, bedroom)"
	case RoomTypeWet:
		return "Wet area (kitchen, pantry)"
	case RoomTypeBathroom:
		return "Bathroom"
	}
	return string(t)
}

// Voltage is a standard supply voltage.
type Voltage int

const (
	Voltage127 Voltage = 127
	Voltage220 Voltage = 220
)

// Valid reports whether v is a supported supply voltage.
func (v Voltage) Valid() bool {
	return v == Voltage127 || v == Voltage220
}

// Cable is a conductor cross-section in mm².
type Cable float64

const (
	// MinimumCable is the smallest conductor in the catalog.
	MinimumCable Cable = 1.5
	// DedicatedCircuitCable is the smallest conductor allowed on a dedicated appliance circuit.
	DedicatedCircuitCable Cable = 2.5
)

func (c Cable) String() string {
	return fmt.Sprintf("%.1f mm²", float64(c))
}

const (
	// CableNotApplicable is the cable label of an unused circuit.
	CableNotApplicable = "N/A"
	// CableOverCatalog is the cable label of a circuit whose current exceeds the catalog.
	CableOverCatalog = "above 16.0 mm² (consult a specialist)"
)

// Room is a single room of the floor plan.
// Area (m²) and perimeter (m) are bounded to 1 000 000 and appliance power (W) to 10 000 000,
// which keeps every point count and breaker rating within int range.
type Room struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Type      RoomType  `json:"type" validate:"room_type"`
	Area      float64   `json:"area" validate:"finite,gte=0,lte=1000000"`
	Perimeter float64   `json:"perimeter" validate:"finite,gte=0,lte=1000000"`
}

func (r Room) Identifier() uuid.UUID {
	return r.ID
}

// Appliance is a specific-use load which requires its own dedicated circuit.
type Appliance struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Power   float64   `json:"power" validate:"finite,gte=0,lte=10000000"`
	Voltage Voltage   `json:"voltage" validate:"voltage"`
}

func (a Appliance) Identifier() uuid.UUID {
	return a.ID
}

// CalculationDetails is a quantity of points together with their power.
type CalculationDetails struct {
	Quantity int     `json:"quantity"`
	PowerVA  float64 `json:"powerVA"`
}

// CircuitDetails describes a sized circuit.
// A circuit with no power has zero current, no cable and no breaker.
type CircuitDetails struct {
	PowerVA  float64 `json:"powerVA"`
	CurrentA float64 `json:"currentA"`
	CableMM2 string  `json:"cableMM2"`
	BreakerA int     `json:"breakerA"`
	// OverCatalog is set when the current exceeds the cable catalog or the standard breaker series.
	OverCatalog bool `json:"overCatalog,omitempty"`
}

// NoCircuit returns the details of an unused circuit.
func NoCircuit() CircuitDetails {
	return CircuitDetails{CableMM2: CableNotApplicable}
}

type RoomResult struct {
	ID       uuid.UUID          `json:"id"`
	Name     string             `json:"name"`
	Lighting CalculationDetails `json:"lighting"`
	Tugs     CalculationDetails `json:"tugs"`
}

type ApplianceResult struct {
	ID      uuid.UUID      `json:"id"`
	Name    string         `json:"name"`
	Circuit CircuitDetails `json:"circuit"`
}

type Summary struct {
	TotalLightingVA  float64        `json:"totalLightingVA"`
	TotalTugsVA      float64        `json:"totalTugsVA"`
	TotalTuesVA      float64        `json:"totalTuesVA"`
	TotalInstalledVA float64        `json:"totalInstalledVA"`
	DemandedPowerVA  float64        `json:"demandedPowerVA"`
	MainCircuit      CircuitDetails `json:"mainCircuit"`
}

// CalculationResults is the report produced by one Engine run.
type CalculationResults struct {
	Rooms      []RoomResult      `json:"rooms"`
	Appliances []ApplianceResult `json:"appliances"`
	Summary    Summary           `json:"summary"`
}

// RoomCalculator derives one category of points (lighting, outlets) from a room.
type RoomCalculator interface {
	// Name returns the human-readable name of this calculator.
	Name() string
	// Calculate returns the quantity and power required by the room.
	Calculate(room Room) (CalculationDetails, error)
}

// CircuitSizer sizes a circuit for the given power and voltage.
type CircuitSizer interface {
	Size(powerVA float64, voltage float64, minimum Cable) CircuitDetails
}

// ApplianceCalculator sizes the dedicated circuit of an appliance.
type ApplianceCalculator interface {
	Calculate(appliance Appliance) CircuitDetails
}

// DemandFactor applies a diversity factor to an installed power.
type DemandFactor interface {
	Apply(powerVA float64) float64
}
