package calculators

import (
	"math"

	"github.com/nbr5410/load-planner/internal/sizing"
)

const (
	// BathroomOutletPowerVA is the power of the single outlet near the washbasin.
	BathroomOutletPowerVA = 600.0

	// WetPerimeterPerOutlet is the wall length served by one outlet in kitchens and service areas.
	WetPerimeterPerOutlet = 3.5
	// WetHighPowerOutlets is the number of wet area outlets rated at WetHighPowerVA.
	WetHighPowerOutlets = 3
	WetHighPowerVA      = 600.0
	WetLowPowerVA       = 100.0

	// DryPerimeterPerOutlet is the wall length served by one outlet in living rooms and bedrooms.
	DryPerimeterPerOutlet = 5.0
	DryOutletPowerVA      = 100.0
)

// Compile-time assertion that Outlets implements the RoomCalculator interface.
var _ sizing.RoomCalculator = (*Outlets)(nil)

// Outlets computes the general-purpose outlets (TUGs) of a room from its type and perimeter.
type Outlets struct{}

func NewOutlets() *Outlets {
	return &Outlets{}
}

func (o *Outlets) Name() string {
	return "General-purpose outlets"
}

// Calculate returns no outlets for a room without perimeter.
func (o *Outlets) Calculate(room sizing.Room) (sizing.CalculationDetails, error) {
	if room.Perimeter <= 0 {
		return sizing.CalculationDetails{}, nil
	}

	switch room.Type {
	case sizing.RoomTypeBathroom:
		return sizing.CalculationDetails{Quantity: 1, PowerVA: BathroomOutletPowerVA}, nil
	case sizing.RoomTypeWet:
		quantity := int(math.Ceil(room.Perimeter / WetPerimeterPerOutlet))
		high := min(quantity, WetHighPowerOutlets)
		low := max(0, quantity-WetHighPowerOutlets)
		return sizing.CalculationDetails{
			Quantity: quantity,
			PowerVA:  float64(high)*WetHighPowerVA + float64(low)*WetLowPowerVA,
		}, nil
	case sizing.RoomTypeDry:
		quantity := max(1, int(math.Ceil(room.Perimeter/DryPerimeterPerOutlet)))
		return sizing.CalculationDetails{
			Quantity: quantity,
			PowerVA:  float64(quantity) * DryOutletPowerVA,
		}, nil
	default:
		return sizing.CalculationDetails{}, sizing.NewErrUnknownRoomType(room.Type)
	}
}
