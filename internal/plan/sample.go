package plan

import (
	"github.com/google/uuid"

	"github.com/nbr5410/load-planner/internal/sizing"
)

// Default returns a two-bedroom apartment with an electric shower.
func Default() Plan {
	return New(
		[]sizing.Room{
			{ID: uuid.New(), Name: "Living/Dining Room", Type: sizing.RoomTypeDry, Area: 20, Perimeter: 18},
			{ID: uuid.New(), Name: "Kitchen", Type: sizing.RoomTypeWet, Area: 10, Perimeter: 13},
			{ID: uuid.New(), Name: "Service Area", Type: sizing.RoomTypeWet, Area: 4, Perimeter: 8},
			{ID: uuid.New(), Name: "Bedroom 1", Type: sizing.RoomTypeDry, Area: 12, Perimeter: 14},
			{ID: uuid.New(), Name: "Bedroom 2", Type: sizing.RoomTypeDry, Area: 9, Perimeter: 12},
			{ID: uuid.New(), Name: "Bathroom", Type: sizing.RoomTypeBathroom, Area: 3.5, Perimeter: 7.5},
		},
		[]sizing.Appliance{
			{ID: uuid.New(), Name: "Electric shower", Power: 5500, Voltage: sizing.Voltage220},
		},
	)
}
