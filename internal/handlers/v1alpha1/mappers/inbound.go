package mappers

import (
	"github.com/google/uuid"

	"github.com/nbr5410/load-planner/api/v1alpha1"
	"github.com/nbr5410/load-planner/internal/plan"
	"github.com/nbr5410/load-planner/internal/sizing"
)

func derefUUID(id *uuid.UUID) uuid.UUID {
	if id == nil {
		return uuid.Nil
	}
	return *id
}

func RoomFromApi(room v1alpha1.Room) sizing.Room {
	return sizing.Room{
		ID:        derefUUID(room.Id),
		Name:      room.Name,
		Type:      sizing.RoomType(room.Type),
		Area:      room.Area,
		Perimeter: room.Perimeter,
	}
}

func ApplianceFromApi(appliance v1alpha1.Appliance) sizing.Appliance {
	return sizing.Appliance{
		ID:      derefUUID(appliance.Id),
		Name:    appliance.Name,
		Power:   appliance.Power,
		Voltage: sizing.Voltage(appliance.Voltage),
	}
}

// PlanFromApi builds a plan from the request body. Missing ids are generated.
func PlanFromApi(resource v1alpha1.Plan) (plan.Plan, error) {
	rooms := make([]sizing.Room, 0, len(resource.Rooms))
	for _, room := range resource.Rooms {
		rooms = append(rooms, RoomFromApi(room))
	}
	appliances := make([]sizing.Appliance, 0, len(resource.Appliances))
	for _, appliance := range resource.Appliances {
		appliances = append(appliances, ApplianceFromApi(appliance))
	}
	return plan.Build(rooms, appliances)
}
