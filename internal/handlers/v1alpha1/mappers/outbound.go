package mappers

import (
	"github.com/nbr5410/load-planner/api/v1alpha1"
	"github.com/nbr5410/load-planner/internal/plan"
	"github.com/nbr5410/load-planner/pkg/version"
)

func PlanToApi(p plan.Plan) v1alpha1.Plan {
	resource := v1alpha1.Plan{
		Rooms:      make([]v1alpha1.Room, 0, p.Rooms.Len()),
		Appliances: make([]v1alpha1.Appliance, 0, p.Appliances.Len()),
	}
	for _, room := range p.Rooms.Items() {
		id := room.ID
		resource.Rooms = append(resource.Rooms, v1alpha1.Room{
			Id:        &id,
			Name:      room.Name,
			Type:      v1alpha1.RoomType(room.Type),
			Area:      room.Area,
			Perimeter: room.Perimeter,
		})
	}
	for _, appliance := range p.Appliances.Items() {
		id := appliance.ID
		resource.Appliances = append(resource.Appliances, v1alpha1.Appliance{
			Id:      &id,
			Name:    appliance.Name,
			Power:   appliance.Power,
			Voltage: int(appliance.Voltage),
		})
	}
	return resource
}

func InfoToApi(info version.Info) v1alpha1.Info {
	return v1alpha1.Info{
		GitCommit:   info.GitCommit,
		VersionName: info.GitVersion,
	}
}
