package plan

import (
	"github.com/google/uuid"

	"github.com/nbr5410/load-planner/internal/sizing"
)

// Plan is the editable floor plan: its rooms and specific-use appliances.
type Plan struct {
	Rooms      Collection[sizing.Room]      `json:"rooms"`
	Appliances Collection[sizing.Appliance] `json:"appliances"`
}

func New(rooms []sizing.Room, appliances []sizing.Appliance) Plan {
	return Plan{
		Rooms:      NewCollection(rooms...),
		Appliances: NewCollection(appliances...),
	}
}

// Build assembles a plan from decoded items. Items without an identifier get a new one and
// duplicate identifiers are rejected with *ErrMalformedPlan.
func Build(rooms []sizing.Room, appliances []sizing.Appliance) (Plan, error) {
	p := Plan{}
	for _, room := range rooms {
		if room.ID == uuid.Nil {
			room.ID = uuid.New()
		}
		next, err := p.Rooms.Add(room)
		if err != nil {
			return Plan{}, NewErrMalformedPlan("room %q: %v", room.Name, err)
		}
		p.Rooms = next
	}
	for _, appliance := range appliances {
		if appliance.ID == uuid.Nil {
			appliance.ID = uuid.New()
		}
		next, err := p.Appliances.Add(appliance)
		if err != nil {
			return Plan{}, NewErrMalformedPlan("appliance %q: %v", appliance.Name, err)
		}
		p.Appliances = next
	}
	return p, nil
}

// NewRoom returns a blank dry room with a fresh identifier.
func NewRoom(name string) sizing.Room {
	return sizing.Room{ID: uuid.New(), Name: name, Type: sizing.RoomTypeDry}
}

// NewAppliance returns a 220 V appliance without power and with a fresh identifier.
func NewAppliance(name string) sizing.Appliance {
	return sizing.Appliance{ID: uuid.New(), Name: name, Voltage: sizing.Voltage220}
}

// Submittable returns the rooms with both area and perimeter set, and every appliance.
// Rooms still being drawn are left out of the calculation.
func (p Plan) Submittable() ([]sizing.Room, []sizing.Appliance) {
	rooms := make([]sizing.Room, 0, p.Rooms.Len())
	for _, room := range p.Rooms.Items() {
		if room.Area > 0 && room.Perimeter > 0 {
			rooms = append(rooms, room)
		}
	}
	return rooms, p.Appliances.Items()
}
