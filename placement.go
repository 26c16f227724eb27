package grove

import (
	"github.com/yohamta/donburi/features/events"
)

// PlantRequest asks the world to create a tree.
type PlantRequest struct {
	Position Vec2
	Scale    float64
	// Frame is the world frame the request was made on.
	Frame uint64
}

// PlantEvent carries plant requests through the donburi world. The world
// subscribes to it and turns every request into a tree entity; other
// subscribers see the same requests.
var PlantEvent = events.NewEventType[PlantRequest]()

// Spawner turns rising edges of ActionPlant into plant requests.
type Spawner struct {
	// Scale is the uniform scale given to every planted tree.
	Scale float64
}

// Request returns a plant request when ActionPlant was just pressed and an
// actor exists. The request holds a copy of the actor's position, so the
// tree stays put when the actor moves on.
func (s Spawner) Request(in Input, actor *Transform) (PlantRequest, bool) {
	if !in.JustPressed.Has(ActionPlant) || actor == nil {
		return PlantRequest{}, false
	}
	return PlantRequest{Position: actor.Position, Scale: s.Scale}, true
}
