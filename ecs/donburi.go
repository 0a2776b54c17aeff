package ecs

import (
	"github.com/phanxgames/vista"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// EngineEventType is the Donburi event type for vista engine events.
var EngineEventType = events.NewEventType[vista.Event]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EventStore backed by a Donburi world. Events
// are queued on EngineEventType and delivered by ProcessEvents.
func NewDonburiStore(world donburi.World) vista.EventStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event vista.Event) {
	EngineEventType.Publish(s.world, event)
}
