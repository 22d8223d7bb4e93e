package ecs

import (
	"github.com/phanxgames/lastleaf/drift"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// DriftEventType is the Donburi event type for drift engine events.
var DriftEventType = events.NewEventType[drift.Event]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EventStore backed by a Donburi world. Events are
// queued on DriftEventType and delivered by ProcessEvents.
func NewDonburiStore(world donburi.World) drift.EventStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event drift.Event) {
	DriftEventType.Publish(s.world, event)
}
