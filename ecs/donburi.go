package ecs

import (
	"github.com/phanxgames/sprig"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// InteractionEventType is the Donburi event type for sprig interaction events.
// Subscribe to this in your ECS systems to receive pointer, drag, focus, key
// and screen-switch events.
var InteractionEventType = events.NewEventType[sprig.InteractionEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world.
// Interaction events are published to InteractionEventType and can be
// consumed with events.Subscribe and ProcessEvents.
func NewDonburiSink(world donburi.World) sprig.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitEvent(event sprig.InteractionEvent) {
	InteractionEventType.Publish(s.world, event)
}
