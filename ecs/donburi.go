package ecs

import (
	"github.com/phanxgames/firework"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// BurstEventType is the Donburi event type for firework bursts.
var BurstEventType = events.NewEventType[firework.BurstEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world. Bursts are
// queued on BurstEventType and delivered by ProcessEvents.
func NewDonburiSink(world donburi.World) firework.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitBurst(event firework.BurstEvent) {
	BurstEventType.Publish(s.world, event)
}
