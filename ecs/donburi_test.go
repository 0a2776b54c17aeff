package ecs

import (
	"testing"

	"github.com/phanxgames/vista"

	"github.com/yohamta/donburi"
)

func TestNewDonburiStore(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)
	if store == nil {
		t.Fatal("NewDonburiStore returned nil")
	}
}

func TestDonburiStore_EmitEvent(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)

	var received []vista.Event
	EngineEventType.Subscribe(world, func(w donburi.World, e vista.Event) {
		received = append(received, e)
	})

	store.EmitEvent(vista.Event{Type: vista.EventRegionHit, RegionID: "r1", Point: vista.Vec2{X: 60, Y: 60}})
	store.EmitEvent(vista.Event{Type: vista.EventLaunch, App: "planner"})

	if len(received) != 0 {
		t.Fatalf("events delivered before ProcessEvents: %d", len(received))
	}
	EngineEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}
	if received[0].Type != vista.EventRegionHit || received[0].RegionID != "r1" {
		t.Errorf("event 0: %+v", received[0])
	}
	if received[1].Type != vista.EventLaunch || received[1].App != "planner" {
		t.Errorf("event 1: %+v", received[1])
	}
}

func TestDonburiStore_EngineBridge(t *testing.T) {
	story, err := vista.ParseStory([]byte(`
content: {width: 2000, height: 1000}
scenes:
  - key: a
    annotations: [{key: a0}, {key: a1}]
    regions: [{id: r1, x: 0, y: 0, width: 100, height: 100}]
`))
	if err != nil {
		t.Fatal(err)
	}
	eng, err := vista.NewEngine(story, vista.EngineConfig{Viewport: vista.Dimensions{Width: 800, Height: 600}})
	if err != nil {
		t.Fatal(err)
	}
	world := donburi.NewWorld()
	eng.SetEventStore(NewDonburiStore(world))

	var types []vista.EventType
	EngineEventType.Subscribe(world, func(w donburi.World, e vista.Event) {
		types = append(types, e.Type)
	})

	eng.Click(vista.Vec2{X: 50, Y: 50})
	eng.Next()
	EngineEventType.ProcessEvents(world)

	want := []vista.EventType{vista.EventRegionHit, vista.EventOpen, vista.EventSequence, vista.EventOpen}
	if len(types) != len(want) {
		t.Fatalf("types = %v, want %v", types, want)
	}
	for i := range want {
		if types[i] != want[i] {
			t.Errorf("types[%d] = %v, want %v", i, types[i], want[i])
		}
	}
}
