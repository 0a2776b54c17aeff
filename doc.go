// Package vista is the navigation engine behind a pannable scene viewer: a
// large content surface (image or video frame) shown through a smaller
// viewport, dragged around by the user, with clickable rectangular regions
// and a guided sequence of annotations.
//
// The engine computes state only. It never draws; a host (see package
// vista/host for an [Ebitengine] one) feeds it resize, pointer and key events
// and renders the [Snapshot] it exposes.
//
// # Quick start
//
//	story, err := vista.LoadStoryFile("story.yaml")
//	if err != nil {
//		log.Fatal(err)
//	}
//	eng, err := vista.NewEngine(story, vista.EngineConfig{
//		Viewport: vista.Dimensions{Width: 1280, Height: 720},
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// In the host loop:
//	eng.Resize(w, h, time.Now())      // raw, debounced
//	eng.PointerDown(vista.Vec2{X: x, Y: y})
//	eng.PointerMove(vista.Vec2{X: x, Y: y})
//	eng.PointerUp(vista.Vec2{X: x, Y: y}) // click if it never left the dead zone
//	eng.Next()                           // right arrow
//	eng.Update(time.Now())
//	snap := eng.Snapshot()
//
// # Components
//
// [Viewport] owns the viewport [Dimensions] and derives [Bounds] from the
// [ContentSize]: Left = min(0, viewport − content), Right = 0, and the same
// vertically. Resizes are debounced by a [Debouncer].
//
// [DragTracker] owns the pan offset. It is clamped to Bounds on every
// update and re-clamped in place (never recentred) when Bounds change.
//
// [HitTest] returns the regions containing a content-local point in
// declaration order; the engine opens the first.
//
// [Sequencer] walks scenes and annotations: Next wraps from the end to the
// start, Prev is rejected at the start.
//
// [SelectionStore] holds at most one open card. Open replaces; it does not
// emit a close for the replaced card.
//
// Events are delivered to callbacks registered with [Engine.On] and to an
// optional [EventStore] (see package vista/ecs for a [Donburi] bridge).
//
// [Ebitengine]: https://ebitengine.org
// [Donburi]: https://github.com/yohamta/donburi
package vista
