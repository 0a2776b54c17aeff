package vista

// EventType identifies a kind of engine event.
type EventType uint8

const (
	EventResize    EventType = iota // fires when debounced viewport dimensions are applied
	EventOffset                     // fires when the pan offset changes
	EventDragStart                  // fires when movement exceeds the drag dead zone
	EventDragEnd                    // fires when the pointer is released after dragging
	EventRegionHit                  // fires when a click lands in a region of the active scene
	EventOpen                       // fires when a selection is opened (replacing any previous one)
	EventClose                      // fires when the open selection is explicitly closed
	EventSequence                   // fires when the sequencer moves
	EventLaunch                     // fires when an open launch card is activated
	EventReload                     // fires after the story has been replaced
)

var eventNames = [...]string{
	EventResize:    "resize",
	EventOffset:    "offset",
	EventDragStart: "drag-start",
	EventDragEnd:   "drag-end",
	EventRegionHit: "region-hit",
	EventOpen:      "open",
	EventClose:     "close",
	EventSequence:  "sequence",
	EventLaunch:    "launch",
	EventReload:    "reload",
}

// String returns the event name used in logs and scripts.
func (t EventType) String() string {
	if int(t) < len(eventNames) {
		return eventNames[t]
	}
	return "unknown"
}

// Event carries the state relevant to one engine event. Fields not
// meaningful for Type are zero.
type Event struct {
	Type       EventType
	Dimensions Dimensions
	Bounds     Bounds
	Offset     Vec2
	// Point is the content-local click position (EventRegionHit).
	Point     Vec2
	RegionID  string
	State     SequencerState
	Selection Selection
	App       string
}

// EventStore is the interface for optional event bridges. When set on an
// Engine, every event is forwarded to it after scene-level callbacks ran.
type EventStore interface {
	EmitEvent(event Event)
}

type eventHandler struct {
	id    uint32
	event EventType
	fn    func(Event)
}

// eventRegistry holds engine-level callbacks in registration order.
type eventRegistry struct {
	list   []*eventHandler
	nextID uint32
}

func (r *eventRegistry) add(t EventType, fn func(Event)) CallbackHandle {
	r.nextID++
	id := r.nextID
	r.list = append(r.list, &eventHandler{id: id, event: t, fn: fn})
	return CallbackHandle{remove: func() { r.remove(id) }}
}

func (r *eventRegistry) remove(id uint32) {
	for i := range r.list {
		if r.list[i].id == id {
			r.list[i].fn = nil
			r.list = without(r.list, i)
			return
		}
	}
}

// On registers fn for events of type t.
func (e *Engine) On(t EventType, fn func(Event)) CallbackHandle {
	return e.handlers.add(t, fn)
}

// SetEventStore sets the optional event bridge.
func (e *Engine) SetEventStore(store EventStore) {
	e.store = store
}

// emit dispatches ev to callbacks, then the event store.
func (e *Engine) emit(ev Event) {
	for _, h := range e.handlers.list {
		if h.event == ev.Type && h.fn != nil {
			h.fn(ev)
		}
	}
	if e.debug {
		e.debugEvent(ev)
	}
	if e.store != nil {
		e.store.EmitEvent(ev)
	}
}
