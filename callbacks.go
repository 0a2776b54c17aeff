package vista

// --- Callback lists ---

type boundsHandler struct {
	id uint32
	fn func(Bounds)
}

type offsetHandler struct {
	id uint32
	fn func(Vec2)
}

// boundsHandlers is an ordered, removable list of Bounds subscribers.
type boundsHandlers struct {
	list   []*boundsHandler
	nextID uint32
}

func (h *boundsHandlers) add(fn func(Bounds)) CallbackHandle {
	h.nextID++
	id := h.nextID
	h.list = append(h.list, &boundsHandler{id: id, fn: fn})
	return CallbackHandle{remove: func() { h.remove(id) }}
}

func (h *boundsHandlers) remove(id uint32) {
	for i := range h.list {
		if h.list[i].id == id {
			h.list[i].fn = nil
			h.list = without(h.list, i)
			return
		}
	}
}

func (h *boundsHandlers) fire(b Bounds) {
	for _, e := range h.list {
		if e.fn != nil {
			e.fn(b)
		}
	}
}

// offsetHandlers is an ordered, removable list of Offset subscribers.
type offsetHandlers struct {
	list   []*offsetHandler
	nextID uint32
}

func (h *offsetHandlers) add(fn func(Vec2)) CallbackHandle {
	h.nextID++
	id := h.nextID
	h.list = append(h.list, &offsetHandler{id: id, fn: fn})
	return CallbackHandle{remove: func() { h.remove(id) }}
}

func (h *offsetHandlers) remove(id uint32) {
	for i := range h.list {
		if h.list[i].id == id {
			h.list[i].fn = nil
			h.list = without(h.list, i)
			return
		}
	}
}

func (h *offsetHandlers) fire(v Vec2) {
	for _, e := range h.list {
		if e.fn != nil {
			e.fn(v)
		}
	}
}

// without returns a fresh slice lacking list[i]. A dispatch already ranging
// over the old slice keeps its view; removed entries have a nil fn and are
// skipped.
func without[T any](list []*T, i int) []*T {
	out := make([]*T, 0, len(list)-1)
	out = append(out, list[:i]...)
	return append(out, list[i+1:]...)
}

// CallbackHandle allows removing a registered callback.
type CallbackHandle struct {
	remove func()
}

// Remove unregisters this callback so it no longer fires. Calling Remove on
// the zero handle or more than once is harmless.
func (h CallbackHandle) Remove() {
	if h.remove != nil {
		h.remove()
	}
}
