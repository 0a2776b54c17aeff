package vista

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// panAnim holds active pan tweens for offset X and Y.
type panAnim struct {
	tweenX *gween.Tween
	tweenY *gween.Tween
	doneX  bool
	doneY  bool
}

// DragTracker holds the pan offset of the content surface and keeps it
// inside the current Bounds. It is the only writer of the offset.
//
// During a gesture the published offset is baseline + cumulative delta,
// clamped. The baseline is the offset confirmed by the last EndDrag.
type DragTracker struct {
	bounds   Bounds
	offset   Vec2
	baseline Vec2

	dragging bool
	start    Vec2

	pan *panAnim

	handlers offsetHandlers
}

// NewDragTracker creates a tracker at offset (0,0) constrained to bounds.
func NewDragTracker(bounds Bounds) *DragTracker {
	return &DragTracker{bounds: bounds}
}

// Offset returns the current published offset.
func (t *DragTracker) Offset() Vec2 { return t.offset }

// Bounds returns the bounds the tracker currently clamps to.
func (t *DragTracker) Bounds() Bounds { return t.bounds }

// Dragging reports whether a gesture is in progress.
func (t *DragTracker) Dragging() bool { return t.dragging }

// Panning reports whether an animated pan is in progress.
func (t *DragTracker) Panning() bool { return t.pan != nil }

// OnOffsetChange registers fn to run whenever the offset changes.
func (t *DragTracker) OnOffsetChange(fn func(Vec2)) CallbackHandle {
	return t.handlers.add(fn)
}

// BeginDrag records the gesture start point. The offset is not changed. Any
// animated pan is cancelled where it stands.
func (t *DragTracker) BeginDrag(pointer Vec2) {
	t.pan = nil
	t.baseline = t.offset
	t.start = pointer
	t.dragging = true
}

// UpdateDrag proposes baseline + delta, where delta is cumulative since
// BeginDrag, and publishes it clamped to the bounds. Ignored when no gesture
// is in progress.
func (t *DragTracker) UpdateDrag(delta Vec2) {
	if !t.dragging {
		return
	}
	t.set(t.baseline.Add(delta))
}

// DragTo is UpdateDrag with the delta measured from the gesture start to
// pointer.
func (t *DragTracker) DragTo(pointer Vec2) {
	t.UpdateDrag(pointer.Sub(t.start))
}

// EndDrag commits the clamped offset as the new baseline and returns it.
func (t *DragTracker) EndDrag() Vec2 {
	t.dragging = false
	t.baseline = t.offset
	return t.offset
}

// SetBounds replaces the bounds and clamps the offset in place. The content
// is only moved when the old offset is no longer legal.
func (t *DragTracker) SetBounds(b Bounds) {
	t.bounds = b
	t.baseline = b.Clamp(t.baseline)
	t.set(t.offset)
}

// SetOffset moves to p (clamped) immediately and makes it the baseline.
func (t *DragTracker) SetOffset(p Vec2) {
	t.pan = nil
	t.set(p)
	t.baseline = t.offset
}

// PanTo animates the offset toward target over duration seconds. The target
// is clamped up front and every intermediate step is clamped again, so a
// bounds change mid-pan cannot carry the content out of range. A
// non-positive duration jumps immediately.
func (t *DragTracker) PanTo(target Vec2, duration float32, easeFn ease.TweenFunc) {
	target = t.bounds.Clamp(target)
	if duration <= 0 {
		t.SetOffset(target)
		return
	}
	if easeFn == nil {
		easeFn = ease.OutQuad
	}
	t.pan = &panAnim{
		tweenX: gween.New(float32(t.offset.X), float32(target.X), duration, easeFn),
		tweenY: gween.New(float32(t.offset.Y), float32(target.Y), duration, easeFn),
	}
}

// Advance steps an animated pan by dt seconds. No-op while dragging or when
// no pan is active.
func (t *DragTracker) Advance(dt float32) {
	if t.pan == nil || t.dragging {
		return
	}
	next := t.offset
	if !t.pan.doneX {
		val, done := t.pan.tweenX.Update(dt)
		next.X = float64(val)
		t.pan.doneX = done
	}
	if !t.pan.doneY {
		val, done := t.pan.tweenY.Update(dt)
		next.Y = float64(val)
		t.pan.doneY = done
	}
	if t.pan.doneX && t.pan.doneY {
		t.pan = nil
	}
	t.set(next)
	t.baseline = t.offset
}

// set clamps p and publishes it if it differs from the current offset.
func (t *DragTracker) set(p Vec2) {
	p = t.bounds.Clamp(p)
	if p == t.offset {
		return
	}
	t.offset = p
	t.handlers.fire(p)
}
