package vista

import "time"

// Viewport owns the viewport Dimensions, the content size and zoom, and the
// Bounds derived from them. It is the only writer of those values.
type Viewport struct {
	dims    Dimensions
	content ContentSize
	zoom    float64
	bounds  Bounds

	resize  *Debouncer
	pending Dimensions

	handlers boundsHandlers
}

// NewViewport creates a Viewport for the given content, sampled at the
// initial dimensions. Raw resize signals are debounced by quiet.
func NewViewport(content ContentSize, dims Dimensions, quiet time.Duration) *Viewport {
	v := &Viewport{
		dims:    dims,
		content: content,
		zoom:    1.0,
		resize:  NewDebouncer(quiet),
	}
	v.bounds = ComputeBounds(v.dims, v.scaledContent())
	return v
}

// Dimensions returns the current (applied) viewport size.
func (v *Viewport) Dimensions() Dimensions { return v.dims }

// Content returns the unscaled content size.
func (v *Viewport) Content() ContentSize { return v.content }

// Zoom returns the content zoom factor.
func (v *Viewport) Zoom() float64 { return v.zoom }

// Bounds returns the current legal offset range.
func (v *Viewport) Bounds() Bounds { return v.bounds }

// OnBoundsChange registers fn to run whenever Bounds change.
func (v *Viewport) OnBoundsChange(fn func(Bounds)) CallbackHandle {
	return v.handlers.add(fn)
}

// Resize records a raw resize signal. The new size takes effect on the first
// Update at least one quiet period after the last Resize.
func (v *Viewport) Resize(width, height float64, now time.Time) {
	v.pending = Dimensions{Width: width, Height: height}
	v.resize.Signal(now)
}

// Update applies a pending resize once its quiet period has elapsed. It
// reports whether new dimensions were applied.
func (v *Viewport) Update(now time.Time) bool {
	if !v.resize.Poll(now) {
		return false
	}
	v.SetDimensions(v.pending)
	return true
}

// ResizePending reports whether a raw resize is waiting to be applied.
func (v *Viewport) ResizePending() bool {
	return v.resize.Pending()
}

// SetDimensions applies a viewport size immediately, bypassing the debounce.
// Use it for the initial sample at startup.
func (v *Viewport) SetDimensions(d Dimensions) {
	v.resize.Cancel()
	v.dims = d
	v.recompute()
}

// SetContentSize replaces the content size and recomputes Bounds.
func (v *Viewport) SetContentSize(c ContentSize) {
	v.content = c
	v.recompute()
}

// SetZoom sets the content zoom factor. Values ≤ 0 are ignored.
func (v *Viewport) SetZoom(zoom float64) {
	if zoom <= 0 {
		return
	}
	v.zoom = zoom
	v.recompute()
}

func (v *Viewport) scaledContent() ContentSize {
	return v.content.Scaled(v.zoom)
}

// recompute derives Bounds and publishes them if they changed.
func (v *Viewport) recompute() {
	b := ComputeBounds(v.dims, v.scaledContent())
	if b == v.bounds {
		return
	}
	v.bounds = b
	v.handlers.fire(b)
}
