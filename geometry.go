package vista

import "math"

// Vec2 is a 2D vector used for positions, offsets, deltas, and sizes
// throughout the API.
type Vec2 struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Dimensions is the size of the viewport in screen pixels.
type Dimensions struct {
	Width, Height float64
}

// Center returns the viewport center (centerX, centerY).
func (d Dimensions) Center() Vec2 {
	return Vec2{d.Width / 2, d.Height / 2}
}

// ContentSize is the size of the pannable content surface.
type ContentSize struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Scaled returns the content size multiplied by zoom. A non-positive zoom
// is treated as 1.
func (c ContentSize) Scaled(zoom float64) ContentSize {
	if zoom <= 0 {
		return c
	}
	return ContentSize{c.Width * zoom, c.Height * zoom}
}

// Bounds is the legal range of pan offsets. Right and Bottom are always 0:
// the content's top-left corner never moves right of or below the
// viewport's top-left corner.
type Bounds struct {
	Left, Top, Right, Bottom float64
}

// ComputeBounds derives the drag bounds for content c shown in a viewport of
// size d. When the content fits inside the viewport on an axis, that axis
// collapses to 0.
func ComputeBounds(d Dimensions, c ContentSize) Bounds {
	return Bounds{
		Left:   math.Min(0, d.Width-c.Width),
		Top:    math.Min(0, d.Height-c.Height),
		Right:  0,
		Bottom: 0,
	}
}

// Clamp restricts p component-wise into b.
func (b Bounds) Clamp(p Vec2) Vec2 {
	return Vec2{
		X: clamp(p.X, b.Left, b.Right),
		Y: clamp(p.Y, b.Top, b.Bottom),
	}
}

// Contains reports whether p lies within b, edges included.
func (b Bounds) Contains(p Vec2) bool {
	return p.X >= b.Left && p.X <= b.Right && p.Y >= b.Top && p.Y <= b.Bottom
}

// IsPoint reports whether b has collapsed to a single offset, which happens
// when the content fits inside the viewport on both axes.
func (b Bounds) IsPoint() bool {
	return b.Left == b.Right && b.Top == b.Bottom
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}
