// Package geometry provides the value types panel layout is computed in:
// points, sizes, rectangles, inclusive ranges, and edge insets.
package geometry

import "math"

// Offset represents a 2D point or vector in pixel coordinates.
type Offset struct {
	X float64
	Y float64
}

// Size represents width and height dimensions in pixels.
type Size struct {
	Width  float64
	Height float64
}

// Rect represents a rectangle using left, top, right, bottom coordinates.
type Rect struct {
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
}

// RectFromLTWH constructs a Rect from left, top, width, height values.
func RectFromLTWH(left, top, width, height float64) Rect {
	return Rect{
		Left:   left,
		Top:    top,
		Right:  left + width,
		Bottom: top + height,
	}
}

// EmptyRect returns the rectangle that contains nothing. Its union with any
// other rectangle is that rectangle unchanged, which makes it the identity
// value for accumulating covered areas.
func EmptyRect() Rect {
	return Rect{
		Left:   math.Inf(1),
		Top:    math.Inf(1),
		Right:  math.Inf(-1),
		Bottom: math.Inf(-1),
	}
}

// Width returns the width of the rectangle.
func (r Rect) Width() float64 {
	return r.Right - r.Left
}

// Height returns the height of the rectangle.
func (r Rect) Height() float64 {
	return r.Bottom - r.Top
}

// Size returns the size of the rectangle.
func (r Rect) Size() Size {
	return Size{Width: r.Width(), Height: r.Height()}
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Offset {
	return Offset{
		X: (r.Left + r.Right) * 0.5,
		Y: (r.Top + r.Bottom) * 0.5,
	}
}

// IsEmpty returns true if the rectangle has zero or negative area.
func (r Rect) IsEmpty() bool {
	return r.Right <= r.Left || r.Bottom <= r.Top
}

// Contains reports whether the point lies within the rectangle, edges
// included.
func (r Rect) Contains(p Offset) bool {
	return p.X >= r.Left && p.X <= r.Right && p.Y >= r.Top && p.Y <= r.Bottom
}

// ContainsY reports whether y lies within the rectangle's vertical span,
// edges included.
func (r Rect) ContainsY(y float64) bool {
	return y >= r.Top && y <= r.Bottom
}

// XRange returns the horizontal span as an inclusive Range.
func (r Rect) XRange() Range {
	return Range{Min: r.Left, Max: r.Right}
}

// YRange returns the vertical span as an inclusive Range.
func (r Rect) YRange() Range {
	return Range{Min: r.Top, Max: r.Bottom}
}

// Intersect returns the intersection of two rectangles.
// Returns empty rect if they don't overlap.
func (r Rect) Intersect(other Rect) Rect {
	left := math.Max(r.Left, other.Left)
	top := math.Max(r.Top, other.Top)
	right := math.Min(r.Right, other.Right)
	bottom := math.Min(r.Bottom, other.Bottom)
	if left >= right || top >= bottom {
		return Rect{} // Empty
	}
	return Rect{Left: left, Top: top, Right: right, Bottom: bottom}
}

// Union returns the smallest rect containing both r and other.
func (r Rect) Union(other Rect) Rect {
	return Rect{
		Left:   math.Min(r.Left, other.Left),
		Top:    math.Min(r.Top, other.Top),
		Right:  math.Max(r.Right, other.Right),
		Bottom: math.Max(r.Bottom, other.Bottom),
	}
}

// Translate returns a new rect offset by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	return Rect{
		Left:   r.Left + dx,
		Top:    r.Top + dy,
		Right:  r.Right + dx,
		Bottom: r.Bottom + dy,
	}
}
