// Package paint provides the drawing primitives panels are painted with:
// colors, paints, strokes, a Canvas interface, and a recordable display
// list that replays onto any Canvas.
package paint

import "fmt"

// PaintStyle describes how shapes are filled or stroked.
type PaintStyle int

const (
	// PaintStyleFill fills the shape interior.
	PaintStyleFill PaintStyle = iota

	// PaintStyleStroke draws only the outline.
	PaintStyleStroke
)

// String returns a human-readable representation of the paint style.
func (s PaintStyle) String() string {
	switch s {
	case PaintStyleFill:
		return "fill"
	case PaintStyleStroke:
		return "stroke"
	default:
		return fmt.Sprintf("PaintStyle(%d)", int(s))
	}
}

// Paint describes how to draw a shape on the canvas.
type Paint struct {
	Color       Color
	Style       PaintStyle // Fill or stroke
	StrokeWidth float64    // Width of stroke in pixels
}

// Stroke describes the width and color of an outline or line.
type Stroke struct {
	Width float64
	Color Color
}

// IsEmpty reports whether drawing this stroke has any effect.
func (s Stroke) IsEmpty() bool {
	return s.Width <= 0 || !s.Color.IsVisible()
}
