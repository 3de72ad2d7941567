package ui

import (
	"github.com/go-drift/dock/pkg/geometry"
	"github.com/go-drift/dock/pkg/paint"
)

// Painter draws onto one of the context's layers. It is a small value;
// pass it around freely.
type Painter struct {
	rec *paint.Recorder
}

// RectFilled draws a filled rectangle.
func (p Painter) RectFilled(rect geometry.Rect, fill paint.Color) {
	p.rec.Rect(rect, fill, paint.Stroke{})
}

// Rect draws a rectangle with both fill and outline.
func (p Painter) Rect(rect geometry.Rect, fill paint.Color, stroke paint.Stroke) {
	p.rec.Rect(rect, fill, stroke)
}

// Line draws a line segment.
func (p Painter) Line(from, to geometry.Offset, stroke paint.Stroke) {
	p.rec.Line(from, to, stroke)
}

// Reserve claims a slot in the paint order to be filled later. Shapes
// set into the slot draw behind everything recorded after this call.
func (p Painter) Reserve() paint.ShapeID {
	return p.rec.Reserve()
}

// SetRect fills a reserved slot with a rectangle.
func (p Painter) SetRect(id paint.ShapeID, rect geometry.Rect, fill paint.Color, stroke paint.Stroke) {
	p.rec.SetRect(id, rect, fill, stroke)
}
