package docktest

import (
	"github.com/go-drift/dock/pkg/geometry"
	"github.com/go-drift/dock/pkg/paint"
)

// Op is one replayed drawing operation.
type Op struct {
	// Name is "clear", "rect", or "line".
	Name string
	// Rect is set for "rect" ops.
	Rect geometry.Rect
	// From and To are set for "line" ops.
	From geometry.Offset
	To   geometry.Offset
	// Color is the paint or clear color.
	Color paint.Color
	// Width is the stroke width.
	Width float64
	// Style says whether the op fills or strokes.
	Style paint.PaintStyle
}

// Ops replays a display list and returns its operations in paint order.
func Ops(list *paint.List) []Op {
	c := &opCanvas{size: list.Size()}
	list.Replay(c)
	return c.ops
}

// Lines replays a display list and returns only its line operations.
func Lines(list *paint.List) []Op {
	var lines []Op
	for _, op := range Ops(list) {
		if op.Name == "line" {
			lines = append(lines, op)
		}
	}
	return lines
}

// FillRects replays a display list and returns only its filled
// rectangles.
func FillRects(list *paint.List) []Op {
	var rects []Op
	for _, op := range Ops(list) {
		if op.Name == "rect" && op.Style == paint.PaintStyleFill {
			rects = append(rects, op)
		}
	}
	return rects
}

// opCanvas implements paint.Canvas by recording every call as an Op.
type opCanvas struct {
	ops  []Op
	size geometry.Size
}

func (c *opCanvas) Save()                  {}
func (c *opCanvas) Restore()               {}
func (c *opCanvas) ClipRect(geometry.Rect) {}

func (c *opCanvas) Clear(color paint.Color) {
	c.ops = append(c.ops, Op{Name: "clear", Color: color})
}

func (c *opCanvas) DrawRect(rect geometry.Rect, p paint.Paint) {
	c.ops = append(c.ops, Op{
		Name:  "rect",
		Rect:  rect,
		Color: p.Color,
		Width: p.StrokeWidth,
		Style: p.Style,
	})
}

func (c *opCanvas) DrawLine(from, to geometry.Offset, p paint.Paint) {
	c.ops = append(c.ops, Op{
		Name:  "line",
		From:  from,
		To:    to,
		Color: p.Color,
		Width: p.StrokeWidth,
		Style: p.Style,
	})
}

func (c *opCanvas) Size() geometry.Size {
	return c.size
}
