package ui

import (
	"github.com/go-drift/dock/pkg/geometry"
	"github.com/go-drift/dock/pkg/state"
)

// Region is the rectangle a panel hands its content callback. Content
// allocates space top to bottom inside MaxRect; MinRect grows to cover
// what was actually claimed.
type Region struct {
	ctx     *Context
	id      state.ID
	maxRect geometry.Rect
	minRect geometry.Rect
	cursor  geometry.Offset
}

// NewRegion creates a region spanning maxRect. The minimum rectangle
// starts as a zero-size rect at the top-left corner.
func NewRegion(ctx *Context, id state.ID, maxRect geometry.Rect) *Region {
	return &Region{
		ctx:     ctx,
		id:      id,
		maxRect: maxRect,
		minRect: geometry.RectFromLTWH(maxRect.Left, maxRect.Top, 0, 0),
		cursor:  geometry.Offset{X: maxRect.Left, Y: maxRect.Top},
	}
}

// Context returns the owning context.
func (r *Region) Context() *Context {
	return r.ctx
}

// ID returns the region's identity.
func (r *Region) ID() state.ID {
	return r.id
}

// MaxRect returns the most space the region may occupy.
func (r *Region) MaxRect() geometry.Rect {
	return r.maxRect
}

// MinRect returns the space the region's content has claimed so far.
func (r *Region) MinRect() geometry.Rect {
	return r.minRect
}

// Painter returns the background painter for drawing content.
func (r *Region) Painter() Painter {
	return r.ctx.Painter()
}

// Allocate claims a rectangle of the given size at the current cursor
// and advances the cursor below it, plus item spacing.
func (r *Region) Allocate(size geometry.Size) geometry.Rect {
	rect := geometry.RectFromLTWH(r.cursor.X, r.cursor.Y, size.Width, size.Height)
	r.cursor.Y = rect.Bottom + r.ctx.Style().Spacing.ItemSpacing.Height
	r.expandMin(rect)
	return rect
}

// SetMinWidth widens the claimed space to at least the given width.
func (r *Region) SetMinWidth(width float64) {
	if right := r.minRect.Left + width; right > r.minRect.Right {
		r.minRect.Right = right
	}
}

// SetMinHeight extends the claimed space to at least the given height.
func (r *Region) SetMinHeight(height float64) {
	if bottom := r.minRect.Top + height; bottom > r.minRect.Bottom {
		r.minRect.Bottom = bottom
	}
}

// ExpandToIncludeRect grows the claimed space to cover rect.
func (r *Region) ExpandToIncludeRect(rect geometry.Rect) {
	r.expandMin(rect)
}

func (r *Region) expandMin(rect geometry.Rect) {
	r.minRect = r.minRect.Union(rect)
}

// child creates a region for nested content inside maxRect, sharing the
// parent's context and identity.
func (r *Region) child(maxRect geometry.Rect) *Region {
	return NewRegion(r.ctx, r.id, maxRect)
}
