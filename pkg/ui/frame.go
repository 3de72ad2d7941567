package ui

import (
	"github.com/go-drift/dock/pkg/geometry"
	"github.com/go-drift/dock/pkg/style"
)

// ShowFramed runs contents inside the frame's margin and paints the
// decoration behind whatever the contents drew. The decoration rectangle
// is not known until the contents have claimed their space, so a paint
// slot is reserved up front and filled afterwards.
//
// Returns the decoration rectangle: the claimed content rect expanded by
// the margin. The parent region's claimed space grows to cover it.
func ShowFramed(r *Region, f style.Frame, contents func(*Region)) geometry.Rect {
	inner := r.maxRect.Shrink(f.Margin)
	slot := r.Painter().Reserve()

	content := r.child(inner)
	contents(content)

	outer := content.minRect.Expand(f.Margin)
	r.Painter().SetRect(slot, outer, f.Fill, f.Stroke)
	r.expandMin(outer)
	return outer
}
