package ui

import (
	"fmt"

	"github.com/go-drift/dock/pkg/geometry"
	"github.com/go-drift/dock/pkg/paint"
)

// CursorIcon is the mouse cursor the embedder should show.
type CursorIcon int

const (
	// CursorDefault is the ordinary arrow cursor.
	CursorDefault CursorIcon = iota

	// CursorPointingHand indicates something clickable.
	CursorPointingHand

	// CursorResizeHorizontal indicates a horizontal resize handle.
	CursorResizeHorizontal

	// CursorResizeVertical indicates a vertical resize handle.
	CursorResizeVertical
)

// String returns a human-readable representation of the cursor icon.
func (c CursorIcon) String() string {
	switch c {
	case CursorDefault:
		return "default"
	case CursorPointingHand:
		return "pointing_hand"
	case CursorResizeHorizontal:
		return "resize_horizontal"
	case CursorResizeVertical:
		return "resize_vertical"
	default:
		return fmt.Sprintf("CursorIcon(%d)", int(c))
	}
}

// Output is what one frame hands back to the embedder: the shapes to
// paint, the cursor to show, and the area the frame actually covered.
type Output struct {
	// Shapes is the frame's complete paint list, background layer first,
	// foreground layer after it.
	Shapes *paint.List

	// Cursor is the icon the window should show.
	Cursor CursorIcon

	// UsedRect is the union of every rectangle panels covered this
	// frame. Empty if nothing was declared.
	UsedRect geometry.Rect
}
