package paint

import "github.com/go-drift/dock/pkg/geometry"

// Canvas records or renders drawing commands.
type Canvas interface {
	// Save pushes the current clip state.
	Save()

	// Restore pops the most recent clip state.
	Restore()

	// ClipRect restricts future drawing to the given rectangle.
	ClipRect(rect geometry.Rect)

	// Clear fills the entire canvas with the given color.
	Clear(color Color)

	// DrawRect draws a rectangle with the provided paint.
	DrawRect(rect geometry.Rect, paint Paint)

	// DrawLine draws a line segment with the provided paint.
	DrawLine(start, end geometry.Offset, paint Paint)

	// Size returns the size of the canvas in pixels.
	Size() geometry.Size
}
