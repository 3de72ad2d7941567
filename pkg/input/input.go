// Package input carries the per-frame pointer and window state that the
// layout context consumes. The embedder fills a State once per frame and
// passes it to Context.BeginFrame.
package input

import "github.com/go-drift/dock/pkg/geometry"

// Pointer describes the primary pointing device for one frame.
type Pointer struct {
	// Position is the pointer position in window coordinates. Only
	// meaningful when Known is true.
	Position geometry.Offset

	// Known reports whether the pointer is over the window at all.
	// False when the cursor has left the window or the platform has no
	// pointer.
	Known bool

	// Pressed is true only on the frame a button went down.
	Pressed bool

	// Down is true on every frame a button is held, the press frame
	// included.
	Down bool
}

// LatestPos returns the pointer position and whether one is known.
func (p Pointer) LatestPos() (geometry.Offset, bool) {
	if !p.Known {
		return geometry.Offset{}, false
	}
	return p.Position, true
}

// State is the complete input snapshot for one frame.
type State struct {
	// ScreenRect is the full window area in window coordinates.
	ScreenRect geometry.Rect

	// Pointer is the pointing device state for this frame.
	Pointer Pointer
}
