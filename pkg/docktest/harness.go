// Package docktest provides a harness for driving layout frames with
// synthetic pointer input, plus helpers for inspecting the recorded
// paint output. It exists so panel behavior can be tested without a
// real window.
package docktest

import (
	"github.com/go-drift/dock/pkg/geometry"
	"github.com/go-drift/dock/pkg/input"
	"github.com/go-drift/dock/pkg/ui"
)

const (
	// DefaultWidth is the default window width for tests.
	DefaultWidth = 800
	// DefaultHeight is the default window height for tests.
	DefaultHeight = 600
)

// Harness drives a Context one frame at a time with synthetic pointer
// input. Button state behaves like a real button: Press marks the press
// edge for the next frame only, while the held state lasts until
// Release.
type Harness struct {
	// Ctx is the context under test.
	Ctx *ui.Context
	// Screen is the window rectangle passed to every frame.
	Screen geometry.Rect

	pointer      geometry.Offset
	pointerKnown bool
	down         bool
	pressed      bool
}

// New creates a harness with a default 800x600 window.
func New() *Harness {
	return &Harness{
		Ctx:    ui.NewContext(),
		Screen: geometry.RectFromLTWH(0, 0, DefaultWidth, DefaultHeight),
	}
}

// MovePointerTo places the pointer at the given position.
func (h *Harness) MovePointerTo(pos geometry.Offset) {
	h.pointer = pos
	h.pointerKnown = true
}

// Press pushes the button down at the current position. The next Frame
// sees both the press edge and the held state.
func (h *Harness) Press() {
	h.pressed = true
	h.down = true
}

// Release lets go of the button.
func (h *Harness) Release() {
	h.down = false
	h.pressed = false
}

// RemovePointer moves the pointer off the window.
func (h *Harness) RemovePointer() {
	h.pointerKnown = false
}

// Frame runs one frame: BeginFrame with the current input, the build
// callback, then EndFrame.
func (h *Harness) Frame(build func(*ui.Context)) ui.Output {
	in := input.State{
		ScreenRect: h.Screen,
		Pointer: input.Pointer{
			Position: h.pointer,
			Known:    h.pointerKnown,
			Pressed:  h.pressed,
			Down:     h.down,
		},
	}
	// The press edge lasts one frame; the held state lasts until Release.
	h.pressed = false

	h.Ctx.BeginFrame(in)
	if build != nil {
		build(h.Ctx)
	}
	return h.Ctx.EndFrame()
}
