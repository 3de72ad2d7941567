// Package ui provides the per-frame layout context panels are declared
// against.
//
// This package defines the frame loop primitives: Context, Region, and
// Output. A Context owns everything that survives between frames (the
// persistent memory, the active style) and everything scoped to the
// current frame (input, the shrinking available rectangle, the paint
// layers).
//
// # Frame Loop
//
// The embedder drives one frame at a time:
//
//	ctx := ui.NewContext()
//	for running {
//	    ctx.BeginFrame(input.State{ScreenRect: window, Pointer: pointer})
//	    // declare panels here, edge panels first, central last
//	    out := ctx.EndFrame()
//	    // replay out.Shapes, apply out.Cursor
//	}
//
// Everything between BeginFrame and EndFrame happens on one goroutine;
// Context is not safe for concurrent use.
//
// # Space Allocation
//
// Panels claim window space through AllocateLeftPanel, AllocateTopPanel,
// and AllocateCentralPanel. Each edge allocation shrinks AvailableRect,
// so later panels see only what is left. Declaration order is therefore
// meaningful: a left panel declared after the central panel has nothing
// left to claim and is reported as a layout diagnostic. Declaring two
// central panels in one frame panics.
//
// # Paint Layers
//
// The context records two layers. Panel decorations and content draw on
// the background layer; resize handles draw on the foreground layer,
// which replays last so later panels cannot cover them. Within the
// background layer, ShowFramed reserves a slot before running content so
// a panel's decoration can be sized after its content yet paint behind
// it.
package ui
