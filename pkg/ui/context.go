package ui

import (
	"fmt"

	dockerrors "github.com/go-drift/dock/pkg/errors"
	"github.com/go-drift/dock/pkg/geometry"
	"github.com/go-drift/dock/pkg/input"
	"github.com/go-drift/dock/pkg/paint"
	"github.com/go-drift/dock/pkg/state"
	"github.com/go-drift/dock/pkg/style"
)

// Context owns everything a frame needs: persistent memory, the active
// style, this frame's input, the allocation tracker, and the two paint
// layers. One Context serves one window; it is not safe for concurrent
// use.
type Context struct {
	memory *state.Memory
	style  *style.Style

	in    input.State
	frame frameState
	out   Output

	background paint.Recorder
	foreground paint.Recorder

	frameCount int
}

// NewContext creates a Context with empty memory and the default style.
func NewContext() *Context {
	return &Context{
		memory: state.NewMemory(),
		style:  style.Default(),
	}
}

// Style returns the active style.
func (c *Context) Style() *style.Style {
	return c.style
}

// SetStyle replaces the active style. Passing nil restores the default.
func (c *Context) SetStyle(s *style.Style) {
	if s == nil {
		s = style.Default()
	}
	c.style = s
}

// Memory returns the persistent per-window state.
func (c *Context) Memory() *state.Memory {
	return c.memory
}

// Input returns this frame's input snapshot.
func (c *Context) Input() input.State {
	return c.in
}

// ScreenRect returns the full window area for this frame.
func (c *Context) ScreenRect() geometry.Rect {
	return c.frame.screenRect
}

// AvailableRect returns the window area not yet claimed by a panel.
func (c *Context) AvailableRect() geometry.Rect {
	return c.frame.availableRect
}

// UsedRect returns the union of the panel rectangles declared so far
// this frame.
func (c *Context) UsedRect() geometry.Rect {
	return c.frame.usedRect
}

// FrameCount returns the number of frames begun so far.
func (c *Context) FrameCount() int {
	return c.frameCount
}

// PanelAllocations returns the panels declared so far this frame, in
// declaration order. The slice is reused across frames; copy it to keep
// it past EndFrame.
func (c *Context) PanelAllocations() []PanelAllocation {
	return c.frame.allocations
}

// Cursor returns the cursor icon set so far this frame.
func (c *Context) Cursor() CursorIcon {
	return c.out.Cursor
}

// SetCursor sets the cursor icon the embedder should show.
func (c *Context) SetCursor(icon CursorIcon) {
	c.out.Cursor = icon
}

// BeginFrame starts a new frame with the given input. A drag whose
// button is no longer held is released here, before any panel runs, so
// a panel that disappeared while dragging cannot leave the drag slot
// occupied.
func (c *Context) BeginFrame(in input.State) {
	if !in.Pointer.Down {
		c.memory.StopDrag()
	}
	c.in = in
	c.frame.begin(in.ScreenRect)
	c.out = Output{}
	c.frameCount++
	c.background.Begin(in.ScreenRect.Size())
	c.foreground.Begin(in.ScreenRect.Size())
}

// EndFrame finishes the frame and returns its output. The background
// layer replays before the foreground layer, so foreground shapes can
// never be covered by panel frames.
func (c *Context) EndFrame() Output {
	c.out.Shapes = paint.Concat(c.background.End(), c.foreground.End())
	c.out.UsedRect = c.frame.usedRect
	return c.out
}

// Painter returns the background layer painter. Panel frames and
// content draw here.
func (c *Context) Painter() Painter {
	return Painter{rec: &c.background}
}

// ForegroundPainter returns the foreground layer painter. Resize
// handles draw here.
func (c *Context) ForegroundPainter() Painter {
	return Painter{rec: &c.foreground}
}

// AllocateLeftPanel claims the given rectangle for a left panel and
// shrinks the remaining area to its right. Left panels must be declared
// before the central panel; a late one is reported as a diagnostic and
// still allocated.
func (c *Context) AllocateLeftPanel(rect geometry.Rect) {
	if c.frame.centralClaimed {
		c.reportLayout("ui.AllocateLeftPanel", "left panel declared after the central panel")
	}
	c.frame.allocateLeft(rect)
}

// AllocateTopPanel claims the given rectangle for a top panel and
// shrinks the remaining area below it. Top panels must be declared
// before the central panel; a late one is reported as a diagnostic and
// still allocated.
func (c *Context) AllocateTopPanel(rect geometry.Rect) {
	if c.frame.centralClaimed {
		c.reportLayout("ui.AllocateTopPanel", "top panel declared after the central panel")
	}
	c.frame.allocateTop(rect)
}

// AllocateCentralPanel claims the remaining area for the central panel.
// Panics if a central panel was already declared this frame.
func (c *Context) AllocateCentralPanel(rect geometry.Rect) {
	c.frame.allocateCentral(rect)
}

func (c *Context) reportLayout(op, msg string) {
	dockerrors.Report(&dockerrors.Error{
		Op:   op,
		Kind: dockerrors.KindLayout,
		Err:  fmt.Errorf("%s (frame %d)", msg, c.frameCount),
	})
}
