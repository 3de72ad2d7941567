package panel

import (
	"testing"

	"github.com/go-drift/dock/pkg/docktest"
	"github.com/go-drift/dock/pkg/geometry"
	"github.com/go-drift/dock/pkg/paint"
	"github.com/go-drift/dock/pkg/state"
	"github.com/go-drift/dock/pkg/ui"
)

// fillWidth makes side panel content claim the panel's full width, so
// the panel rect tracks the laid-out width instead of hugging content.
func fillWidth(r *ui.Region) {
	r.SetMinWidth(r.MaxRect().Width())
}

func TestSidePanelDefaultWidth(t *testing.T) {
	h := docktest.New()

	var resp Response
	h.Frame(func(ctx *ui.Context) {
		resp = Left("explorer").Show(ctx, fillWidth)
	})

	want := geometry.Rect{Left: 0, Top: 0, Right: 200, Bottom: 600}
	if resp.Rect != want {
		t.Errorf("Rect = %+v, want %+v", resp.Rect, want)
	}
	if got := h.Ctx.AvailableRect().Left; got != 200 {
		t.Errorf("AvailableRect.Left = %v, want 200", got)
	}
}

func TestSidePanelWidthHugsContent(t *testing.T) {
	h := docktest.New()

	var resp Response
	h.Frame(func(ctx *ui.Context) {
		resp = Left("explorer").Show(ctx, func(r *ui.Region) {
			r.Allocate(geometry.Size{Width: 60, Height: 18})
		})
	})

	// 60 content plus the default 8-per-side horizontal margin.
	if resp.Rect.Width() != 76 {
		t.Errorf("Rect.Width() = %v, want 76", resp.Rect.Width())
	}
	// Full height regardless of content height.
	if resp.Rect.Top != 0 || resp.Rect.Bottom != 600 {
		t.Errorf("Rect = %+v, want full height", resp.Rect)
	}
}

func TestSidePanelWidthPersistsAcrossFrames(t *testing.T) {
	h := docktest.New()

	h.Frame(func(ctx *ui.Context) {
		Left("explorer").WithDefaultWidth(250).Show(ctx, fillWidth)
	})

	// The persisted width wins over a different default.
	var resp Response
	h.Frame(func(ctx *ui.Context) {
		resp = Left("explorer").WithDefaultWidth(300).Show(ctx, fillWidth)
	})
	if resp.Rect.Width() != 250 {
		t.Errorf("persisted width = %v, want 250", resp.Rect.Width())
	}
}

func TestSidePanelPersistedWidthClamped(t *testing.T) {
	h := docktest.New()

	h.Frame(func(ctx *ui.Context) {
		Left("explorer").WithDefaultWidth(250).Show(ctx, fillWidth)
	})

	// A tighter max applies to the persisted width on the next frame.
	var resp Response
	h.Frame(func(ctx *ui.Context) {
		resp = Left("explorer").WithMaxWidth(150).Show(ctx, fillWidth)
	})
	if resp.Rect.Width() != 150 {
		t.Errorf("clamped width = %v, want 150", resp.Rect.Width())
	}
}

func TestSidePanelDragResizes(t *testing.T) {
	h := docktest.New()
	show := func(ctx *ui.Context) Response {
		return Left("explorer").Show(ctx, fillWidth)
	}

	var resp Response
	h.Frame(func(ctx *ui.Context) { resp = show(ctx) })

	// Press on the right edge.
	h.MovePointerTo(geometry.Offset{X: 200, Y: 300})
	h.Press()
	h.Frame(func(ctx *ui.Context) { resp = show(ctx) })
	if resp.Rect.Right != 200 {
		t.Errorf("width should not change on the press frame, got %v", resp.Rect.Right)
	}

	// Drag right with the button held.
	h.MovePointerTo(geometry.Offset{X: 250, Y: 300})
	out := h.Frame(func(ctx *ui.Context) { resp = show(ctx) })
	if resp.Rect.Right != 250 {
		t.Errorf("dragged width = %v, want 250", resp.Rect.Right)
	}
	if out.Cursor != ui.CursorResizeHorizontal {
		t.Errorf("cursor while dragging = %v, want resize_horizontal", out.Cursor)
	}

	// Release far from the edge: the dragged width sticks.
	h.Release()
	h.MovePointerTo(geometry.Offset{X: 500, Y: 300})
	out = h.Frame(func(ctx *ui.Context) { resp = show(ctx) })
	if resp.Rect.Right != 250 {
		t.Errorf("width after release = %v, want 250", resp.Rect.Right)
	}
	if out.Cursor != ui.CursorDefault {
		t.Errorf("cursor after release = %v, want default", out.Cursor)
	}
}

func TestSidePanelDragClampedToMinWidth(t *testing.T) {
	h := docktest.New()
	show := func(ctx *ui.Context) Response {
		return Left("explorer").Show(ctx, fillWidth)
	}

	var resp Response
	h.Frame(func(ctx *ui.Context) { resp = show(ctx) })

	h.MovePointerTo(geometry.Offset{X: 200, Y: 300})
	h.Press()
	h.Frame(func(ctx *ui.Context) { resp = show(ctx) })

	// Drag far left of the minimum.
	h.MovePointerTo(geometry.Offset{X: 10, Y: 300})
	h.Frame(func(ctx *ui.Context) { resp = show(ctx) })
	if resp.Rect.Right != 96 {
		t.Errorf("width = %v, want min width 96", resp.Rect.Right)
	}
}

func TestSidePanelDragClampedToMaxWidth(t *testing.T) {
	h := docktest.New()
	show := func(ctx *ui.Context) Response {
		return Left("explorer").WithMaxWidth(300).Show(ctx, fillWidth)
	}

	var resp Response
	h.Frame(func(ctx *ui.Context) { resp = show(ctx) })

	h.MovePointerTo(geometry.Offset{X: 200, Y: 300})
	h.Press()
	h.Frame(func(ctx *ui.Context) { resp = show(ctx) })

	h.MovePointerTo(geometry.Offset{X: 500, Y: 300})
	h.Frame(func(ctx *ui.Context) { resp = show(ctx) })
	if resp.Rect.Right != 300 {
		t.Errorf("width = %v, want max width 300", resp.Rect.Right)
	}
}

func TestSidePanelHoverShowsHandle(t *testing.T) {
	h := docktest.New()
	show := func(ctx *ui.Context) {
		Left("explorer").Show(ctx, fillWidth)
	}

	h.Frame(func(ctx *ui.Context) { show(ctx) })

	// Within grab range of the right edge.
	h.MovePointerTo(geometry.Offset{X: 198, Y: 300})
	out := h.Frame(func(ctx *ui.Context) { show(ctx) })

	lines := docktest.Lines(out.Shapes)
	if len(lines) != 1 {
		t.Fatalf("expected 1 handle line, got %d", len(lines))
	}
	line := lines[0]
	if line.From.X != 200 || line.To.X != 200 {
		t.Errorf("handle at x=%v..%v, want 200", line.From.X, line.To.X)
	}
	if line.From.Y != 0 || line.To.Y != 600 {
		t.Errorf("handle spans y=%v..%v, want 0..600", line.From.Y, line.To.Y)
	}
	if line.Color != paint.Gray(150) {
		t.Errorf("hover handle color = %#x, want hovered stroke", uint32(line.Color))
	}
	if out.Cursor != ui.CursorResizeHorizontal {
		t.Errorf("cursor = %v, want resize_horizontal", out.Cursor)
	}
}

func TestSidePanelActiveHandleWhileDragging(t *testing.T) {
	h := docktest.New()
	show := func(ctx *ui.Context) {
		Left("explorer").Show(ctx, fillWidth)
	}

	h.Frame(func(ctx *ui.Context) { show(ctx) })
	h.MovePointerTo(geometry.Offset{X: 200, Y: 300})
	h.Press()
	h.Frame(func(ctx *ui.Context) { show(ctx) })

	h.MovePointerTo(geometry.Offset{X: 260, Y: 300})
	out := h.Frame(func(ctx *ui.Context) { show(ctx) })

	lines := docktest.Lines(out.Shapes)
	if len(lines) != 1 {
		t.Fatalf("expected 1 handle line, got %d", len(lines))
	}
	if lines[0].Color != paint.ColorWhite {
		t.Errorf("active handle color = %#x, want active stroke", uint32(lines[0].Color))
	}
	if lines[0].From.X != 260 {
		t.Errorf("handle x = %v, want dragged edge 260", lines[0].From.X)
	}
}

func TestSidePanelNoHandleWhenPointerFar(t *testing.T) {
	h := docktest.New()
	show := func(ctx *ui.Context) {
		Left("explorer").Show(ctx, fillWidth)
	}

	h.Frame(func(ctx *ui.Context) { show(ctx) })

	h.MovePointerTo(geometry.Offset{X: 400, Y: 300})
	out := h.Frame(func(ctx *ui.Context) { show(ctx) })
	if lines := docktest.Lines(out.Shapes); len(lines) != 0 {
		t.Errorf("expected no handle, got %d lines", len(lines))
	}
	if out.Cursor != ui.CursorDefault {
		t.Errorf("cursor = %v, want default", out.Cursor)
	}
}

func TestSidePanelHoverNeedsVerticalOverlap(t *testing.T) {
	h := docktest.New()
	show := func(ctx *ui.Context) {
		Left("explorer").Show(ctx, fillWidth)
	}
	h.Frame(func(ctx *ui.Context) { show(ctx) })

	// Right x, but below the panel.
	h.MovePointerTo(geometry.Offset{X: 200, Y: 700})
	out := h.Frame(func(ctx *ui.Context) { show(ctx) })
	if lines := docktest.Lines(out.Shapes); len(lines) != 0 {
		t.Errorf("expected no handle outside the panel's y range, got %d lines", len(lines))
	}
}

func TestSidePanelNotResizable(t *testing.T) {
	h := docktest.New()
	show := func(ctx *ui.Context) Response {
		return Left("explorer").WithResizable(false).Show(ctx, fillWidth)
	}

	var resp Response
	h.Frame(func(ctx *ui.Context) { resp = show(ctx) })

	h.MovePointerTo(geometry.Offset{X: 200, Y: 300})
	h.Press()
	out := h.Frame(func(ctx *ui.Context) { resp = show(ctx) })
	if out.Cursor != ui.CursorDefault {
		t.Errorf("cursor = %v, want default for non-resizable panel", out.Cursor)
	}
	if lines := docktest.Lines(out.Shapes); len(lines) != 0 {
		t.Errorf("non-resizable panel should draw no handle, got %d lines", len(lines))
	}

	h.MovePointerTo(geometry.Offset{X: 300, Y: 300})
	h.Frame(func(ctx *ui.Context) { resp = show(ctx) })
	if resp.Rect.Right != 200 {
		t.Errorf("width = %v, want unchanged 200", resp.Rect.Right)
	}
	if _, dragging := h.Ctx.Memory().DragOwner(); dragging {
		t.Error("non-resizable panel should never claim the drag slot")
	}
}

func TestDragSlotIsExclusive(t *testing.T) {
	h := docktest.New()
	var respA, respB Response
	build := func(ctx *ui.Context) {
		// A is capped so its edge stops at 200 while the pointer keeps going.
		respA = Left("a").WithMaxWidth(200).Show(ctx, fillWidth)
		respB = Left("b").Show(ctx, fillWidth)
	}
	aResize := state.NewID("a").With("__resize")
	bResize := state.NewID("b").With("__resize")

	h.Frame(build)
	if respA.Rect.Right != 200 || respB.Rect.Right != 400 {
		t.Fatalf("setup: A=%+v B=%+v", respA.Rect, respB.Rect)
	}

	// Claim the drag on A's edge.
	h.MovePointerTo(geometry.Offset{X: 200, Y: 300})
	h.Press()
	h.Frame(build)
	if !h.Ctx.Memory().IsDragOwner(aResize) {
		t.Fatal("A should own the drag after pressing its edge")
	}

	// Drag to B's edge with the button still held. B sees a hover but no
	// fresh press, so it must not steal the slot.
	h.MovePointerTo(geometry.Offset{X: 400, Y: 300})
	h.Frame(build)
	if !h.Ctx.Memory().IsDragOwner(aResize) {
		t.Error("A should keep the drag while the button is held")
	}
	if h.Ctx.Memory().IsDragOwner(bResize) {
		t.Error("B must not claim the drag without a fresh press")
	}
	if respA.Rect.Right != 200 {
		t.Errorf("A width = %v, want clamped 200", respA.Rect.Right)
	}
	if respB.Rect != (geometry.Rect{Left: 200, Top: 0, Right: 400, Bottom: 600}) {
		t.Errorf("B rect = %+v, want unchanged", respB.Rect)
	}

	// Release, then a fresh press on B's edge hands the slot to B.
	h.Release()
	h.Frame(build)
	if _, dragging := h.Ctx.Memory().DragOwner(); dragging {
		t.Fatal("drag should be released after the button goes up")
	}

	h.Press()
	h.Frame(build)
	if !h.Ctx.Memory().IsDragOwner(bResize) {
		t.Error("B should claim the drag on a fresh press over its edge")
	}

	h.MovePointerTo(geometry.Offset{X: 450, Y: 300})
	h.Frame(build)
	if respB.Rect.Right != 450 {
		t.Errorf("B dragged right edge = %v, want 450", respB.Rect.Right)
	}
}

func TestShowSideReturnsInnerValue(t *testing.T) {
	h := docktest.New()

	var got int
	var resp Response
	h.Frame(func(ctx *ui.Context) {
		got, resp = ShowSide(ctx, Left("explorer"), func(r *ui.Region) int {
			fillWidth(r)
			return 42
		})
	})
	if got != 42 {
		t.Errorf("inner value = %v, want 42", got)
	}
	if resp.Rect.Width() != 200 {
		t.Errorf("Rect.Width() = %v, want 200", resp.Rect.Width())
	}
}
