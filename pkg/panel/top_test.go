package panel

import (
	"testing"

	"github.com/go-drift/dock/pkg/docktest"
	"github.com/go-drift/dock/pkg/geometry"
	"github.com/go-drift/dock/pkg/ui"
)

// fillHeight makes top panel content claim the panel's full height.
func fillHeight(r *ui.Region) {
	r.SetMinHeight(r.MaxRect().Height())
}

func TestTopPanelDefaultHeight(t *testing.T) {
	h := docktest.New()

	var resp Response
	h.Frame(func(ctx *ui.Context) {
		resp = Top("menu").Show(ctx, fillHeight)
	})

	// Default height is the style's interact height.
	want := geometry.Rect{Left: 0, Top: 0, Right: 800, Bottom: 18}
	if resp.Rect != want {
		t.Errorf("Rect = %+v, want %+v", resp.Rect, want)
	}
}

func TestTopPanelMaxHeight(t *testing.T) {
	h := docktest.New()

	var resp Response
	var avail geometry.Rect
	h.Frame(func(ctx *ui.Context) {
		resp = Top("menu").WithMaxHeight(30).Show(ctx, fillHeight)
		avail = ctx.AvailableRect()
	})

	want := geometry.Rect{Left: 0, Top: 0, Right: 800, Bottom: 30}
	if resp.Rect != want {
		t.Errorf("Rect = %+v, want %+v", resp.Rect, want)
	}
	if avail != (geometry.Rect{Left: 0, Top: 30, Right: 800, Bottom: 600}) {
		t.Errorf("AvailableRect = %+v, want remainder below the panel", avail)
	}
}

func TestTopPanelGrowsWithTallContent(t *testing.T) {
	h := docktest.New()

	var resp Response
	h.Frame(func(ctx *ui.Context) {
		resp = Top("menu").WithMaxHeight(30).Show(ctx, func(r *ui.Region) {
			r.Allocate(geometry.Size{Width: 100, Height: 100})
		})
	})

	// Content taller than the cap wins: 100 plus the 2-per-side vertical margin.
	if resp.Rect.Bottom != 104 {
		t.Errorf("Rect.Bottom = %v, want 104", resp.Rect.Bottom)
	}
	if got := h.Ctx.AvailableRect().Top; got != 104 {
		t.Errorf("AvailableRect.Top = %v, want 104", got)
	}
}

func TestTopPanelSpansFullWidth(t *testing.T) {
	h := docktest.New()

	var resp Response
	h.Frame(func(ctx *ui.Context) {
		resp = Top("menu").Show(ctx, func(r *ui.Region) {
			r.Allocate(geometry.Size{Width: 40, Height: 10})
		})
	})

	// Narrow content does not shrink the strip.
	if resp.Rect.Left != 0 || resp.Rect.Right != 800 {
		t.Errorf("Rect spans x=%v..%v, want 0..800", resp.Rect.Left, resp.Rect.Right)
	}
}

func TestTopPanelBeforeSidePanel(t *testing.T) {
	h := docktest.New()

	var top, side Response
	h.Frame(func(ctx *ui.Context) {
		top = Top("menu").WithMaxHeight(30).Show(ctx, fillHeight)
		side = Left("explorer").Show(ctx, fillWidth)
	})

	if top.Rect != (geometry.Rect{Left: 0, Top: 0, Right: 800, Bottom: 30}) {
		t.Errorf("top Rect = %+v", top.Rect)
	}
	// The side panel starts below the strip.
	if side.Rect != (geometry.Rect{Left: 0, Top: 30, Right: 200, Bottom: 600}) {
		t.Errorf("side Rect = %+v, want below the top strip", side.Rect)
	}
}

func TestShowTopReturnsInnerValue(t *testing.T) {
	h := docktest.New()

	var got string
	h.Frame(func(ctx *ui.Context) {
		got, _ = ShowTop(ctx, Top("menu"), func(r *ui.Region) string {
			fillHeight(r)
			return "menu built"
		})
	})
	if got != "menu built" {
		t.Errorf("inner value = %q, want %q", got, "menu built")
	}
}
