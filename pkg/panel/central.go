package panel

import (
	"github.com/go-drift/dock/pkg/state"
	"github.com/go-drift/dock/pkg/style"
	"github.com/go-drift/dock/pkg/ui"
)

// centralPanelID is shared by every central panel: there is at most one
// per frame, so it needs no per-instance seed.
var centralPanelID = state.NewID("central_panel")

// CentralPanel fills whatever window area is left after the edge
// panels.
//
// Declare it after every side and top panel. Declaring two central
// panels in one frame panics.
type CentralPanel struct {
	frame *style.Frame
}

// Central creates a central panel.
func Central() CentralPanel {
	return CentralPanel{}
}

// WithFrame replaces the default decoration.
func (p CentralPanel) WithFrame(f style.Frame) CentralPanel {
	p.frame = &f
	return p
}

// Show lays the panel out for this frame and runs contents inside it.
func (p CentralPanel) Show(ctx *ui.Context, contents func(*ui.Region)) Response {
	_, resp := ShowCentral(ctx, p, func(r *ui.Region) struct{} {
		contents(r)
		return struct{}{}
	})
	return resp
}

// ShowCentral lays the panel out and returns the content callback's
// value alongside the panel response.
func ShowCentral[R any](ctx *ui.Context, p CentralPanel, contents func(*ui.Region) R) (R, Response) {
	panelRect := ctx.AvailableRect()

	region := ui.NewRegion(ctx, centralPanelID, panelRect)
	frame := frameOr(p.frame, style.CentralPanelFrame(ctx.Style()))

	var inner R
	rect := ui.ShowFramed(region, frame, func(content *ui.Region) {
		// The decoration covers the whole remaining area, not just what
		// the content claims.
		content.ExpandToIncludeRect(content.MaxRect())
		inner = contents(content)
	})

	ctx.AllocateCentralPanel(rect)

	return inner, Response{Rect: rect}
}
