package panel

import (
	"github.com/go-drift/dock/pkg/state"
	"github.com/go-drift/dock/pkg/style"
	"github.com/go-drift/dock/pkg/ui"
)

// TopPanel is a panel docked to the top edge of the window, typically a
// menu or tool bar.
//
// Top panels must be declared before the central panel. The default
// height is the style's interact size height, but the panel grows to
// fit taller content.
type TopPanel struct {
	id        state.ID
	frame     *style.Frame
	maxHeight float64
	hasMax    bool
}

// Top creates a top panel. idSeed must be unique within the window,
// e.g. "menu_bar".
func Top(idSeed string) TopPanel {
	return TopPanel{id: state.NewID(idSeed)}
}

// WithMaxHeight caps how much of the available height the panel takes
// before content forces it taller.
func (p TopPanel) WithMaxHeight(height float64) TopPanel {
	p.maxHeight = height
	p.hasMax = true
	return p
}

// WithFrame replaces the default decoration.
func (p TopPanel) WithFrame(f style.Frame) TopPanel {
	p.frame = &f
	return p
}

// Show lays the panel out for this frame and runs contents inside it.
func (p TopPanel) Show(ctx *ui.Context, contents func(*ui.Region)) Response {
	_, resp := ShowTop(ctx, p, func(r *ui.Region) struct{} {
		contents(r)
		return struct{}{}
	})
	return resp
}

// ShowTop lays the panel out and returns the content callback's value
// alongside the panel response.
func ShowTop[R any](ctx *ui.Context, p TopPanel, contents func(*ui.Region) R) (R, Response) {
	maxHeight := p.maxHeight
	if !p.hasMax {
		maxHeight = ctx.Style().Spacing.InteractSize.Height
	}

	panelRect := ctx.AvailableRect()
	if bottom := panelRect.Top + maxHeight; bottom < panelRect.Bottom {
		panelRect.Bottom = bottom
	}

	region := ui.NewRegion(ctx, p.id, panelRect)
	frame := frameOr(p.frame, style.SideTopPanelFrame(ctx.Style()))

	var inner R
	rect := ui.ShowFramed(region, frame, func(content *ui.Region) {
		// The decoration spans the window's full width.
		content.SetMinWidth(content.MaxRect().Width())
		inner = contents(content)
	})

	ctx.AllocateTopPanel(rect)

	return inner, Response{Rect: rect}
}
