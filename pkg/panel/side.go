package panel

import (
	"math"

	"github.com/go-drift/dock/pkg/geometry"
	"github.com/go-drift/dock/pkg/state"
	"github.com/go-drift/dock/pkg/style"
	"github.com/go-drift/dock/pkg/ui"
)

// SidePanel is a panel docked to the left edge of the window.
//
// Side panels must be declared before the central panel. Their width is
// remembered between frames under the panel's identity, so a resized
// panel comes back at its dragged width.
type SidePanel struct {
	id           state.ID
	frame        *style.Frame
	resizable    bool
	defaultWidth float64
	widthRange   geometry.Range
}

// Left creates a left-side panel. idSeed must be unique within the
// window, e.g. "file_tree".
func Left(idSeed string) SidePanel {
	return SidePanel{
		id:           state.NewID(idSeed),
		resizable:    true,
		defaultWidth: 200,
		widthRange:   geometry.Range{Min: 96, Max: math.Inf(1)},
	}
}

// WithResizable switches drag-to-resize on or off. Default is on.
func (p SidePanel) WithResizable(resizable bool) SidePanel {
	p.resizable = resizable
	return p
}

// WithDefaultWidth sets the width used before any width has been
// persisted. Default is 200.
func (p SidePanel) WithDefaultWidth(width float64) SidePanel {
	p.defaultWidth = width
	return p
}

// WithMinWidth sets the smallest width the panel can take.
func (p SidePanel) WithMinWidth(min float64) SidePanel {
	p.widthRange.Min = min
	return p
}

// WithMaxWidth sets the largest width the panel can take.
func (p SidePanel) WithMaxWidth(max float64) SidePanel {
	p.widthRange.Max = max
	return p
}

// WithWidthRange sets both width bounds at once.
func (p SidePanel) WithWidthRange(r geometry.Range) SidePanel {
	p.widthRange = r
	return p
}

// WithFrame replaces the default decoration.
func (p SidePanel) WithFrame(f style.Frame) SidePanel {
	p.frame = &f
	return p
}

// Show lays the panel out for this frame and runs contents inside it.
func (p SidePanel) Show(ctx *ui.Context, contents func(*ui.Region)) Response {
	_, resp := ShowSide(ctx, p, func(r *ui.Region) struct{} {
		contents(r)
		return struct{}{}
	})
	return resp
}

// ShowSide lays the panel out and returns the content callback's value
// alongside the panel response.
func ShowSide[R any](ctx *ui.Context, p SidePanel, contents func(*ui.Region) R) (R, Response) {
	panelRect := ctx.AvailableRect()
	{
		width := p.defaultWidth
		if prev, ok := loadState(ctx, p.id); ok {
			width = prev.Rect.Width()
		}
		width = p.widthRange.Clamp(width)
		panelRect.Right = panelRect.Left + width
	}

	resizeHover := false
	isResizing := false
	if p.resizable {
		resizeID := p.id.With("__resize")
		if pos, ok := ctx.Input().Pointer.LatestPos(); ok {
			pointer := ctx.Input().Pointer
			resizeHover = panelRect.ContainsY(pos.Y) &&
				math.Abs(panelRect.Right-pos.X) <= ctx.Style().Interaction.ResizeGrabRadiusSide

			if pointer.Pressed && pointer.Down && resizeHover {
				ctx.Memory().StartDrag(resizeID)
			}
			isResizing = ctx.Memory().IsDragOwner(resizeID)
			if isResizing {
				width := p.widthRange.Clamp(pos.X - panelRect.Left)
				panelRect.Right = panelRect.Left + width
			}

			if resizeHover || isResizing {
				ctx.SetCursor(ui.CursorResizeHorizontal)
			}
		}
	}

	region := ui.NewRegion(ctx, p.id, panelRect)
	frame := frameOr(p.frame, style.SideTopPanelFrame(ctx.Style()))

	var inner R
	rect := ui.ShowFramed(region, frame, func(content *ui.Region) {
		// The decoration spans the panel's full height even when the
		// content is shorter.
		content.SetMinHeight(content.MaxRect().Height())
		inner = contents(content)
	})

	if resizeHover || isResizing {
		stroke := ctx.Style().Visuals.Widgets.Hovered.BgStroke
		if isResizing {
			stroke = ctx.Style().Visuals.Widgets.Active.BgStroke
		}
		// Foreground layer, so panels declared later cannot cover the handle.
		ctx.ForegroundPainter().Line(
			geometry.Offset{X: rect.Right, Y: rect.Top},
			geometry.Offset{X: rect.Right, Y: rect.Bottom},
			stroke)
	}

	ctx.AllocateLeftPanel(rect)
	saveState(ctx, p.id, panelState{Rect: rect})

	return inner, Response{Rect: rect}
}
