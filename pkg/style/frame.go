package style

import (
	"github.com/go-drift/dock/pkg/geometry"
	"github.com/go-drift/dock/pkg/paint"
)

// Frame describes the decoration around a panel's content: an inner
// margin, a fill, and an outline. The zero value draws nothing and adds
// no margin.
type Frame struct {
	// Margin is the space between the frame edge and the content.
	Margin geometry.Insets
	// Fill is the background color.
	Fill paint.Color
	// Stroke is the outline.
	Stroke paint.Stroke
}

// SideTopPanelFrame returns the default frame for side and top panels:
// a tight vertical margin with the window fill and outline.
func SideTopPanelFrame(s *Style) Frame {
	return Frame{
		Margin: geometry.SymmetricInsets(8, 2),
		Fill:   s.Visuals.WindowFill,
		Stroke: s.Visuals.WindowStroke,
	}
}

// CentralPanelFrame returns the default frame for the central panel:
// an even margin with the window fill and no outline.
func CentralPanelFrame(s *Style) Frame {
	return Frame{
		Margin: geometry.SymmetricInsets(8, 8),
		Fill:   s.Visuals.WindowFill,
	}
}
