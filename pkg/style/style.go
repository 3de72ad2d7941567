// Package style defines the visual and interaction settings panels are
// drawn and hit-tested with, the frame decorations derived from them,
// and an optional YAML overlay for overriding the defaults.
package style

import (
	"github.com/go-drift/dock/pkg/geometry"
	"github.com/go-drift/dock/pkg/paint"
)

// Spacing controls distances between and inside layout elements.
type Spacing struct {
	// ItemSpacing is the gap inserted after each allocated item.
	ItemSpacing geometry.Size
	// InteractSize is the minimum comfortable size of an interactive
	// element. Its height doubles as the default height of a top panel.
	InteractSize geometry.Size
}

// Interaction controls hit-testing distances.
type Interaction struct {
	// ResizeGrabRadiusSide is how close, in pixels, the pointer must be
	// to a panel edge to grab its resize handle.
	ResizeGrabRadiusSide float64
}

// WidgetVisuals describes the look of an element in one interaction state.
type WidgetVisuals struct {
	// BgStroke is the outline drawn for the element in this state.
	BgStroke paint.Stroke
}

// Widgets bundles the per-state visuals.
type Widgets struct {
	// Hovered is used while the pointer is over the element.
	Hovered WidgetVisuals
	// Active is used while the element is being dragged.
	Active WidgetVisuals
}

// Visuals holds the colors and strokes panels are painted with.
type Visuals struct {
	// WindowFill is the background color of panel frames.
	WindowFill paint.Color
	// WindowStroke is the outline of panel frames.
	WindowStroke paint.Stroke
	// Widgets holds the per-state element visuals.
	Widgets Widgets
}

// Style bundles every setting the layout consults.
type Style struct {
	Spacing     Spacing
	Interaction Interaction
	Visuals     Visuals
}

// Default returns the built-in dark style.
func Default() *Style {
	return &Style{
		Spacing: Spacing{
			ItemSpacing:  geometry.Size{Width: 8, Height: 3},
			InteractSize: geometry.Size{Width: 40, Height: 18},
		},
		Interaction: Interaction{
			ResizeGrabRadiusSide: 5,
		},
		Visuals: Visuals{
			WindowFill:   paint.Gray(27),
			WindowStroke: paint.Stroke{Width: 1, Color: paint.Gray(60)},
			Widgets: Widgets{
				Hovered: WidgetVisuals{
					BgStroke: paint.Stroke{Width: 1, Color: paint.Gray(150)},
				},
				Active: WidgetVisuals{
					BgStroke: paint.Stroke{Width: 1, Color: paint.ColorWhite},
				},
			},
		},
	}
}
