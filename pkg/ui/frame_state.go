package ui

import (
	"fmt"

	"github.com/go-drift/dock/pkg/geometry"
)

// PanelKind says which edge a panel allocation came from.
type PanelKind int

const (
	// PanelLeft is a panel docked to the left edge.
	PanelLeft PanelKind = iota

	// PanelTop is a panel docked to the top edge.
	PanelTop

	// PanelCentral is the panel filling the remaining area.
	PanelCentral
)

// String returns a human-readable representation of the panel kind.
func (k PanelKind) String() string {
	switch k {
	case PanelLeft:
		return "left"
	case PanelTop:
		return "top"
	case PanelCentral:
		return "central"
	default:
		return fmt.Sprintf("PanelKind(%d)", int(k))
	}
}

// PanelAllocation records one panel's claim on window space this frame.
type PanelAllocation struct {
	Kind PanelKind
	Rect geometry.Rect
}

// frameState tracks what has been handed out during the current frame.
// It resets at BeginFrame and carries nothing across frames.
type frameState struct {
	screenRect     geometry.Rect
	availableRect  geometry.Rect
	usedRect       geometry.Rect
	centralClaimed bool
	allocations    []PanelAllocation
}

func (f *frameState) begin(screen geometry.Rect) {
	f.screenRect = screen
	f.availableRect = screen
	f.usedRect = geometry.EmptyRect()
	f.centralClaimed = false
	f.allocations = f.allocations[:0]
}

// allocateLeft shrinks the available area from the left edge.
func (f *frameState) allocateLeft(rect geometry.Rect) {
	f.availableRect.Left = rect.Right
	f.record(PanelLeft, rect)
}

// allocateTop shrinks the available area from the top edge.
func (f *frameState) allocateTop(rect geometry.Rect) {
	f.availableRect.Top = rect.Bottom
	f.record(PanelTop, rect)
}

// allocateCentral claims the remaining area. At most one central panel
// may be declared per frame.
func (f *frameState) allocateCentral(rect geometry.Rect) {
	if f.centralClaimed {
		panic("ui: central panel already declared this frame")
	}
	f.centralClaimed = true
	f.record(PanelCentral, rect)
}

func (f *frameState) record(kind PanelKind, rect geometry.Rect) {
	f.usedRect = f.usedRect.Union(rect)
	f.allocations = append(f.allocations, PanelAllocation{Kind: kind, Rect: rect})
}
