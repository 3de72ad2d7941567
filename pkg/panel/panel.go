package panel

import (
	"github.com/go-drift/dock/pkg/geometry"
	"github.com/go-drift/dock/pkg/state"
	"github.com/go-drift/dock/pkg/style"
	"github.com/go-drift/dock/pkg/ui"
)

// Response reports where a panel ended up this frame.
type Response struct {
	// Rect is the rectangle the panel covered, decoration included.
	Rect geometry.Rect
}

// panelState is what a panel remembers between frames.
type panelState struct {
	Rect geometry.Rect
}

func loadState(ctx *ui.Context, id state.ID) (panelState, bool) {
	return state.Get[panelState](ctx.Memory().Data, id)
}

func saveState(ctx *ui.Context, id state.ID, s panelState) {
	ctx.Memory().Data.Insert(id, s)
}

func frameOr(override *style.Frame, fallback style.Frame) style.Frame {
	if override != nil {
		return *override
	}
	return fallback
}
