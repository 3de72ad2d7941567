package panel

import (
	"testing"

	"github.com/go-drift/dock/pkg/docktest"
	dockerrors "github.com/go-drift/dock/pkg/errors"
	"github.com/go-drift/dock/pkg/geometry"
	"github.com/go-drift/dock/pkg/ui"
)

func TestCentralPanelFillsScreen(t *testing.T) {
	h := docktest.New()

	var resp Response
	h.Frame(func(ctx *ui.Context) {
		resp = Central().Show(ctx, func(r *ui.Region) {})
	})

	if resp.Rect != h.Screen {
		t.Errorf("Rect = %+v, want full screen %+v", resp.Rect, h.Screen)
	}
}

func TestCentralPanelCoversRemainderDespiteSmallContent(t *testing.T) {
	h := docktest.New()

	var resp Response
	h.Frame(func(ctx *ui.Context) {
		resp = Central().Show(ctx, func(r *ui.Region) {
			r.Allocate(geometry.Size{Width: 10, Height: 10})
		})
	})

	// Central panels never hug content.
	if resp.Rect != h.Screen {
		t.Errorf("Rect = %+v, want full screen", resp.Rect)
	}
}

func TestCentralPanelAfterSidePanel(t *testing.T) {
	h := docktest.New()

	var side, central Response
	h.Frame(func(ctx *ui.Context) {
		side = Left("explorer").Show(ctx, fillWidth)
		central = Central().Show(ctx, func(r *ui.Region) {})
	})

	if side.Rect != (geometry.Rect{Left: 0, Top: 0, Right: 200, Bottom: 600}) {
		t.Errorf("side Rect = %+v", side.Rect)
	}
	if central.Rect != (geometry.Rect{Left: 200, Top: 0, Right: 800, Bottom: 600}) {
		t.Errorf("central Rect = %+v, want the remainder", central.Rect)
	}
}

func TestCentralPanelAfterTopAndSide(t *testing.T) {
	h := docktest.New()

	var central Response
	h.Frame(func(ctx *ui.Context) {
		Top("menu").WithMaxHeight(40).Show(ctx, fillHeight)
		Left("explorer").Show(ctx, fillWidth)
		central = Central().Show(ctx, func(r *ui.Region) {})
	})

	if central.Rect != (geometry.Rect{Left: 200, Top: 40, Right: 800, Bottom: 600}) {
		t.Errorf("central Rect = %+v, want [200,40 800,600]", central.Rect)
	}
}

func TestCentralPanelTracksResizedSide(t *testing.T) {
	h := docktest.New()
	var central Response
	build := func(ctx *ui.Context) {
		Left("explorer").Show(ctx, fillWidth)
		central = Central().Show(ctx, func(r *ui.Region) {})
	}

	h.Frame(build)
	h.MovePointerTo(geometry.Offset{X: 200, Y: 300})
	h.Press()
	h.Frame(build)
	h.MovePointerTo(geometry.Offset{X: 320, Y: 300})
	h.Frame(build)

	if central.Rect.Left != 320 {
		t.Errorf("central Rect.Left = %v, want 320 after drag", central.Rect.Left)
	}
}

func TestSecondCentralPanelPanics(t *testing.T) {
	h := docktest.New()

	defer func() {
		if recover() == nil {
			t.Error("expected a panic from the second central panel")
		}
	}()
	h.Frame(func(ctx *ui.Context) {
		Central().Show(ctx, func(r *ui.Region) {})
		Central().Show(ctx, func(r *ui.Region) {})
	})
}

func TestCentralPanelAllowedEachFrame(t *testing.T) {
	h := docktest.New()
	build := func(ctx *ui.Context) {
		Central().Show(ctx, func(r *ui.Region) {})
	}

	// One per frame is fine.
	h.Frame(build)
	h.Frame(build)
}

func TestSidePanelAfterCentralIsReported(t *testing.T) {
	h := docktest.New()

	var reported []*dockerrors.Error
	dockerrors.SetHandler(handlerFunc(func(e *dockerrors.Error) {
		reported = append(reported, e)
	}))
	defer dockerrors.SetHandler(nil)

	var side Response
	h.Frame(func(ctx *ui.Context) {
		Central().Show(ctx, func(r *ui.Region) {})
		side = Left("late").Show(ctx, fillWidth)
	})

	if len(reported) != 1 {
		t.Fatalf("reported %d errors, want 1", len(reported))
	}
	if reported[0].Kind != dockerrors.KindLayout {
		t.Errorf("Kind = %v, want KindLayout", reported[0].Kind)
	}
	// The panel is still laid out, the report is a diagnostic.
	if side.Rect.Width() != 200 {
		t.Errorf("late side panel width = %v, want 200", side.Rect.Width())
	}
}

// handlerFunc adapts a function to the error handler interface.
type handlerFunc func(*dockerrors.Error)

func (f handlerFunc) HandleError(e *dockerrors.Error)      { f(e) }
func (f handlerFunc) HandlePanic(p *dockerrors.PanicError) {}
