package inspect

import (
	"encoding/json"
	"math"
	"sync"

	"github.com/go-drift/dock/pkg/geometry"
	"github.com/go-drift/dock/pkg/ui"
)

// SafeFloat wraps a float64 to handle Inf/NaN in JSON encoding. Layout
// rectangles use infinities as sentinels, which encoding/json rejects.
type SafeFloat float64

func (f SafeFloat) MarshalJSON() ([]byte, error) {
	v := float64(f)
	if math.IsInf(v, 1) {
		return []byte(`"Infinity"`), nil
	}
	if math.IsInf(v, -1) {
		return []byte(`"-Infinity"`), nil
	}
	if math.IsNaN(v) {
		return []byte(`"NaN"`), nil
	}
	return json.Marshal(v)
}

// RectInfo is a JSON-safe version of geometry.Rect.
type RectInfo struct {
	Left   SafeFloat `json:"left"`
	Top    SafeFloat `json:"top"`
	Right  SafeFloat `json:"right"`
	Bottom SafeFloat `json:"bottom"`
}

// PanelInfo describes one panel allocation.
type PanelInfo struct {
	Kind string   `json:"kind"`
	Rect RectInfo `json:"rect"`
}

// Snapshot is one frame's layout as seen after EndFrame.
type Snapshot struct {
	Frame     int         `json:"frame"`
	Screen    RectInfo    `json:"screen"`
	Available RectInfo    `json:"available"`
	Used      RectInfo    `json:"used"`
	Cursor    string      `json:"cursor"`
	Panels    []PanelInfo `json:"panels,omitempty"`
}

// Capture reads the context's layout state into a Snapshot. Call it
// between frames, after EndFrame; the context is not safe to read while
// a frame is being built on another goroutine.
func Capture(ctx *ui.Context) Snapshot {
	allocations := ctx.PanelAllocations()
	panels := make([]PanelInfo, 0, len(allocations))
	for _, a := range allocations {
		panels = append(panels, PanelInfo{Kind: a.Kind.String(), Rect: rectInfo(a.Rect)})
	}
	return Snapshot{
		Frame:     ctx.FrameCount(),
		Screen:    rectInfo(ctx.ScreenRect()),
		Available: rectInfo(ctx.AvailableRect()),
		Used:      rectInfo(ctx.UsedRect()),
		Cursor:    ctx.Cursor().String(),
		Panels:    panels,
	}
}

func rectInfo(r geometry.Rect) RectInfo {
	return RectInfo{
		Left:   SafeFloat(r.Left),
		Top:    SafeFloat(r.Top),
		Right:  SafeFloat(r.Right),
		Bottom: SafeFloat(r.Bottom),
	}
}

// Latest is a thread-safe slot for the most recent snapshot. The frame
// loop stores into it after each frame; the server reads from it.
type Latest struct {
	mu   sync.Mutex
	snap Snapshot
	ok   bool
}

// Store saves a snapshot as the most recent one.
func (l *Latest) Store(s Snapshot) {
	l.mu.Lock()
	l.snap = s
	l.ok = true
	l.mu.Unlock()
}

// Load returns the most recent snapshot, and whether one exists yet.
func (l *Latest) Load() (Snapshot, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.snap, l.ok
}
