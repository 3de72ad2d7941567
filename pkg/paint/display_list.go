package paint

import "github.com/go-drift/dock/pkg/geometry"

// List is an immutable list of drawing operations.
// It can be replayed onto any Canvas implementation.
type List struct {
	ops  []displayOp
	size geometry.Size
}

// Replay executes the recorded operations onto the provided canvas.
func (l *List) Replay(canvas Canvas) {
	for _, op := range l.ops {
		op.execute(canvas)
	}
}

// Size returns the size recorded when the list was created.
func (l *List) Size() geometry.Size {
	return l.size
}

// Len returns the number of recorded operations, reserved slots included.
func (l *List) Len() int {
	return len(l.ops)
}

// Concat merges lists into one, replaying in argument order. The result
// takes its size from the first list.
func Concat(lists ...*List) *List {
	out := &List{}
	for i, l := range lists {
		if l == nil {
			continue
		}
		if i == 0 {
			out.size = l.size
		}
		out.ops = append(out.ops, l.ops...)
	}
	return out
}

// ShapeID identifies a reserved slot in a Recorder. Slots let callers
// insert a shape at a point earlier in the paint order than the moment
// its geometry becomes known, such as a panel frame painted behind
// content that is laid out after it.
type ShapeID int

// Recorder records drawing commands into a display list.
type Recorder struct {
	ops       []displayOp
	recording bool
	size      geometry.Size
}

// Begin starts a new recording session, discarding prior operations.
func (r *Recorder) Begin(size geometry.Size) {
	r.ops = r.ops[:0]
	r.recording = true
	r.size = size
}

// End finishes the recording and returns an immutable list.
func (r *Recorder) End() *List {
	if !r.recording {
		return &List{size: r.size}
	}
	r.recording = false
	ops := make([]displayOp, len(r.ops))
	copy(ops, r.ops)
	return &List{
		ops:  ops,
		size: r.size,
	}
}

// Rect records a rectangle with the given fill and outline.
func (r *Recorder) Rect(rect geometry.Rect, fill Color, stroke Stroke) {
	r.append(opRect{rect: rect, fill: fill, stroke: stroke})
}

// Line records a line segment with the given stroke.
func (r *Recorder) Line(from, to geometry.Offset, stroke Stroke) {
	r.append(opLine{from: from, to: to, stroke: stroke})
}

// Reserve appends an empty slot and returns its ID. Fill it later with
// SetRect; an unfilled slot replays as nothing.
func (r *Recorder) Reserve() ShapeID {
	r.append(opNoop{})
	return ShapeID(len(r.ops) - 1)
}

// SetRect fills a reserved slot with a rectangle. The shape replays at
// the slot's position in the recording order, not at the time of this
// call.
func (r *Recorder) SetRect(id ShapeID, rect geometry.Rect, fill Color, stroke Stroke) {
	if !r.recording || int(id) < 0 || int(id) >= len(r.ops) {
		return
	}
	r.ops[id] = opRect{rect: rect, fill: fill, stroke: stroke}
}

func (r *Recorder) append(op displayOp) {
	if !r.recording {
		return
	}
	r.ops = append(r.ops, op)
}

type displayOp interface {
	execute(canvas Canvas)
}

type opRect struct {
	rect   geometry.Rect
	fill   Color
	stroke Stroke
}

func (op opRect) execute(canvas Canvas) {
	if op.fill.IsVisible() {
		canvas.DrawRect(op.rect, Paint{Color: op.fill, Style: PaintStyleFill})
	}
	if !op.stroke.IsEmpty() {
		canvas.DrawRect(op.rect, Paint{
			Color:       op.stroke.Color,
			Style:       PaintStyleStroke,
			StrokeWidth: op.stroke.Width,
		})
	}
}

type opLine struct {
	from, to geometry.Offset
	stroke   Stroke
}

func (op opLine) execute(canvas Canvas) {
	if op.stroke.IsEmpty() {
		return
	}
	canvas.DrawLine(op.from, op.to, Paint{
		Color:       op.stroke.Color,
		Style:       PaintStyleStroke,
		StrokeWidth: op.stroke.Width,
	})
}

type opNoop struct{}

func (opNoop) execute(Canvas) {}
