package geometry

// Insets describes distances from each edge of a rectangle, used for
// margins and padding.
type Insets struct {
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
}

// SymmetricInsets constructs Insets with the given horizontal and vertical
// distances applied to both sides.
func SymmetricInsets(horizontal, vertical float64) Insets {
	return Insets{Left: horizontal, Top: vertical, Right: horizontal, Bottom: vertical}
}

// InsetsAll constructs Insets with the same distance on every edge.
func InsetsAll(v float64) Insets {
	return Insets{Left: v, Top: v, Right: v, Bottom: v}
}

// Horizontal returns the combined left and right distances.
func (in Insets) Horizontal() float64 {
	return in.Left + in.Right
}

// Vertical returns the combined top and bottom distances.
func (in Insets) Vertical() float64 {
	return in.Top + in.Bottom
}

// Shrink returns the rectangle inset by the given distances.
func (r Rect) Shrink(in Insets) Rect {
	return Rect{
		Left:   r.Left + in.Left,
		Top:    r.Top + in.Top,
		Right:  r.Right - in.Right,
		Bottom: r.Bottom - in.Bottom,
	}
}

// Expand returns the rectangle grown outward by the given distances.
func (r Rect) Expand(in Insets) Rect {
	return Rect{
		Left:   r.Left - in.Left,
		Top:    r.Top - in.Top,
		Right:  r.Right + in.Right,
		Bottom: r.Bottom + in.Bottom,
	}
}
