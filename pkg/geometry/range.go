package geometry

import "math"

// Range is an inclusive interval of values. Either endpoint may be infinite
// to leave that side unbounded.
type Range struct {
	Min float64
	Max float64
}

// RangeInclusive constructs a Range from min to max.
func RangeInclusive(min, max float64) Range {
	return Range{Min: min, Max: max}
}

// Normalized returns the range with its endpoints swapped if Min exceeds Max.
func (r Range) Normalized() Range {
	if r.Min > r.Max {
		return Range{Min: r.Max, Max: r.Min}
	}
	return r
}

// Clamp limits x to the range. Inverted endpoints are treated as if they
// were given in the natural order.
func (r Range) Clamp(x float64) float64 {
	n := r.Normalized()
	return math.Min(math.Max(x, n.Min), n.Max)
}

// Contains reports whether v lies within the range, endpoints included.
func (r Range) Contains(v float64) bool {
	n := r.Normalized()
	return v >= n.Min && v <= n.Max
}

// Span returns the distance between the endpoints.
func (r Range) Span() float64 {
	n := r.Normalized()
	return n.Max - n.Min
}
