// Package geopb contains the small, dependency-free value types shared by
// every other geo subpackage: the axis-aligned bounding envelope and the
// closed set of on-wire shape tags.
package geopb

import "math"

// Envelope is the axis-aligned minimum bounding rectangle of a geometry.
// The zero value is not meaningful on its own; use EmptyEnvelope or
// NewEnvelope to construct one.
//
// An Envelope is empty when any of its four components is NaN. This mirrors
// the wire representation directly: an empty envelope round-trips to four
// NaN doubles, so there is no separate "is empty" bit to keep in sync.
type Envelope struct {
	MinX, MinY, MaxX, MaxY float64
}

// EmptyEnvelope returns the canonical empty envelope.
func EmptyEnvelope() Envelope {
	return Envelope{
		MinX: math.NaN(),
		MinY: math.NaN(),
		MaxX: math.NaN(),
		MaxY: math.NaN(),
	}
}

// NewEnvelope returns a non-empty envelope with the given bounds. Callers
// are responsible for minX <= maxX and minY <= maxY; NewEnvelope does not
// normalize them, matching the teacher's preference for thin value
// constructors that don't silently repair caller mistakes.
func NewEnvelope(minX, minY, maxX, maxY float64) Envelope {
	return Envelope{MinX: minX, MinY: minY, MaxX: maxX, MaxY: maxY}
}

// IsEmpty reports whether e is the empty envelope. Per the NaN tie-break
// rule, a single NaN component is enough.
func (e Envelope) IsEmpty() bool {
	return isNaN(e.MinX) || isNaN(e.MinY) || isNaN(e.MaxX) || isNaN(e.MaxY)
}

func isNaN(f float64) bool {
	return f != f
}

// Extend returns the union of e and other. An empty operand has no effect;
// if e is empty and other is not, the result is other's bounds.
func (e Envelope) Extend(other Envelope) Envelope {
	if other.IsEmpty() {
		return e
	}
	if e.IsEmpty() {
		return other
	}
	return Envelope{
		MinX: math.Min(e.MinX, other.MinX),
		MinY: math.Min(e.MinY, other.MinY),
		MaxX: math.Max(e.MaxX, other.MaxX),
		MaxY: math.Max(e.MaxY, other.MaxY),
	}
}

// Point returns the degenerate envelope of a single coordinate. If either
// ordinate is NaN the result is the empty envelope, matching the codec's
// empty-point convention.
func Point(x, y float64) Envelope {
	if isNaN(x) || isNaN(y) {
		return EmptyEnvelope()
	}
	return Envelope{MinX: x, MinY: y, MaxX: x, MaxY: y}
}

// Equal reports whether e and other describe the same envelope, treating
// any two empty envelopes as equal regardless of their particular NaN bit
// patterns.
func (e Envelope) Equal(other Envelope) bool {
	if e.IsEmpty() || other.IsEmpty() {
		return e.IsEmpty() == other.IsEmpty()
	}
	return e.MinX == other.MinX && e.MinY == other.MinY &&
		e.MaxX == other.MaxX && e.MaxY == other.MaxY
}
