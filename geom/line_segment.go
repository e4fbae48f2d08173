package geom

import "math"

// Epsilon is the tolerance used throughout this package for floating point
// comparisons: segment-intersection bounds checks, circle containment, and
// rotating-calipers angle comparisons.
const Epsilon = 0.001

// DirectedLineSegment is an ordered pair of points, used for side tests
// against a polygon's counter-clockwise edges.
type DirectedLineSegment struct {
	A, B Point
}

// Vector returns the displacement from A to B.
func (s DirectedLineSegment) Vector() Vector {
	return s.B.Minus(s.A)
}

// IsLeftOf reports whether p is strictly left of the directed line from A to
// B: (p-A) x (B-A) < 0 in this package's convention, matching a
// counter-clockwise polygon's interior test.
func (s DirectedLineSegment) IsLeftOf(p Point) bool {
	return p.Minus(s.A).Cross(s.Vector()) < 0
}

// ParallelSegment returns the segment offset to the right of s by distance r
// (the side a counter-clockwise polygon's outward offset curve lies on).
func (s DirectedLineSegment) ParallelSegment(r float64) DirectedLineSegment {
	angle := s.Vector().Angle() - math.Pi/2
	offset := Vector{math.Cos(angle) * r, math.Sin(angle) * r}
	return DirectedLineSegment{A: s.A.Translate(offset), B: s.B.Translate(offset)}
}

// Line is a line in coordinate form A*x + B*y = C.
type Line struct {
	A, B, C float64
}

// LineThrough returns the line through p and q.
func LineThrough(p, q Point) Line {
	a := p.Y - q.Y
	b := q.X - p.X
	c := q.X*p.Y - p.X*q.Y
	return Line{A: a, B: b, C: c}
}

// Intersect returns the intersection of l and m. ok is false when the lines
// are parallel (or coincident).
func (l Line) Intersect(m Line) (Point, bool) {
	det := l.A*m.B - m.A*l.B
	if det == 0 {
		return Point{}, false
	}
	x := (l.C*m.B - m.C*l.B) / det
	y := (l.A*m.C - m.A*l.C) / det
	return Point{x, y}, true
}

// LineSegment is an undirected segment between two points.
type LineSegment struct {
	A, B Point
}

func (s LineSegment) line() Line {
	return LineThrough(s.A, s.B)
}

func (s LineSegment) isOn(p Point) bool {
	minX, maxX := math.Min(s.A.X, s.B.X), math.Max(s.A.X, s.B.X)
	minY, maxY := math.Min(s.A.Y, s.B.Y), math.Max(s.A.Y, s.B.Y)
	return p.X >= minX-Epsilon && p.X <= maxX+Epsilon &&
		p.Y >= minY-Epsilon && p.Y <= maxY+Epsilon
}

// Intersect returns the point where s and t cross, if any. ok is false when
// the underlying lines are parallel or the intersection falls outside
// either segment's bounding box.
func (s LineSegment) Intersect(t LineSegment) (Point, bool) {
	p, ok := s.line().Intersect(t.line())
	if !ok {
		return Point{}, false
	}
	if !s.isOn(p) || !t.isOn(p) {
		return Point{}, false
	}
	return p, true
}

// DoIntersect reports whether any segment in a crosses any segment in b.
func DoIntersect(a, b []LineSegment) bool {
	for _, s := range a {
		for _, t := range b {
			if _, ok := s.Intersect(t); ok {
				return true
			}
		}
	}
	return false
}

// DoSegmentsIntersect is an alias of DoIntersect kept for call sites that
// read more naturally with the longer name (polygon-polygon edge tests).
func DoSegmentsIntersect(a, b []LineSegment) bool {
	return DoIntersect(a, b)
}
