package geom

import "math"

// Polygon is a simple polygon with vertices in counter-clockwise order.
// Edge i runs from Vertex(i) to Vertex(i+1); indices wrap modulo the vertex
// count, which is why Vertex and Edge take plain ints rather than requiring
// callers to reduce modulo n themselves.
type Polygon struct {
	Vertices []Point
}

// NewPolygon builds a polygon from vertices, reordering them to be
// counter-clockwise if necessary.
func NewPolygon(vertices []Point) Polygon {
	p := Polygon{Vertices: vertices}
	return p.ensureCCW()
}

// N returns the number of vertices.
func (p Polygon) N() int {
	return len(p.Vertices)
}

// Vertex returns vertex i, wrapping modulo the vertex count. This is the
// circular-index accessor the polygon needs instead of a dedicated
// circular-list type: every edge/angle computation below goes through it.
func (p Polygon) Vertex(i int) Point {
	n := len(p.Vertices)
	return p.Vertices[((i%n)+n)%n]
}

// Edge returns the i-th directed edge, from Vertex(i) to Vertex(i+1).
func (p Polygon) Edge(i int) DirectedLineSegment {
	return DirectedLineSegment{A: p.Vertex(i), B: p.Vertex(i + 1)}
}

// Edges returns all edges in order.
func (p Polygon) Edges() []DirectedLineSegment {
	n := p.N()
	edges := make([]DirectedLineSegment, n)
	for i := 0; i < n; i++ {
		edges[i] = p.Edge(i)
	}
	return edges
}

// SignedArea returns the polygon's area by the shoelace formula; positive
// for counter-clockwise vertex order.
func (p Polygon) SignedArea() float64 {
	n := p.N()
	var sum float64
	for i := 0; i < n; i++ {
		a, b := p.Vertex(i), p.Vertex(i+1)
		sum += a.X*b.Y - b.X*a.Y
	}
	return sum / 2
}

// Area returns the polygon's unsigned area.
func (p Polygon) Area() float64 {
	return math.Abs(p.SignedArea())
}

func (p Polygon) ensureCCW() Polygon {
	if p.SignedArea() >= 0 {
		return p
	}
	reversed := make([]Point, len(p.Vertices))
	n := len(p.Vertices)
	for i, v := range p.Vertices {
		reversed[n-1-i] = v
	}
	return Polygon{Vertices: reversed}
}

// InsideAngle returns the interior angle at vertex i, in radians, in (0, 2*pi).
func (p Polygon) InsideAngle(i int) float64 {
	prev := p.Vertex(i - 1)
	cur := p.Vertex(i)
	next := p.Vertex(i + 1)
	v1 := prev.Minus(cur)
	v2 := next.Minus(cur)
	angle := math.Atan2(v2.Cross(v1), v2.Dot(v1))
	if angle < 0 {
		angle += 2 * math.Pi
	}
	return angle
}

// Contains reports whether point is inside the polygon: a point is inside
// iff it is left of every counter-clockwise edge.
func (p Polygon) Contains(point Point) bool {
	for i := 0; i < p.N(); i++ {
		if !p.Edge(i).IsLeftOf(point) {
			return false
		}
	}
	return true
}

// Translate returns p shifted by v.
func (p Polygon) Translate(v Vector) Polygon {
	out := make([]Point, p.N())
	for i, vtx := range p.Vertices {
		out[i] = vtx.Translate(v)
	}
	return Polygon{Vertices: out}
}

// TranslateInt returns p shifted by an integer-lattice vector.
func (p Polygon) TranslateInt(v IntegerVector) Polygon {
	return p.Translate(v.ToVector())
}

// Rotate returns p rotated by angle radians around origin.
func (p Polygon) Rotate(origin Point, angle float64) Polygon {
	out := make([]Point, p.N())
	for i, vtx := range p.Vertices {
		out[i] = vtx.Rotate(origin, angle)
	}
	return Polygon{Vertices: out}
}

// RotateAroundCenter rotates p by angle radians around its own bounding-box
// center.
func (p Polygon) RotateAroundCenter(angle float64) Polygon {
	return p.Rotate(p.BoundingBox().Center(), angle)
}

// Rotate180 rotates p by 180 degrees around its own bounding-box center.
func (p Polygon) Rotate180() Polygon {
	center := p.BoundingBox().Center()
	out := make([]Point, p.N())
	for i, vtx := range p.Vertices {
		out[i] = vtx.Rotate180(center)
	}
	return Polygon{Vertices: out}
}

// BoundingBox returns the axis-aligned bounding box of p.
func (p Polygon) BoundingBox() AxisAlignedRectangle {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, v := range p.Vertices {
		minX = math.Min(minX, v.X)
		minY = math.Min(minY, v.Y)
		maxX = math.Max(maxX, v.X)
		maxY = math.Max(maxY, v.Y)
	}
	return AxisAlignedRectangle{
		Min:    Point{minX, minY},
		Width:  maxX - minX,
		Height: maxY - minY,
	}
}

// ReferencePoint returns the polygon's intrinsic reference point: the
// bottom-left corner of its bounding box.
func (p Polygon) ReferencePoint() Point {
	return p.BoundingBox().Min
}

// Normalize translates p so its bounding-box center coincides with the
// origin.
func (p Polygon) Normalize() Polygon {
	center := p.BoundingBox().Center()
	return p.Translate(Vector{-center.X, -center.Y})
}

// Intersects reports whether p and other overlap, via the brute-force O(nm)
// pairwise edge test. Used only for raster classification, where the
// candidate sets are already small.
func (p Polygon) Intersects(other Polygon) bool {
	if p.Contains(other.Vertex(0)) || other.Contains(p.Vertex(0)) {
		return true
	}
	return DoSegmentsIntersect(toLineSegments(p.Edges()), toLineSegments(other.Edges()))
}

func toLineSegments(edges []DirectedLineSegment) []LineSegment {
	segs := make([]LineSegment, len(edges))
	for i, e := range edges {
		segs[i] = LineSegment{A: e.A, B: e.B}
	}
	return segs
}

// IsSimple reports whether p has any pair of non-adjacent edges that cross,
// via the same brute-force O(n^2) pairwise scan removeSelfIntersections uses
// to find a cut point, but stopping at the first hit instead of repairing it.
func (p Polygon) IsSimple() bool {
	n := p.N()
	if n < 3 {
		return false
	}
	edges := toLineSegments(p.Edges())
	for i := 0; i < n; i++ {
		for j := i + 2; j < n; j++ {
			if i == 0 && j == n-1 {
				continue // edges i and j are consecutive via wraparound
			}
			if _, ok := edges[i].Intersect(edges[j]); ok {
				return false
			}
		}
	}
	return true
}

// Clone returns an independent copy of p.
func (p Polygon) Clone() Polygon {
	out := make([]Point, len(p.Vertices))
	copy(out, p.Vertices)
	return Polygon{Vertices: out}
}
