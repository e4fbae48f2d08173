package geom

import "math"

// ParallelCurve returns the polygonized parallel curve of poly at normal
// distance r: each edge's parallel segment on its right side, joined at
// convex vertices by a circular arc discretized so that no chord deviates
// from the true arc by more than delta (the configured maximum normal
// error). At reflex vertices the curve is not arced; the two parallel
// segments are left to cross, which OffsetCurve's self-intersection removal
// resolves.
//
// The result is not guaranteed simple; callers that need a simple offset
// polygon should call OffsetCurve instead.
func ParallelCurve(poly Polygon, r, delta float64) []Point {
	n := poly.N()
	if n == 0 {
		return nil
	}
	parallels := make([]DirectedLineSegment, n)
	for i := 0; i < n; i++ {
		parallels[i] = poly.Edge(i).ParallelSegment(r)
	}

	alphaMax := maxArcAngle(r, delta)

	out := make([]Point, 0, n*2)
	for i := 0; i < n; i++ {
		seg := parallels[i]
		out = append(out, seg.A, seg.B)

		next := parallels[(i+1)%n]
		vertex := poly.Vertex(i + 1)
		if seg.Vector().Cross(next.Vector()) > 0 {
			// Convex vertex: bridge with a discretized outward arc.
			out = append(out, arcPoints(vertex, r, seg.B, next.A, alphaMax)...)
		}
		// Reflex vertex: no bridge; seg.B and next.A are left to cross.
	}
	return out
}

// maxArcAngle returns the largest central angle a single arc chord may span
// while keeping the chord-to-arc normal error within delta, for an arc of
// radius r.
func maxArcAngle(r, delta float64) float64 {
	rd := r + delta
	v := math.Sqrt(rd*rd-r*r) / rd
	return 2 * math.Asin(v)
}

func arcPoints(center Point, radius float64, from, to Point, alphaMax float64) []Point {
	startAngle := from.Minus(center).Angle()
	endAngle := to.Minus(center).Angle()
	arc := CircularArc{Center: center, Radius: radius, StartAngle: startAngle, EndAngle: endAngle}
	alpha := arc.CentralAngle()
	nSub := int(math.Ceil(alpha / alphaMax))
	if nSub < 1 {
		nSub = 1
	}
	pts := make([]Point, 0, nSub-1)
	for k := 1; k < nSub; k++ {
		pts = append(pts, arc.PointAt(alpha*float64(k)/float64(nSub)))
	}
	return pts
}

// OffsetCurve returns the simple offset polygon of poly at clearance r: the
// polygonized parallel curve with self-intersections removed.
func OffsetCurve(poly Polygon, r, maxNormalError float64) Polygon {
	raw := ParallelCurve(poly, r, maxNormalError)
	return removeSelfIntersections(raw)
}

// removeSelfIntersections implements the source's self-intersection removal:
// start at a convex-hull vertex (guaranteed to lie on the outer boundary),
// then repeatedly scan all non-consecutive edge pairs; on the first
// intersection found, cut the loop between them by replacing the first
// edge's endpoint with the intersection point and deleting every vertex in
// between, then restart the scan. Terminates when a full scan finds none.
func removeSelfIntersections(vertices []Point) Polygon {
	if len(vertices) < 3 {
		return Polygon{Vertices: vertices}
	}

	hull := ConvexHull(vertices)
	start := indexOfPoint(vertices, hull[0])
	vertices = rotate(vertices, start)

	for {
		n := len(vertices)
		cut := false
		for i := 0; i < n && !cut; i++ {
			segI := LineSegment{A: vertices[i], B: vertices[(i+1)%n]}
			for j := i + 2; j < n; j++ {
				if i == 0 && j == n-1 {
					continue // edges i and j are consecutive via wraparound
				}
				segJ := LineSegment{A: vertices[j], B: vertices[(j+1)%n]}
				pt, ok := segI.Intersect(segJ)
				if !ok {
					continue
				}
				next := make([]Point, 0, n-(j-i-1))
				next = append(next, vertices[:i+1]...)
				next = append(next, pt)
				next = append(next, vertices[j+1:]...)
				vertices = next
				cut = true
				break
			}
		}
		if !cut {
			break
		}
	}

	return Polygon{Vertices: vertices}
}

func indexOfPoint(points []Point, p Point) int {
	for i, q := range points {
		if q == p {
			return i
		}
	}
	return 0
}

func rotate(points []Point, start int) []Point {
	if start == 0 {
		return points
	}
	out := make([]Point, 0, len(points))
	out = append(out, points[start:]...)
	out = append(out, points[:start]...)
	return out
}
