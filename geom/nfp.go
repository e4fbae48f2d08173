package geom

import "sort"

// NoFitPolygon returns the locus of reference-point positions of the convex
// orbiting polygon such that it touches but does not overlap the convex
// fixed polygon. Both inputs must be convex and counter-clockwise.
//
// Construction: the reference point of fixed is its lowest-then-leftmost
// vertex; the reference point of orbiting is its highest-then-rightmost
// vertex. The edges of fixed, plus the reversed edges of orbiting, are
// sorted by direction angle and walked starting at fixed's reference point,
// summing edge vectors as we go.
func NoFitPolygon(fixed, orbiting []Point) []Point {
	fixedRef := LowestLeftmost(fixed)

	type edge struct {
		vec   Vector
		angle float64
	}
	edges := make([]edge, 0, len(fixed)+len(orbiting))

	n := len(fixed)
	for i := 0; i < n; i++ {
		v := fixed[(i+1)%n].Minus(fixed[i])
		edges = append(edges, edge{vec: v, angle: v.Angle()})
	}
	m := len(orbiting)
	for i := 0; i < m; i++ {
		// Reverse edge: orbiting walked backwards.
		v := orbiting[i].Minus(orbiting[(i+1)%m])
		edges = append(edges, edge{vec: v, angle: v.Angle()})
	}

	sort.Slice(edges, func(i, j int) bool { return edges[i].angle < edges[j].angle })

	poly := make([]Point, 0, len(edges)+1)
	cur := fixedRef
	poly = append(poly, cur)
	for _, e := range edges[:len(edges)-1] {
		cur = cur.Translate(e.vec)
		poly = append(poly, cur)
	}
	return poly
}

// LowestLeftmost returns the point with the smallest Y, breaking ties by the
// smallest X. Used as a convex polygon's reference point when it plays the
// role of the fixed polygon in a no-fit polygon construction.
func LowestLeftmost(points []Point) Point {
	best := points[0]
	for _, p := range points[1:] {
		if p.Y < best.Y || (p.Y == best.Y && p.X < best.X) {
			best = p
		}
	}
	return best
}

// HighestRightmost returns the point with the largest Y, breaking ties by
// the largest X. Used as a convex polygon's reference point when it plays
// the role of the orbiting polygon in a no-fit polygon construction.
func HighestRightmost(points []Point) Point {
	best := points[0]
	for _, p := range points[1:] {
		if p.Y > best.Y || (p.Y == best.Y && p.X > best.X) {
			best = p
		}
	}
	return best
}
