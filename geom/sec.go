package geom

import (
	"math"
	"math/rand"
)

// SECBuilder computes smallest enclosing circles using a seeded random
// source, so that runs are reproducible given the same seed — the nesting
// engine's determinism invariant depends on this.
type SECBuilder struct {
	rng *rand.Rand
}

// NewSECBuilder returns a builder seeded deterministically from seed.
func NewSECBuilder(seed int64) *SECBuilder {
	return &SECBuilder{rng: rand.New(rand.NewSource(seed))}
}

// maxSECAttempts bounds how many times SmallestEnclosingCircle reshuffles
// and restarts the incremental construction after hitting an exactly
// collinear triple, before giving up and falling back to bruteForceSEC.
const maxSECAttempts = 4

// SmallestEnclosingCircle returns the smallest circle containing every
// point in points, using Welzl's randomized incremental construction
// (expected O(n)). An exactly collinear triple during the construction
// triggers a reshuffle and retry; after maxSECAttempts such failures it
// falls back to a brute-force search, which is slower but never degenerate.
func (b *SECBuilder) SmallestEnclosingCircle(points []Point) Circle {
	if len(points) == 0 {
		return Circle{}
	}
	if len(points) == 1 {
		return Circle{Center: points[0], Radius: 0}
	}

	for attempt := 0; attempt < maxSECAttempts; attempt++ {
		if circle, ok := b.tryBuild(points); ok {
			return circle
		}
	}
	return bruteForceSEC(points)
}

func (b *SECBuilder) tryBuild(points []Point) (Circle, bool) {
	pts := make([]Point, len(points))
	copy(pts, points)
	b.rng.Shuffle(len(pts), func(i, j int) { pts[i], pts[j] = pts[j], pts[i] })

	circle := FromDiameter(pts[0], pts[1])
	for i := 2; i < len(pts); i++ {
		if circle.Contains(pts[i]) || onBoundary(circle, pts[i]) {
			continue
		}
		c, ok := b.circleWithPointOnBoundary(pts[:i], pts[i])
		if !ok {
			return Circle{}, false
		}
		circle = c
	}
	return circle, true
}

func onBoundary(c Circle, p Point) bool {
	return math.Abs(c.Center.DistanceTo(p)-c.Radius) < Epsilon
}

func (b *SECBuilder) circleWithPointOnBoundary(pts []Point, q Point) (Circle, bool) {
	circle := FromDiameter(q, pts[0])
	for i := 1; i < len(pts); i++ {
		if circle.Contains(pts[i]) || onBoundary(circle, pts[i]) {
			continue
		}
		c, ok := b.circleWithTwoPointsOnBoundary(pts[:i], q, pts[i])
		if !ok {
			return Circle{}, false
		}
		circle = c
	}
	return circle, true
}

func (b *SECBuilder) circleWithTwoPointsOnBoundary(pts []Point, q1, q2 Point) (Circle, bool) {
	circle := FromDiameter(q1, q2)
	for _, p := range pts {
		if circle.Contains(p) || onBoundary(circle, p) {
			continue
		}
		c, ok := CircleFrom3Points(q1, q2, p)
		if !ok {
			return Circle{}, false
		}
		circle = c
	}
	return circle, true
}

// bruteForceSEC computes the exact smallest enclosing circle in O(n^3) by
// testing every pair as a diameter and every non-collinear triple as a
// circumcircle, keeping the smallest candidate that encloses every point.
// Used only after the incremental construction has exhausted its retries.
func bruteForceSEC(points []Point) Circle {
	var best Circle
	have := false
	consider := func(c Circle) {
		if !enclosesAll(c, points) {
			return
		}
		if !have || c.Radius < best.Radius {
			best, have = c, true
		}
	}
	for i := 0; i < len(points); i++ {
		for j := i + 1; j < len(points); j++ {
			consider(FromDiameter(points[i], points[j]))
			for k := j + 1; k < len(points); k++ {
				if c, ok := CircleFrom3Points(points[i], points[j], points[k]); ok {
					consider(c)
				}
			}
		}
	}
	return best
}

func enclosesAll(c Circle, points []Point) bool {
	for _, p := range points {
		if !c.Contains(p) && !onBoundary(c, p) {
			return false
		}
	}
	return true
}
