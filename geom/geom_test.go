package geom

import (
	"math"
	"testing"
)

func square(side float64) Polygon {
	h := side / 2
	return NewPolygon([]Point{
		{-h, -h}, {h, -h}, {h, h}, {-h, h},
	})
}

func TestPolygonAreaAndCCW(t *testing.T) {
	p := square(10)
	if got := p.Area(); math.Abs(got-100) > 1e-9 {
		t.Fatalf("area = %v, want 100", got)
	}
	if p.SignedArea() <= 0 {
		t.Fatalf("expected CCW polygon, signed area = %v", p.SignedArea())
	}
}

func TestPolygonContains(t *testing.T) {
	p := square(10)
	if !p.Contains(Point{0, 0}) {
		t.Fatal("origin should be inside unit square")
	}
	if p.Contains(Point{100, 100}) {
		t.Fatal("far point should not be inside")
	}
}

func TestPolygonVertexWraps(t *testing.T) {
	p := square(10)
	if p.Vertex(0) != p.Vertex(4) {
		t.Fatal("Vertex should wrap modulo vertex count")
	}
	if p.Vertex(-1) != p.Vertex(3) {
		t.Fatal("Vertex should wrap for negative indices too")
	}
}

func TestRotate180Involution(t *testing.T) {
	p := square(10).Translate(Vector{3, -7})
	got := p.Rotate180().Rotate180()
	for i := range p.Vertices {
		if math.Abs(got.Vertices[i].X-p.Vertices[i].X) > 1e-9 ||
			math.Abs(got.Vertices[i].Y-p.Vertices[i].Y) > 1e-9 {
			t.Fatalf("rotate180 twice should be identity, got %v want %v", got.Vertices[i], p.Vertices[i])
		}
	}
}

func TestConvexHullOfSquareIsItself(t *testing.T) {
	p := square(10)
	hull := ConvexHull(p.Vertices)
	if len(hull) != 4 {
		t.Fatalf("hull of square should have 4 vertices, got %d", len(hull))
	}
	if math.Abs(Polygon{Vertices: hull}.Area()-100) > 1e-9 {
		t.Fatalf("hull area = %v, want 100", Polygon{Vertices: hull}.Area())
	}
}

func TestConvexHullIdempotent(t *testing.T) {
	pts := []Point{{0, 0}, {4, 0}, {4, 4}, {0, 4}, {2, 2}, {1, 1}, {3, 3}}
	hull1 := ConvexHull(pts)
	hull2 := ConvexHull(hull1)
	if len(hull1) != len(hull2) {
		t.Fatalf("hull(hull(S)) should equal hull(S) as a set: %d vs %d", len(hull1), len(hull2))
	}
}

func TestConvexHullTriangle(t *testing.T) {
	pts := []Point{{0, 0}, {10, 0}, {5, 10}, {5, 5}}
	hull := ConvexHull(pts)
	if len(hull) != 3 {
		t.Fatalf("expected triangle hull (interior point dropped), got %d points: %v", len(hull), hull)
	}
}

func TestSmallestEnclosingCircleOfSquare(t *testing.T) {
	p := square(10)
	b := NewSECBuilder(42)
	c := b.SmallestEnclosingCircle(p.Vertices)
	wantRadius := math.Hypot(5, 5)
	if math.Abs(c.Radius-wantRadius) > 1e-6 {
		t.Fatalf("radius = %v, want %v", c.Radius, wantRadius)
	}
	if math.Abs(c.Center.X) > 1e-6 || math.Abs(c.Center.Y) > 1e-6 {
		t.Fatalf("center = %v, want origin", c.Center)
	}
}

func TestSmallestEnclosingCircleDeterministic(t *testing.T) {
	pts := []Point{{0, 0}, {10, 3}, {-4, 8}, {2, -6}, {5, 5}, {-7, -2}}
	c1 := NewSECBuilder(42).SmallestEnclosingCircle(pts)
	c2 := NewSECBuilder(42).SmallestEnclosingCircle(pts)
	if c1 != c2 {
		t.Fatalf("same seed should give identical circle: %v vs %v", c1, c2)
	}
}

func TestMinimumBoundingBoxOfSquare(t *testing.T) {
	p := square(10)
	hull := ConvexHull(p.Vertices)
	rect := MinimumBoundingBox(hull)
	if math.Abs(rect.Area()-100) > 1e-6 {
		t.Fatalf("bounding box area = %v, want 100", rect.Area())
	}
}

func TestNoFitPolygonOfTwoSquares(t *testing.T) {
	a := square(10).Vertices
	b := square(10).Vertices
	nfp := NoFitPolygon(a, b)
	if len(nfp) == 0 {
		t.Fatal("expected non-empty no-fit polygon")
	}
	// The no-fit polygon of two equal squares is itself a 20x20 square.
	if math.Abs(Polygon{Vertices: nfp}.Area()-400) > 1e-6 {
		t.Fatalf("nfp area = %v, want 400", Polygon{Vertices: nfp}.Area())
	}
}

func TestOffsetCurveContainsOriginal(t *testing.T) {
	p := square(10)
	offset := OffsetCurve(p, 5, 1)
	for _, v := range p.Vertices {
		if !offset.Contains(v) {
			t.Fatalf("offset polygon should contain original vertex %v", v)
		}
	}
	if offset.Area() <= p.Area() {
		t.Fatalf("offset polygon should be larger than original: %v vs %v", offset.Area(), p.Area())
	}
}

func TestVectorSetOrderingAndDisjointness(t *testing.T) {
	s := NewVectorSet(IntegerVector{3, 1}, IntegerVector{1, 5}, IntegerVector{1, 2})
	got := s.Slice()
	want := []IntegerVector{{1, 2}, {1, 5}, {3, 1}}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("index %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestVectorSetRemove(t *testing.T) {
	s := NewVectorSet(IntegerVector{0, 0}, IntegerVector{1, 1})
	if !s.Remove(IntegerVector{0, 0}) {
		t.Fatal("expected remove to report success")
	}
	if s.Contains(IntegerVector{0, 0}) {
		t.Fatal("removed vector should no longer be a member")
	}
	if s.Remove(IntegerVector{9, 9}) {
		t.Fatal("removing absent vector should report false")
	}
}

func TestIntegerVectorEqualityIsExact(t *testing.T) {
	a := IntegerVector{3, 4}
	b := IntegerVector{3, 4}
	c := IntegerVector{4, 3}
	if a != b {
		t.Fatal("equal integer vectors should compare equal")
	}
	if a == c {
		t.Fatal("distinct integer vectors should not compare equal")
	}
}

func TestCircleStrictContainment(t *testing.T) {
	c := Circle{Center: Point{0, 0}, Radius: 10}
	if c.Contains(Point{10, 0}) {
		t.Fatal("point exactly on the boundary must not be contained (strict <)")
	}
	if !c.Contains(Point{9.999, 0}) {
		t.Fatal("point just inside the boundary should be contained")
	}
}
