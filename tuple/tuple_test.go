package tuple

import (
	"math"
	"testing"

	"github.com/saebelma/nesting/geom"
	"github.com/saebelma/nesting/nest"
)

func squarePolygon(side float64) geom.Polygon {
	h := side / 2
	return geom.NewPolygon([]geom.Point{
		{X: -h, Y: -h}, {X: h, Y: -h}, {X: h, Y: h}, {X: -h, Y: h},
	})
}

func TestSpaceReflectIsInvolution(t *testing.T) {
	fit := []geom.IntegerVector{{X: 10, Y: 0}, {X: 0, Y: 10}}
	nofit := []geom.IntegerVector{{X: 5, Y: 5}}
	s := NewSpace(fit, nofit)
	back := s.Reflect().Reflect()

	if len(back.FitTotal()) != len(s.FitTotal()) || len(back.NoFitTotal()) != len(s.NoFitTotal()) {
		t.Fatal("reflecting a space twice should reproduce the original sets")
	}
}

func TestSpaceAddSubtractPreservesDisjointness(t *testing.T) {
	s1 := NewSpace([]geom.IntegerVector{{X: 20, Y: 0}, {X: 0, Y: 20}}, []geom.IntegerVector{{X: 0, Y: 0}})
	s2 := NewSpace([]geom.IntegerVector{{X: 0, Y: 20}}, []geom.IntegerVector{{X: 20, Y: 0}})

	composed := s1.AddSubtract(s2, geom.IntegerVector{X: 5, Y: 5})
	fit := geom.NewVectorSet(composed.FitTotal()...)
	nofit := geom.NewVectorSet(composed.NoFitTotal()...)
	for _, v := range fit.Slice() {
		if nofit.Contains(v) {
			t.Fatalf("composed space is not disjoint: %v is in both fit and no-fit totals", v)
		}
	}
}

func TestPolygonSetReflectFlipsOrientation(t *testing.T) {
	ps := PolygonSet{Members: []Member{
		{Offset: geom.IntegerVector{}, Orientation: nest.OrientationN},
		{Offset: geom.IntegerVector{X: 30, Y: 0}, Orientation: nest.OrientationN},
	}}
	reflected := ps.Reflect()

	if reflected.Members[0].Orientation != nest.OrientationR || reflected.Members[1].Orientation != nest.OrientationR {
		t.Fatal("reflecting a polygon set should flip every member's orientation")
	}
	if reflected.Members[1].Offset != (geom.IntegerVector{X: -30, Y: 0}) {
		t.Fatalf("reflecting a polygon set should negate every member's offset, got %v", reflected.Members[1].Offset)
	}
}

func TestCombineKeepsFirstMemberAtOrigin(t *testing.T) {
	a := single(nest.OrientationN)
	b := single(nest.OrientationR)
	combined := Combine(a, b, geom.IntegerVector{X: 40, Y: 0})

	if combined.Members[0].Offset != (geom.IntegerVector{}) {
		t.Fatal("Combine must keep the anchor set's first member at the local origin")
	}
	if combined.Members[1].Offset != (geom.IntegerVector{X: 40, Y: 0}) {
		t.Fatalf("expected the probe member to sit at the composition offset, got %v", combined.Members[1].Offset)
	}
}

func TestDriverRunPlacesMultipleSquares(t *testing.T) {
	params := nest.Params{
		TableRadius:    300,
		PartClearance:  10,
		MaxNormalError: 1,
		RasterStep:     10,
		Criterion:      nest.CriterionSEC,
		RNGSeed:        7,
	}
	part := squarePolygon(80)
	driver := NewDriver(part, params)
	arrangement := driver.Run()

	if len(arrangement.Polygons) < 2 {
		t.Fatalf("expected tuple nesting to place at least 2 copies of an 80x80 square on a radius-300 table, got %d", len(arrangement.Polygons))
	}

	table := geom.Circle{Radius: params.TableRadius}
	for i, p := range arrangement.Polygons {
		for _, v := range p.Vertices {
			if !table.Contains(v) {
				t.Fatalf("original part %d has a vertex outside the table disk after re-centering: %v", i, v)
			}
		}
	}
}

func TestDriverRunReportsOriginalPartNotOffsetCurve(t *testing.T) {
	params := nest.Params{
		TableRadius:    300,
		PartClearance:  40,
		MaxNormalError: 1,
		RasterStep:     10,
		Criterion:      nest.CriterionSEC,
		RNGSeed:        7,
	}
	part := squarePolygon(80)
	driver := NewDriver(part, params)
	arrangement := driver.Run()
	if len(arrangement.Polygons) == 0 {
		t.Fatal("expected at least one placement")
	}

	wantArea := part.Area()
	for i, p := range arrangement.Polygons {
		if gotArea := p.Area(); math.Abs(gotArea-wantArea) > 1e-6*wantArea {
			t.Fatalf("polygon %d has area %v, want the original part's area %v (clearance should not inflate reported output)", i, gotArea, wantArea)
		}
	}
}

func TestDriverRunDeterministic(t *testing.T) {
	params := nest.Params{
		TableRadius:    300,
		PartClearance:  10,
		MaxNormalError: 1,
		RasterStep:     10,
		Criterion:      nest.CriterionSEC,
		RNGSeed:        3,
	}
	part := squarePolygon(80)

	run := func() int {
		return len(NewDriver(part, params).Run().Polygons)
	}
	n1, n2 := run(), run()
	if n1 != n2 {
		t.Fatalf("identical seed and parameters should produce identical placement counts: %d vs %d", n1, n2)
	}
}

func TestDriverRunTooLargeFallsBackGracefully(t *testing.T) {
	params := nest.Params{
		TableRadius:    50,
		PartClearance:  5,
		MaxNormalError: 1,
		RasterStep:     10,
		Criterion:      nest.CriterionConvexHullArea,
	}
	part := squarePolygon(400)
	driver := NewDriver(part, params)
	arrangement := driver.Run()

	if len(arrangement.Polygons) > 1 {
		t.Fatalf("a part far larger than the table should place at most once, got %d", len(arrangement.Polygons))
	}
}
