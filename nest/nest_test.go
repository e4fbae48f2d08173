package nest

import (
	"testing"

	"github.com/saebelma/nesting/geom"
)

func squarePolygon(side float64) geom.Polygon {
	h := side / 2
	return geom.NewPolygon([]geom.Point{
		{X: -h, Y: -h}, {X: h, Y: -h}, {X: h, Y: h}, {X: -h, Y: h},
	})
}

func TestSearchSpaceDisjointness(t *testing.T) {
	s := NewSearchSpace()
	fit := []geom.IntegerVector{{X: 10, Y: 0}, {X: 0, Y: 10}, {X: -10, Y: 0}}
	nofit := []geom.IntegerVector{{X: 0, Y: 0}}
	s.AddPlacement(geom.IntegerVector{}, fit, nofit, AlwaysFit)

	for _, v := range s.FitTotal() {
		if s.noFitTotal.Contains(v) {
			t.Fatalf("fit_total and nofit_total must be disjoint, both contain %v", v)
		}
	}
}

func TestSearchSpaceNoFitOverridesFit(t *testing.T) {
	s := NewSearchSpace()
	s.AddPlacement(geom.IntegerVector{}, []geom.IntegerVector{{X: 5, Y: 5}}, nil, AlwaysFit)
	if !s.fitTotal.Contains(geom.IntegerVector{X: 5, Y: 5}) {
		t.Fatal("expected fit point to be present before a conflicting no-fit placement")
	}
	s.AddPlacement(geom.IntegerVector{}, nil, []geom.IntegerVector{{X: 5, Y: 5}}, AlwaysFit)
	if s.fitTotal.Contains(geom.IntegerVector{X: 5, Y: 5}) {
		t.Fatal("no-fit placement should remove a previously fit point")
	}
	if !s.noFitTotal.Contains(geom.IntegerVector{X: 5, Y: 5}) {
		t.Fatal("no-fit placement should be recorded in noFitTotal")
	}
}

func TestNoFitSpaceRasterSymmetry(t *testing.T) {
	p := squarePolygon(40)
	offset := geom.OffsetCurve(p, 5, 1)
	nfs := BuildNoFitSpace(offset, 10, 1)

	if len(nfs.FitPoints[CaseNN]) == 0 && len(nfs.NoFitPoints[CaseNN]) == 0 {
		t.Fatal("expected a non-empty raster for a simple square")
	}

	checkReflection := func(a, b []geom.IntegerVector, label string) {
		if len(a) != len(b) {
			t.Fatalf("%s: lengths differ (%d vs %d)", label, len(a), len(b))
		}
		set := geom.NewVectorSet(b...)
		for _, v := range a {
			if !set.Contains(v.Negate()) {
				t.Fatalf("%s: %v's negation missing from reflected set", label, v)
			}
		}
	}
	checkReflection(nfs.FitPoints[CaseNN], nfs.FitPoints[CaseRR], "FitPoints[NN] vs reflected FitPoints[RR]")
	checkReflection(nfs.NoFitPoints[CaseNN], nfs.NoFitPoints[CaseRR], "NoFitPoints[NN] vs reflected NoFitPoints[RR]")
	checkReflection(nfs.FitPoints[CaseNR], nfs.FitPoints[CaseRN], "FitPoints[NR] vs reflected FitPoints[RN]")
}

func TestConvexHullCriterionMonotonic(t *testing.T) {
	c := NewConvexHullCriterion()
	p := squarePolygon(10)
	c.AddPolygon(geom.IntegerVector{}, p)
	before := c.total.Clone()

	c.AddPolygon(geom.IntegerVector{X: 20, Y: 0}, p)
	after := c.total.Clone()

	for _, v := range before.Slice() {
		found := false
		for _, w := range after.Slice() {
			if v == w {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("convex hull criterion is not monotonic: %v dropped after a new placement", v)
		}
	}
}

func TestSimpleNestingPlacesSquareInDisk(t *testing.T) {
	params := Params{
		TableRadius:    250,
		PartClearance:  10,
		MaxNormalError: 1,
		RasterStep:     10,
		Criterion:      CriterionConvexHullArea,
	}
	part := squarePolygon(100)
	driver := NewSimpleNesting(part, params)
	placements := driver.Run()

	if len(placements) < 3 {
		t.Fatalf("expected at least 3 placements for a 100x100 square in a radius-250 table, got %d", len(placements))
	}

	var origin bool
	for _, p := range placements {
		if p.Position == (geom.IntegerVector{}) && p.Orientation == OrientationN {
			origin = true
		}
	}
	if !origin {
		t.Fatal("expected the first placement to be at the origin with normal orientation")
	}
}

func TestSimpleNestingNoFeasibleFit(t *testing.T) {
	params := Params{
		TableRadius:    100,
		PartClearance:  5,
		MaxNormalError: 1,
		RasterStep:     10,
		Criterion:      CriterionConvexHullArea,
	}
	part := squarePolygon(400)
	driver := NewSimpleNesting(part, params)
	placements := driver.Run()

	if len(placements) > 1 {
		t.Fatalf("a part far larger than the table should place at most once, got %d placements", len(placements))
	}
}

func TestSimpleNestingDeterministicWithSECCriterion(t *testing.T) {
	params := Params{
		TableRadius:    250,
		PartClearance:  10,
		MaxNormalError: 1,
		RasterStep:     10,
		Criterion:      CriterionSEC,
		RNGSeed:        42,
	}
	part := squarePolygon(100)

	run := func() []Placement {
		return NewSimpleNesting(part, params).Run()
	}
	p1, p2 := run(), run()
	if len(p1) != len(p2) {
		t.Fatalf("same seed should give identical placement counts: %d vs %d", len(p1), len(p2))
	}
	for i := range p1 {
		if p1[i] != p2[i] {
			t.Fatalf("placement %d differs between identically seeded runs: %v vs %v", i, p1[i], p2[i])
		}
	}
}
