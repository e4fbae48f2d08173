package nesting

import (
	"errors"
	"testing"

	"github.com/saebelma/nesting/geom"
)

func squarePolygon(side float64) geom.Polygon {
	h := side / 2
	return geom.NewPolygon([]geom.Point{
		{X: -h, Y: -h}, {X: h, Y: -h}, {X: h, Y: h}, {X: -h, Y: h},
	})
}

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config should validate, got %v", err)
	}
}

func TestConfigValidateRejectsNonPositiveFields(t *testing.T) {
	cases := []Config{
		{TableRadius: 0, PartClearance: 10, MaxNormalError: 1, RasterStep: 10},
		{TableRadius: 100, PartClearance: -1, MaxNormalError: 1, RasterStep: 10},
		{TableRadius: 100, PartClearance: 10, MaxNormalError: 0, RasterStep: 10},
		{TableRadius: 100, PartClearance: 10, MaxNormalError: 1, RasterStep: 0},
	}
	for i, cfg := range cases {
		err := cfg.Validate()
		if err == nil {
			t.Fatalf("case %d: expected a ConfigOutOfRange error, got nil", i)
		}
		var nestingErr *NestingError
		if !errors.As(err, &nestingErr) || nestingErr.Kind != ConfigOutOfRange {
			t.Fatalf("case %d: expected ConfigOutOfRange, got %v", i, err)
		}
	}
}

func TestRunRejectsDegeneratePart(t *testing.T) {
	cfg := DefaultConfig()
	_, err := Run(geom.Polygon{Vertices: []geom.Point{{X: 0, Y: 0}, {X: 1, Y: 0}}}, cfg)
	var nestingErr *NestingError
	if !errors.As(err, &nestingErr) || nestingErr.Kind != InvalidInput {
		t.Fatalf("expected InvalidInput for a 2-vertex polygon, got %v", err)
	}
}

func TestRunRejectsSelfIntersectingPart(t *testing.T) {
	cfg := DefaultConfig()
	bowtie := geom.NewPolygon([]geom.Point{
		{X: 0, Y: 0}, {X: 10, Y: 10}, {X: 10, Y: 0}, {X: 0, Y: 10},
	})
	_, err := Run(bowtie, cfg)
	var nestingErr *NestingError
	if !errors.As(err, &nestingErr) || nestingErr.Kind != InvalidInput {
		t.Fatalf("expected InvalidInput for a self-intersecting polygon, got %v", err)
	}
}

func TestRunSimpleStrategyPlacesSquare(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TableRadius = 250
	cfg.PartClearance = 10

	result, err := Run(squarePolygon(100), cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Placements) < 3 {
		t.Fatalf("expected at least 3 placements, got %d", len(result.Placements))
	}
	if result.RunID == "" {
		t.Fatal("expected a non-empty run id")
	}
}

func TestRunTupleStrategyPlacesPolygons(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TableRadius = 300
	cfg.PartClearance = 10
	cfg.Criterion = CriterionSEC
	cfg.Strategy = StrategyTuple

	result, err := Run(squarePolygon(80), cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Polygons) < 2 {
		t.Fatalf("expected at least 2 placed polygons, got %d", len(result.Polygons))
	}
	if len(result.Placements) != 0 {
		t.Fatalf("tuple strategy should not populate Placements, got %d entries", len(result.Placements))
	}
}

func TestRunIsDeterministicForSameSeed(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TableRadius = 250
	cfg.PartClearance = 10
	cfg.Criterion = CriterionSEC
	cfg.RNGSeed = 11

	part := squarePolygon(100)
	r1, err1 := Run(part, cfg)
	r2, err2 := Run(part, cfg)
	if err1 != nil || err2 != nil {
		t.Fatalf("unexpected errors: %v, %v", err1, err2)
	}
	if len(r1.Placements) != len(r2.Placements) {
		t.Fatalf("identical seed should give identical placement counts: %d vs %d", len(r1.Placements), len(r2.Placements))
	}
	for i := range r1.Placements {
		if r1.Placements[i] != r2.Placements[i] {
			t.Fatalf("placement %d differs between identically seeded runs", i)
		}
	}
}
