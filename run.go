// Package nesting runs the irregular-shape nesting engine end to end: it
// validates a Config, normalizes and offsets the input part, and dispatches
// to either the single-part-at-a-time simple driver (package nest) or the
// hybrid tuple driver (package tuple), returning an ordered placement list.
package nesting

import (
	"time"

	"github.com/google/uuid"

	"github.com/saebelma/nesting/geom"
	"github.com/saebelma/nesting/nest"
	"github.com/saebelma/nesting/tuple"
)

// Placement is one placed copy of the part in the simple driver's output:
// a table-coordinate position and the orientation it was placed in.
type Placement struct {
	Position    geom.IntegerVector
	Orientation nest.Orientation
}

// RunResult is the outcome of one nesting run. For Strategy == StrategySimple,
// Placements holds the placed positions/orientations, in table coordinates,
// and Polygons is nil. For Strategy == StrategyTuple, Polygons holds the
// placed original part outlines, already re-centered on the table, and
// Placements is nil: a tuple arrangement is a fixed group of polygons, not a
// simple per-position/orientation list.
type RunResult struct {
	RunID      string
	Placements []Placement
	Polygons   []geom.Polygon
	Iterations int
	Duration   time.Duration
}

// Run validates cfg, normalizes part, builds its offset curve and no-fit
// raster, and places as many copies as the configured strategy can fit on
// the table.
func Run(part geom.Polygon, cfg Config) (RunResult, error) {
	if err := cfg.Validate(); err != nil {
		return RunResult{}, err
	}
	if err := validatePart(part); err != nil {
		return RunResult{}, err
	}
	if err := checkOffsetCurve(part, cfg); err != nil {
		return RunResult{}, err
	}

	runID := uuid.New().String()[:8]
	logger := cfg.logger().With("run_id", runID)
	start := time.Now()

	params := nest.Params{
		TableRadius:    cfg.TableRadius,
		PartClearance:  cfg.PartClearance,
		MaxNormalError: cfg.MaxNormalError,
		RasterStep:     cfg.RasterStep,
		Criterion:      nestCriterion(cfg.Criterion),
		RNGSeed:        cfg.RNGSeed,
	}

	switch cfg.Strategy {
	case StrategyTuple:
		logger.Info("starting tuple nesting run", "table_radius", cfg.TableRadius, "clearance", cfg.PartClearance)
		driver := tuple.NewDriver(part, params)
		arrangement := driver.Run()
		logger.Info("tuple nesting run complete", "placed", len(arrangement.Polygons))
		return RunResult{
			RunID:      runID,
			Polygons:   arrangement.Polygons,
			Iterations: len(arrangement.Polygons),
			Duration:   time.Since(start),
		}, nil
	default:
		logger.Info("starting simple nesting run", "table_radius", cfg.TableRadius, "clearance", cfg.PartClearance)
		driver := nest.NewSimpleNesting(part, params)
		placements := driver.Run()
		logger.Info("simple nesting run complete", "placed", len(placements))
		return RunResult{
			RunID:      runID,
			Placements: toPlacements(placements),
			Iterations: len(placements),
			Duration:   time.Since(start),
		}, nil
	}
}

func toPlacements(in []nest.Placement) []Placement {
	out := make([]Placement, len(in))
	for i, p := range in {
		out[i] = Placement{Position: p.Position, Orientation: p.Orientation}
	}
	return out
}

func nestCriterion(c Criterion) nest.CriterionKind {
	if c == CriterionSEC {
		return nest.CriterionSEC
	}
	return nest.CriterionConvexHullArea
}

func validatePart(part geom.Polygon) error {
	if part.N() < 3 {
		return newError(InvalidInput, "part must have at least 3 vertices")
	}
	if part.Area() == 0 {
		return newError(InvalidInput, "part has zero area")
	}
	if !part.IsSimple() {
		return newError(InvalidInput, "part is not a simple polygon")
	}
	return nil
}

// checkOffsetCurve rejects a part/clearance combination whose offset curve
// collapses to fewer than 3 vertices, which self-intersection removal can
// produce when the clearance is large relative to the part: the resulting
// degenerate polygon has no well-defined convex hull or fit/no-fit raster.
func checkOffsetCurve(part geom.Polygon, cfg Config) error {
	offset := geom.OffsetCurve(part.Normalize(), cfg.PartClearance, cfg.MaxNormalError)
	if offset.N() < 3 {
		return newError(GeometricDegeneracy, "offset curve collapsed to fewer than 3 vertices; clearance is too large for this part")
	}
	return nil
}
