// Command nest is a thin CLI front end for the nesting engine: read one
// polygon from a JSON file, run a nesting, print the placement list as
// JSON. It is the only place in this module that touches a file; the core
// nesting.Run never does.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/saebelma/nesting"
	"github.com/saebelma/nesting/geom"
)

type vertex struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type placementOut struct {
	X           float64 `json:"x"`
	Y           float64 `json:"y"`
	Orientation string  `json:"orientation"`
}

type polygonOut struct {
	Vertices []vertex `json:"vertices"`
}

type outputDoc struct {
	RunID      string         `json:"runId"`
	Placements []placementOut `json:"placements,omitempty"`
	Polygons   []polygonOut   `json:"polygons,omitempty"`
	Iterations int            `json:"iterations"`
	DurationMs float64        `json:"durationMs"`
}

func main() {
	var (
		inputPath     = flag.String("input", "", "path to a JSON file holding an array of {x,y} vertices")
		outputPath    = flag.String("output", "", "path to write the resulting placement list as JSON (default: stdout)")
		tableRadius   = flag.Float64("table-radius", nesting.DefaultConfig().TableRadius, "radius of the container disk")
		clearance     = flag.Float64("clearance", nesting.DefaultConfig().PartClearance, "minimum distance between parts and to the table boundary")
		maxNormalErr  = flag.Float64("max-normal-error", nesting.DefaultConfig().MaxNormalError, "maximum chord-to-arc error in the offset curve")
		rasterStep    = flag.Int("raster-step", nesting.DefaultConfig().RasterStep, "integer lattice step for fit/no-fit sets")
		criterionName = flag.String("criterion", "convex-hull-area", "placement criterion: convex-hull-area or sec")
		strategyName  = flag.String("strategy", "simple", "nesting strategy: simple or tuple")
		seed          = flag.Int64("seed", 0, "RNG seed for the smallest-enclosing-circle construction")
		verbose       = flag.Bool("verbose", false, "emit structured progress logging to stderr")
	)
	flag.Parse()

	if *inputPath == "" {
		fmt.Fprintln(os.Stderr, "nest: -input is required")
		os.Exit(2)
	}

	criterion, err := nesting.ParseCriterion(*criterionName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "nest: %v\n", err)
		os.Exit(2)
	}
	strategy, err := nesting.ParseStrategy(*strategyName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "nest: %v\n", err)
		os.Exit(2)
	}

	cfg := nesting.Config{
		TableRadius:    *tableRadius,
		PartClearance:  *clearance,
		MaxNormalError: *maxNormalErr,
		RasterStep:     *rasterStep,
		Criterion:      criterion,
		Strategy:       strategy,
		RNGSeed:        *seed,
	}
	if *verbose {
		cfg.Logger = slog.New(slog.NewTextHandler(os.Stderr, nil))
	}

	part, err := readPart(*inputPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "nest: %v\n", err)
		os.Exit(1)
	}

	result, err := nesting.Run(part, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "nest: %v\n", err)
		os.Exit(1)
	}

	if err := writeResult(*outputPath, result); err != nil {
		fmt.Fprintf(os.Stderr, "nest: %v\n", err)
		os.Exit(1)
	}
}

func readPart(path string) (geom.Polygon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return geom.Polygon{}, fmt.Errorf("reading %s: %w", path, err)
	}
	var vertices []vertex
	if err := json.Unmarshal(data, &vertices); err != nil {
		return geom.Polygon{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	points := make([]geom.Point, len(vertices))
	for i, v := range vertices {
		points[i] = geom.Point{X: v.X, Y: v.Y}
	}
	return geom.NewPolygon(points), nil
}

func writeResult(path string, result nesting.RunResult) error {
	doc := outputDoc{
		RunID:      result.RunID,
		Iterations: result.Iterations,
		DurationMs: float64(result.Duration.Microseconds()) / 1000,
	}
	for _, p := range result.Placements {
		orientation := "N"
		if p.Orientation != 0 {
			orientation = "R"
		}
		doc.Placements = append(doc.Placements, placementOut{
			X:           float64(p.Position.X),
			Y:           float64(p.Position.Y),
			Orientation: orientation,
		})
	}
	for _, poly := range result.Polygons {
		out := polygonOut{Vertices: make([]vertex, len(poly.Vertices))}
		for i, v := range poly.Vertices {
			out.Vertices[i] = vertex{X: v.X, Y: v.Y}
		}
		doc.Polygons = append(doc.Polygons, out)
	}

	encoded, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding result: %w", err)
	}
	encoded = append(encoded, '\n')

	if path == "" {
		_, err := os.Stdout.Write(encoded)
		return err
	}
	return os.WriteFile(path, encoded, 0644)
}
