package nesting

import (
	"fmt"
	"io"
	"log/slog"
)

// Criterion selects the area-minimizing scoring function a driver uses when
// choosing the next placement.
type Criterion int

const (
	CriterionConvexHullArea Criterion = iota
	CriterionSEC
)

func (c Criterion) String() string {
	switch c {
	case CriterionSEC:
		return "sec"
	default:
		return "convex-hull-area"
	}
}

// ParseCriterion resolves a criterion by name, for config files and CLI
// flags.
func ParseCriterion(name string) (Criterion, error) {
	switch name {
	case "convex-hull-area", "":
		return CriterionConvexHullArea, nil
	case "sec":
		return CriterionSEC, nil
	default:
		return 0, fmt.Errorf("unknown criterion %q", name)
	}
}

// Strategy selects which driver Run dispatches to.
type Strategy int

const (
	StrategySimple Strategy = iota
	StrategyTuple
)

func (s Strategy) String() string {
	switch s {
	case StrategyTuple:
		return "tuple"
	default:
		return "simple"
	}
}

// ParseStrategy resolves a strategy by name.
func ParseStrategy(name string) (Strategy, error) {
	switch name {
	case "simple", "":
		return StrategySimple, nil
	case "tuple":
		return StrategyTuple, nil
	default:
		return 0, fmt.Errorf("unknown strategy %q", name)
	}
}

// Config carries every numeric and behavioral knob a nesting run needs.
// There are no package-level mutable defaults: every run is a pure function
// of an explicit Config.
type Config struct {
	// TableRadius is the radius of the container disk.
	TableRadius float64
	// PartClearance is the required minimum distance between any pair of
	// parts and between each part and the table boundary.
	PartClearance float64
	// MaxNormalError is the maximum allowed chord-to-arc error in the
	// polygonized parallel curve.
	MaxNormalError float64
	// RasterStep is the integer lattice step for fit/no-fit sets.
	RasterStep int
	// Criterion is the scoring function for the simple driver and for each
	// sub-step of the tuple driver.
	Criterion Criterion
	// Strategy selects which driver Run uses.
	Strategy Strategy
	// RNGSeed seeds the smallest-enclosing-circle construction, the only
	// source of randomness in the engine. Determinism is a hard invariant,
	// so there is no silent time-based fallback: the zero value is a valid,
	// reproducible seed like any other.
	RNGSeed int64
	// Logger receives one structured line when a run starts and one when it
	// completes; the drivers themselves do not log. Nil (the default)
	// disables logging.
	Logger *slog.Logger
}

// DefaultConfig returns the parameter set the originating domain's own
// defaults use: a 1320-unit table radius and 22-unit clearance, matching
// typical CNC cutting-table dimensions, with convex-hull-area scoring and
// the simple driver.
func DefaultConfig() Config {
	return Config{
		TableRadius:    1320,
		PartClearance:  22,
		MaxNormalError: 1,
		RasterStep:     10,
		Criterion:      CriterionConvexHullArea,
		Strategy:       StrategySimple,
	}
}

// Validate rejects a config before any geometry runs: non-positive radius,
// clearance or raster step, or an unrecognized criterion/strategy value.
func (c Config) Validate() error {
	if c.TableRadius <= 0 {
		return newError(ConfigOutOfRange, fmt.Sprintf("table radius must be positive, got %v", c.TableRadius))
	}
	if c.PartClearance <= 0 {
		return newError(ConfigOutOfRange, fmt.Sprintf("part clearance must be positive, got %v", c.PartClearance))
	}
	if c.MaxNormalError <= 0 {
		return newError(ConfigOutOfRange, fmt.Sprintf("max normal error must be positive, got %v", c.MaxNormalError))
	}
	if c.RasterStep <= 0 {
		return newError(ConfigOutOfRange, fmt.Sprintf("raster step must be positive, got %v", c.RasterStep))
	}
	if c.Criterion != CriterionConvexHullArea && c.Criterion != CriterionSEC {
		return newError(ConfigOutOfRange, fmt.Sprintf("unknown criterion %v", c.Criterion))
	}
	if c.Strategy != StrategySimple && c.Strategy != StrategyTuple {
		return newError(ConfigOutOfRange, fmt.Sprintf("unknown strategy %v", c.Strategy))
	}
	return nil
}

func (c Config) logger() *slog.Logger {
	if c.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return c.Logger
}
