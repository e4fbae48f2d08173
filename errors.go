package nesting

import "fmt"

// Kind identifies the category of a NestingError, the idiomatic-Go analogue
// of the four error kinds a nesting run can fail with.
type Kind int

const (
	// InvalidInput means the part polygon is not simple, has fewer than 3
	// vertices, or has zero area.
	InvalidInput Kind = iota
	// GeometricDegeneracy means a geometric predicate that expected a
	// nondegenerate result failed: most commonly the part's offset curve
	// collapsing to fewer than 3 vertices because the configured clearance
	// is too large relative to the part.
	GeometricDegeneracy
	// ConfigOutOfRange means Config.Validate rejected a non-positive
	// radius, clearance, raster step, or an unknown criterion/strategy.
	ConfigOutOfRange
)

func (k Kind) String() string {
	switch k {
	case InvalidInput:
		return "invalid input"
	case GeometricDegeneracy:
		return "geometric degeneracy"
	case ConfigOutOfRange:
		return "config out of range"
	default:
		return "unknown"
	}
}

// NestingError is the error type every failure path in this package returns.
// A run that simply places nothing (EMPTY_RESULT) is not an error: it comes
// back as a RunResult with a zero-length placement list and a nil error.
type NestingError struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *NestingError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func (e *NestingError) Unwrap() error { return e.Err }

func newError(kind Kind, msg string) *NestingError {
	return &NestingError{Kind: kind, Msg: msg}
}
