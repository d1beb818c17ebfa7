// Package operator implements the shape-rewrite library: each operator is a
// stateless pure transform consuming one Polytope and producing a new,
// fully rebuilt one. Operators never mutate their input; they read it,
// emit raw vertex/face geometry, and hand that to the polytope builder.
package operator

import (
	"github.com/allytrope/shapeshift/geometry"
	"github.com/allytrope/shapeshift/polytope"
)

// Method selects how rectification places its new vertices.
type Method string

const (
	// ByMidsphere projects each edge onto the midsphere (the closest point
	// on the edge line to the origin). Requires a canonical polytope.
	ByMidsphere Method = "by_midsphere"

	// ByMidpoint uses the arithmetic edge midpoint. Always valid, but can
	// produce nonplanar faces on non-uniform input.
	ByMidpoint Method = "by_midpoint"
)

// Options carries the knobs shared across operators. The zero value is not
// useful; start from DefaultOptions.
type Options struct {
	// Fraction controls how far along each edge a truncation cut lands:
	// 2/3 is the classic truncation, 1 is rectification.
	Fraction float64

	// Method picks the rectification vertex placement.
	Method Method

	// Stellation is the 1-based intersection-distance tier; 1 is the base
	// polytope.
	Stellation int

	// Tolerance is the absolute vertex-welding tolerance.
	Tolerance float64

	// Workers bounds the fork-join fan-out for per-edge work.
	Workers int
}

// DefaultOptions returns the defaults every operator accepts.
func DefaultOptions() Options {
	return Options{
		Fraction:   2.0 / 3.0,
		Method:     ByMidsphere,
		Stellation: 1,
		Tolerance:  geometry.DefaultTolerance,
		Workers:    1,
	}
}

// Func is the shape of every operator.
type Func func(*polytope.Polytope, Options) (*polytope.Polytope, error)
