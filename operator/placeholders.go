package operator

import (
	"fmt"

	"github.com/allytrope/shapeshift/polytope"
)

// The operators below are declared but not yet implemented. Their contract:
// return the input polytope unchanged together with an error wrapping
// ErrUnfinished, which the registry converts into an identity result plus a
// diagnostic. They never corrupt data and never panic.

// Cap slices a pyramid off the polytope at a face.
func Cap(p *polytope.Polytope, o Options) (*polytope.Polytope, error) {
	return p, fmt.Errorf("cap: %w", ErrUnfinished)
}

// Bridge joins two faces with a prism of new faces.
func Bridge(p *polytope.Polytope, o Options) (*polytope.Polytope, error) {
	return p, fmt.Errorf("bridge: %w", ErrUnfinished)
}

// Decompose slices the polytope into two or more parts.
func Decompose(p *polytope.Polytope, o Options) (*polytope.Polytope, error) {
	return p, fmt.Errorf("decompose: %w", ErrUnfinished)
}

// Uncouple separates a compound into its connected components.
func Uncouple(p *polytope.Polytope, o Options) (*polytope.Polytope, error) {
	return p, fmt.Errorf("uncouple: %w", ErrUnfinished)
}

// Greaten extends faces to form new, larger faces.
func Greaten(p *polytope.Polytope, o Options) (*polytope.Polytope, error) {
	return p, fmt.Errorf("greaten: %w", ErrUnfinished)
}
