// Package shapeshift exposes the polytope engine to the presentation
// layer: named seed solids, an operator registry invoked by name, and an
// Engine holding the current polytope across operator applications.
package shapeshift

import (
	"errors"
	"fmt"
	"sort"

	"github.com/allytrope/shapeshift/operator"
	"github.com/allytrope/shapeshift/polytope"
)

// ErrUnknownOperator indicates a name outside the registry.
var ErrUnknownOperator = errors.New("shapeshift: unknown operator")

// Result is the outcome of applying an operator. Diagnostic is non-empty
// when the operator fell back to returning its input unchanged (declared
// unfinished); the polytope is then the input itself.
type Result struct {
	Polytope   *polytope.Polytope
	Diagnostic string
}

// operators maps every operator name onto its implementation.
var operators = map[string]operator.Func{
	"truncate":    operator.Truncate,
	"rectify":     operator.Rectify,
	"facet":       operator.Facet,
	"reciprocate": operator.Reciprocate,
	"stellate":    operator.Stellate,
	"cap":         operator.Cap,
	"bridge":      operator.Bridge,
	"decompose":   operator.Decompose,
	"uncouple":    operator.Uncouple,
	"greaten":     operator.Greaten,
}

// Operators returns the registered operator names, sorted.
func Operators() []string {
	names := make([]string, 0, len(operators))
	for name := range operators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Apply runs the named operator on p. Geometric-precondition and
// structural errors propagate for the caller to inspect; operators declared
// unfinished yield the input polytope with a diagnostic and no error.
func Apply(name string, p *polytope.Polytope, o operator.Options) (Result, error) {
	fn, ok := operators[name]
	if !ok {
		return Result{}, fmt.Errorf("%w: %q", ErrUnknownOperator, name)
	}

	out, err := fn(p, o)
	if err != nil {
		if errors.Is(err, operator.ErrUnfinished) {
			return Result{Polytope: p, Diagnostic: err.Error()}, nil
		}
		return Result{}, err
	}
	return Result{Polytope: out}, nil
}

// Seeds maps the named seed solids onto their constructors.
func Seeds() map[string]func() *polytope.Polytope {
	return map[string]func() *polytope.Polytope{
		"tetrahedron":  polytope.Tetrahedron,
		"cube":         polytope.Cube,
		"octahedron":   polytope.Octahedron,
		"dodecahedron": polytope.Dodecahedron,
		"icosahedron":  polytope.Icosahedron,
	}
}
