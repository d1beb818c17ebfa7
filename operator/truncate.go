package operator

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/allytrope/shapeshift/geometry"
	"github.com/allytrope/shapeshift/polytope"
)

// Truncate cleaves every vertex off the polytope, replacing it with its
// vertex figure and shrinking every original face inward. The cut lands
// Fraction/2 along the edge from each endpoint, so Fraction 2/3 is the
// classic truncation and Fraction 1 welds both cuts into one midpoint:
// rectification.
//
// Method is consulted only at Fraction 1, where ByMidsphere places the
// merged vertex at the edge line's midsphere projection and requires a
// canonical input (ErrNoMidsphere otherwise). At any other fraction the cut
// point is the interpolation along the edge regardless of Method.
func Truncate(p *polytope.Polytope, o Options) (*polytope.Polytope, error) {
	transform, err := cutTransform(p, o)
	if err != nil {
		return nil, err
	}

	pool := geometry.NewPool(o.Tolerance)
	var newFaces [][]int

	// Shrunken faces, one per original face, connecting the cut points in
	// the original cyclic order.
	for _, face := range p.Faces() {
		boundary, err := p.OrderedBoundary(face)
		if err != nil {
			return nil, err
		}

		newFace := make([]int, 0, 2*len(boundary))
		for x := range boundary {
			prev, _ := p.Position(boundary[(x+len(boundary)-1)%len(boundary)])
			cur, _ := p.Position(boundary[x])

			// Two cuts per edge, one near each endpoint; at Fraction 1
			// they coincide and the pool welds them.
			newFace = append(newFace, pool.Index(transform(prev, cur)))
			newFace = append(newFace, pool.Index(transform(cur, prev)))
		}
		newFaces = append(newFaces, compressFace(newFace))
	}

	// Vertex figures, one per original vertex.
	for _, vertex := range p.Vertices() {
		newFace, err := diminish(p, transform, vertex, pool)
		if err != nil {
			return nil, err
		}
		newFaces = append(newFaces, newFace)
	}

	return polytope.Build(pool.Points(), newFaces)
}

// Rectify is Truncate at Fraction 1: every edge collapses to a single new
// vertex. ByMidpoint is valid on any input; ByMidsphere requires a
// canonical polytope and fails with ErrNoMidsphere instead of guessing.
func Rectify(p *polytope.Polytope, o Options) (*polytope.Polytope, error) {
	o.Fraction = 1
	return Truncate(p, o)
}

// cutTransform picks the edge-cut placement for Truncate/Rectify.
func cutTransform(p *polytope.Polytope, o Options) (Transform, error) {
	if o.Fraction != 1 {
		t := o.Fraction / 2
		return func(pivot, neighbour mgl64.Vec3) mgl64.Vec3 {
			return geometry.Lerp(pivot, neighbour, t)
		}, nil
	}

	switch o.Method {
	case ByMidsphere:
		if !p.IsCanonical(o.Tolerance) {
			return nil, ErrNoMidsphere
		}
		return func(pivot, neighbour mgl64.Vec3) mgl64.Vec3 {
			return geometry.ClosestToOrigin(pivot, neighbour)
		}, nil
	case ByMidpoint:
		return func(pivot, neighbour mgl64.Vec3) mgl64.Vec3 {
			return geometry.Midpoint(pivot, neighbour)
		}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMethod, o.Method)
	}
}
