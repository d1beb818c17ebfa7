package operator

import (
	"github.com/allytrope/shapeshift/geometry"
	"github.com/allytrope/shapeshift/polytope"
)

// Reciprocate builds the dual: each original face's centroid becomes a new
// vertex, and each original vertex becomes the face connecting the
// centroids of its incident faces, in their natural cyclic order around the
// vertex.
func Reciprocate(p *polytope.Polytope, o Options) (*polytope.Polytope, error) {
	pool := geometry.NewPool(o.Tolerance)

	var newFaces [][]int
	for _, vertex := range p.Vertices() {
		cycle, err := p.FaceCycle(vertex)
		if err != nil {
			return nil, err
		}

		newFace := make([]int, 0, len(cycle))
		for _, face := range cycle {
			centroid, err := p.Centroid(face)
			if err != nil {
				return nil, err
			}
			newFace = append(newFace, pool.Index(centroid))
		}
		newFaces = append(newFaces, compressFace(newFace))
	}

	return polytope.Build(pool.Points(), newFaces)
}
