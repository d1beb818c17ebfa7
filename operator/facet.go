package operator

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/allytrope/shapeshift/geometry"
	"github.com/allytrope/shapeshift/polytope"
)

// Facet keeps every original vertex and reconnects them: the new face
// around each vertex is literally its neighbour cycle. The result is a
// nonconvex figure sharing the input's vertex set.
func Facet(p *polytope.Polytope, o Options) (*polytope.Polytope, error) {
	pool := geometry.NewPool(o.Tolerance)
	for _, coords := range p.VertexCoordinates() {
		pool.Index(coords)
	}

	keepNeighbour := func(pivot, neighbour mgl64.Vec3) mgl64.Vec3 {
		return neighbour
	}

	var newFaces [][]int
	for _, vertex := range p.Vertices() {
		newFace, err := diminish(p, keepNeighbour, vertex, pool)
		if err != nil {
			return nil, err
		}
		newFaces = append(newFaces, newFace)
	}

	return polytope.Build(pool.Points(), newFaces)
}
