package operator

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/allytrope/shapeshift/geometry"
	"github.com/allytrope/shapeshift/polytope"
)

// Transform computes a replacement point from a pivot vertex and one of its
// neighbours: a third-of-the-way point, a midpoint, a midsphere projection,
// or the neighbour itself.
type Transform func(pivot, neighbour mgl64.Vec3) mgl64.Vec3

// diminish cuts the pyramid whose apex is vertex off the polytope and
// returns the face left behind: one transformed point per neighbour,
// ordered cyclically. Two points are edge-adjacent in that face iff their
// neighbour vertices share an original face with the pivot. Each point is
// welded against pool before being indexed into the face.
//
// A neighbour set that does not chain into one closed ring means the
// incidence data is inconsistent; that propagates as ErrBrokenCycle.
func diminish(p *polytope.Polytope, transform Transform, vertex polytope.ID, pool *geometry.Pool) ([]int, error) {
	pivotPos, err := p.Position(vertex)
	if err != nil {
		return nil, err
	}
	neighbours, err := p.Neighbours(vertex)
	if err != nil {
		return nil, err
	}
	if len(neighbours) < 3 {
		return nil, fmt.Errorf("%w: vertex %d has %d neighbours", polytope.ErrBrokenCycle, vertex.Index, len(neighbours))
	}

	// The unordered bundle: one new point per neighbour.
	points := make([]mgl64.Vec3, len(neighbours))
	for i, nb := range neighbours {
		nbPos, err := p.Position(nb)
		if err != nil {
			return nil, err
		}
		points[i] = transform(pivotPos, nbPos)
	}

	// Reconstruct cyclic order: entries are adjacent iff their neighbour
	// vertices lie on a common face through the pivot.
	pivotFaces := incidentFaces(p, vertex)
	faceSets := make([]map[int]bool, len(neighbours))
	for i, nb := range neighbours {
		faceSets[i] = incidentFaces(p, nb)
	}

	adjacent := func(i, j int) bool {
		for f := range faceSets[i] {
			if faceSets[j][f] && pivotFaces[f] {
				return true
			}
		}
		return false
	}

	adj := make([][]int, len(neighbours))
	for i := 0; i < len(neighbours); i++ {
		for j := i + 1; j < len(neighbours); j++ {
			if adjacent(i, j) {
				adj[i] = append(adj[i], j)
				adj[j] = append(adj[j], i)
			}
		}
	}
	for i := range adj {
		if len(adj[i]) != 2 {
			return nil, fmt.Errorf("%w: vertex figure at vertex %d is not a ring", polytope.ErrBrokenCycle, vertex.Index)
		}
	}

	// Walk the ring.
	order := make([]int, 0, len(neighbours))
	order = append(order, 0, adj[0][0])
	for len(order) < len(neighbours) {
		last, prev := order[len(order)-1], order[len(order)-2]
		next := adj[last][0]
		if next == prev {
			next = adj[last][1]
		}
		if next == order[0] {
			return nil, fmt.Errorf("%w: vertex figure at vertex %d closes early", polytope.ErrBrokenCycle, vertex.Index)
		}
		order = append(order, next)
	}
	last := order[len(order)-1]
	if adj[last][0] != order[0] && adj[last][1] != order[0] {
		return nil, fmt.Errorf("%w: vertex figure at vertex %d does not close", polytope.ErrBrokenCycle, vertex.Index)
	}

	face := make([]int, len(order))
	for i, entry := range order {
		face[i] = pool.Index(points[entry])
	}
	return compressFace(face), nil
}

// incidentFaces returns the set of 2-cell indices touching a vertex.
func incidentFaces(p *polytope.Polytope, vertex polytope.ID) map[int]bool {
	faces := make(map[int]bool)

	edges, err := p.Parents(vertex)
	if err != nil {
		return faces
	}
	for _, edge := range edges {
		parents, err := p.Parents(edge)
		if err != nil {
			continue
		}
		for _, f := range parents {
			faces[f.Index] = true
		}
	}
	return faces
}

// compressFace drops consecutive duplicate indices, including the
// wraparound pair. Welding can merge adjacent cut points (rectification
// collapses each edge's two cuts into one midpoint); the face cycle must
// not repeat them.
func compressFace(face []int) []int {
	out := face[:0]
	for _, idx := range face {
		if len(out) == 0 || out[len(out)-1] != idx {
			out = append(out, idx)
		}
	}
	for len(out) > 1 && out[0] == out[len(out)-1] {
		out = out[:len(out)-1]
	}
	return out
}
