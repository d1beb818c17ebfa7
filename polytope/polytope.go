package polytope

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/allytrope/shapeshift/geometry"
)

// Polytope owns the complete element set for every rank 0..N. It is
// immutable once built: operators read it and emit raw geometry for a brand
// new Polytope, never mutating elements in place, so concurrent readers
// need no synchronization.
type Polytope struct {
	ranks  [][]Element
	colors [][3]float64 // one tag per top-rank element
}

// Rank returns the dimension N of the polytope (3 for a polyhedron).
func (p *Polytope) Rank() int {
	return len(p.ranks) - 1
}

// Element returns the element addressed by id.
func (p *Polytope) Element(id ID) (*Element, error) {
	if id.Rank < 0 || id.Rank >= len(p.ranks) {
		return nil, fmt.Errorf("%w: rank %d of %d-polytope", ErrRankOutOfRange, id.Rank, p.Rank())
	}
	if id.Index < 0 || id.Index >= len(p.ranks[id.Rank]) {
		return nil, fmt.Errorf("%w: index %d at rank %d", ErrIndexOutOfRange, id.Index, id.Rank)
	}
	return &p.ranks[id.Rank][id.Index], nil
}

// NFaces returns all elements of the given rank.
func (p *Polytope) NFaces(rank int) ([]ID, error) {
	if rank < 0 || rank >= len(p.ranks) {
		return nil, fmt.Errorf("%w: rank %d of %d-polytope", ErrRankOutOfRange, rank, p.Rank())
	}

	ids := make([]ID, len(p.ranks[rank]))
	for i := range ids {
		ids[i] = ID{Rank: rank, Index: i}
	}
	return ids, nil
}

// Vertices returns all rank-0 elements.
func (p *Polytope) Vertices() []ID {
	ids, _ := p.NFaces(0)
	return ids
}

// Edges returns all rank-1 elements.
func (p *Polytope) Edges() []ID {
	ids, _ := p.NFaces(1)
	return ids
}

// Faces returns all rank-2 elements.
func (p *Polytope) Faces() []ID {
	ids, _ := p.NFaces(2)
	return ids
}

// Position returns the coordinates of a rank-0 element.
func (p *Polytope) Position(id ID) (mgl64.Vec3, error) {
	if id.Rank != 0 {
		return mgl64.Vec3{}, fmt.Errorf("%w: position of rank-%d element", ErrRankOutOfRange, id.Rank)
	}
	e, err := p.Element(id)
	if err != nil {
		return mgl64.Vec3{}, err
	}
	return e.coords, nil
}

// Children returns the subfaces of id, one rank down.
func (p *Polytope) Children(id ID) ([]ID, error) {
	e, err := p.Element(id)
	if err != nil {
		return nil, err
	}
	if id.Rank == 0 {
		return nil, ErrNoSubfaces
	}

	ids := make([]ID, len(e.subfaces))
	for i, idx := range e.subfaces {
		ids[i] = ID{Rank: id.Rank - 1, Index: idx}
	}
	return ids, nil
}

// Parents returns the superfaces of id, one rank up.
func (p *Polytope) Parents(id ID) ([]ID, error) {
	e, err := p.Element(id)
	if err != nil {
		return nil, err
	}
	if id.Rank == p.Rank() {
		return nil, ErrNoParent
	}

	ids := make([]ID, len(e.superfaces))
	for i, idx := range e.superfaces {
		ids[i] = ID{Rank: id.Rank + 1, Index: idx}
	}
	return ids, nil
}

// Neighbours returns the elements of the same rank sharing at least one
// subface with id. Vertices have no subfaces to share, so for rank 0 this
// is graph-theoretic adjacency: vertices sharing an edge.
func (p *Polytope) Neighbours(id ID) ([]ID, error) {
	e, err := p.Element(id)
	if err != nil {
		return nil, err
	}

	if id.Rank == 0 {
		// The other endpoint of every incident edge.
		var out []ID
		seen := make(map[int]bool)
		for _, edgeIdx := range e.superfaces {
			for _, vertIdx := range p.ranks[1][edgeIdx].subfaces {
				if vertIdx != id.Index && !seen[vertIdx] {
					seen[vertIdx] = true
					out = append(out, ID{Rank: 0, Index: vertIdx})
				}
			}
		}
		return out, nil
	}

	var out []ID
	seen := make(map[int]bool)
	for _, subIdx := range e.subfaces {
		for _, superIdx := range p.ranks[id.Rank-1][subIdx].superfaces {
			if superIdx != id.Index && !seen[superIdx] {
				seen[superIdx] = true
				out = append(out, ID{Rank: id.Rank, Index: superIdx})
			}
		}
	}
	return out, nil
}

// Siblings returns the elements of the same rank sharing at least one
// superface with id. The top-rank element has none.
func (p *Polytope) Siblings(id ID) ([]ID, error) {
	e, err := p.Element(id)
	if err != nil {
		return nil, err
	}

	var out []ID
	seen := make(map[int]bool)
	for _, superIdx := range e.superfaces {
		for _, subIdx := range p.ranks[id.Rank+1][superIdx].subfaces {
			if subIdx != id.Index && !seen[subIdx] {
				seen[subIdx] = true
				out = append(out, ID{Rank: id.Rank, Index: subIdx})
			}
		}
	}
	return out, nil
}

// Centroid returns the arithmetic mean of the coordinates of all vertices
// reachable by descending subfaces from id.
func (p *Polytope) Centroid(id ID) (mgl64.Vec3, error) {
	if _, err := p.Element(id); err != nil {
		return mgl64.Vec3{}, err
	}

	verts := p.descendToVertices(id)
	coords := make([]mgl64.Vec3, 0, len(verts))
	for idx := range verts {
		coords = append(coords, p.ranks[0][idx].coords)
	}
	return geometry.Centroid(coords), nil
}

// descendToVertices collects the rank-0 indices under id.
func (p *Polytope) descendToVertices(id ID) map[int]bool {
	verts := make(map[int]bool)

	frontier := []ID{id}
	for len(frontier) > 0 {
		cur := frontier[len(frontier)-1]
		frontier = frontier[:len(frontier)-1]

		if cur.Rank == 0 {
			verts[cur.Index] = true
			continue
		}
		for _, subIdx := range p.ranks[cur.Rank][cur.Index].subfaces {
			frontier = append(frontier, ID{Rank: cur.Rank - 1, Index: subIdx})
		}
	}

	return verts
}

// OrderedBoundary returns the bounding vertices of a 2-cell in cyclic
// (face-traversal) order, reconstructed from its unordered edge set by a
// chaining walk. Edge sets that do not chain into a single closed cycle
// fail with ErrBrokenCycle: that indicates corrupted incidence data, never
// legitimate input.
func (p *Polytope) OrderedBoundary(face ID) ([]ID, error) {
	if face.Rank != 2 {
		return nil, fmt.Errorf("%w: ordered boundary of rank-%d element", ErrRankOutOfRange, face.Rank)
	}
	e, err := p.Element(face)
	if err != nil {
		return nil, err
	}
	if len(e.subfaces) < 3 {
		return nil, fmt.Errorf("%w: face %d has %d edges", ErrBrokenCycle, face.Index, len(e.subfaces))
	}

	type edge struct{ a, b int }
	edges := make([]edge, len(e.subfaces))
	for i, edgeIdx := range e.subfaces {
		sub := p.ranks[1][edgeIdx].subfaces
		if len(sub) != 2 {
			return nil, fmt.Errorf("%w: edge %d has %d endpoints", ErrBrokenCycle, edgeIdx, len(sub))
		}
		edges[i] = edge{sub[0], sub[1]}
	}

	used := make([]bool, len(edges))
	used[0] = true
	order := []int{edges[0].a, edges[0].b}

	for count := 1; count < len(edges); count++ {
		last := order[len(order)-1]
		found := false

		for i, ed := range edges {
			if used[i] {
				continue
			}
			var next int
			switch last {
			case ed.a:
				next = ed.b
			case ed.b:
				next = ed.a
			default:
				continue
			}
			used[i] = true
			found = true

			if count == len(edges)-1 {
				// Closing edge must return to the start.
				if next != order[0] {
					return nil, fmt.Errorf("%w: face %d does not close", ErrBrokenCycle, face.Index)
				}
			} else {
				for _, v := range order {
					if v == next {
						return nil, fmt.Errorf("%w: face %d revisits vertex %d", ErrBrokenCycle, face.Index, next)
					}
				}
				order = append(order, next)
			}
			break
		}

		if !found {
			return nil, fmt.Errorf("%w: face %d has a disconnected edge", ErrBrokenCycle, face.Index)
		}
	}

	out := make([]ID, len(order))
	for i, idx := range order {
		out[i] = ID{Rank: 0, Index: idx}
	}
	return out, nil
}

// FaceCycle returns the 2-cells incident to a vertex in their natural
// cyclic order around it: consecutive faces share an edge through the
// vertex. Fails with ErrBrokenCycle when the incident faces do not chain
// into one closed ring.
func (p *Polytope) FaceCycle(vertex ID) ([]ID, error) {
	if vertex.Rank != 0 {
		return nil, fmt.Errorf("%w: face cycle of rank-%d element", ErrRankOutOfRange, vertex.Rank)
	}
	e, err := p.Element(vertex)
	if err != nil {
		return nil, err
	}

	// Faces incident to the vertex, each with its set of incident edges
	// that pass through the vertex.
	faceEdges := make(map[int][]int)
	for _, edgeIdx := range e.superfaces {
		for _, faceIdx := range p.ranks[1][edgeIdx].superfaces {
			faceEdges[faceIdx] = append(faceEdges[faceIdx], edgeIdx)
		}
	}
	if len(faceEdges) < 3 {
		return nil, fmt.Errorf("%w: vertex %d lies on %d faces", ErrBrokenCycle, vertex.Index, len(faceEdges))
	}

	shareEdge := func(f1, f2 int) bool {
		for _, e1 := range faceEdges[f1] {
			for _, e2 := range faceEdges[f2] {
				if e1 == e2 {
					return true
				}
			}
		}
		return false
	}

	// Deterministic start: lowest face index.
	start := -1
	for faceIdx := range faceEdges {
		if start == -1 || faceIdx < start {
			start = faceIdx
		}
	}

	order := []int{start}
	used := map[int]bool{start: true}
	for len(order) < len(faceEdges) {
		found := false
		for faceIdx := range faceEdges {
			if !used[faceIdx] && shareEdge(order[len(order)-1], faceIdx) {
				order = append(order, faceIdx)
				used[faceIdx] = true
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("%w: faces around vertex %d do not chain", ErrBrokenCycle, vertex.Index)
		}
	}
	if !shareEdge(order[len(order)-1], order[0]) {
		return nil, fmt.Errorf("%w: faces around vertex %d do not close", ErrBrokenCycle, vertex.Index)
	}

	out := make([]ID, len(order))
	for i, idx := range order {
		out[i] = ID{Rank: 2, Index: idx}
	}
	return out, nil
}

// IsCanonical reports whether every edge, viewed as an infinite line, is
// equidistant from the origin within eps; that is, whether the polytope has
// a midsphere. eps of zero uses geometry.DefaultTolerance.
func (p *Polytope) IsCanonical(eps float64) bool {
	if eps == 0 {
		eps = geometry.DefaultTolerance
	}
	if len(p.ranks) < 2 {
		return false
	}

	midradius := math.NaN()
	for i := range p.ranks[1] {
		sub := p.ranks[1][i].subfaces
		a := p.ranks[0][sub[0]].coords
		b := p.ranks[0][sub[1]].coords

		distance := geometry.DistanceToOrigin(a, b)
		if math.IsNaN(midradius) {
			midradius = distance
		} else if math.Abs(distance-midradius) > eps {
			return false
		}
	}
	return true
}

// ColorTag returns the RGB tag of a top-rank cell, assigned at build time
// for the presentation layer.
func (p *Polytope) ColorTag(id ID) ([3]float64, error) {
	if id.Rank != p.Rank() {
		return [3]float64{}, fmt.Errorf("%w: color tag of rank-%d element", ErrRankOutOfRange, id.Rank)
	}
	if id.Index < 0 || id.Index >= len(p.colors) {
		return [3]float64{}, fmt.Errorf("%w: index %d", ErrIndexOutOfRange, id.Index)
	}
	return p.colors[id.Index], nil
}

// VertexCoordinates returns the coordinates of every vertex in index order,
// the raw-geometry form operators and the render layer consume.
func (p *Polytope) VertexCoordinates() []mgl64.Vec3 {
	out := make([]mgl64.Vec3, len(p.ranks[0]))
	for i := range p.ranks[0] {
		out[i] = p.ranks[0][i].coords
	}
	return out
}

// FacesByVertex returns every 2-cell as its ordered vertex-index cycle,
// the same form Build accepts.
func (p *Polytope) FacesByVertex() ([][]int, error) {
	if len(p.ranks) < 3 {
		return nil, fmt.Errorf("%w: polytope has no 2-cells", ErrRankOutOfRange)
	}

	out := make([][]int, len(p.ranks[2]))
	for i := range p.ranks[2] {
		boundary, err := p.OrderedBoundary(ID{Rank: 2, Index: i})
		if err != nil {
			return nil, err
		}
		cycle := make([]int, len(boundary))
		for j, id := range boundary {
			cycle[j] = id.Index
		}
		out[i] = cycle
	}
	return out, nil
}
