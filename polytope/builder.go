package polytope

import (
	"fmt"
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"
)

// Build derives the complete incidence hierarchy for a polyhedron from raw
// geometry: vertex coordinates plus one cyclic vertex-index list per face.
// Edges are inferred from consecutive face-cycle pairs and deduplicated in
// both orientations; every subface link gets the matching superface
// back-link pushed exactly once. All faces form a single top cell.
//
// Input is validated eagerly: a face cycle shorter than three vertices is
// ErrDegenerateFace, an index referencing a non-existent vertex is
// ErrIndexOutOfRange. A failed build never yields a partially wired
// polytope.
func Build(vertices []mgl64.Vec3, faces [][]int) (*Polytope, error) {
	cell := make([]int, len(faces))
	for i := range cell {
		cell[i] = i
	}
	return BuildCompound(vertices, faces, [][]int{cell})
}

// BuildCompound builds a polytope with explicit top cells, each given as a
// list of face indices. A single cell yields a rank-3 polytope; multiple
// cells (a compound, e.g. the result of uncoupling) are wrapped in one
// rank-4 aggregate containing them all.
func BuildCompound(vertices []mgl64.Vec3, faces [][]int, cells [][]int) (*Polytope, error) {
	if err := validateInput(vertices, faces, cells); err != nil {
		return nil, err
	}

	edges, facesByEdge := inferEdges(faces)

	p := &Polytope{}

	// Rank 0: vertices carry coordinates directly.
	rank0 := make([]Element, len(vertices))
	for i, v := range vertices {
		rank0[i] = Element{coords: v}
	}
	p.ranks = append(p.ranks, rank0)

	// Ranks 1..N bottom-up, wiring the superface back-link for every
	// subface assignment.
	p.appendRank(edges)
	p.appendRank(facesByEdge)
	p.appendRank(cells)

	if len(cells) > 1 {
		// Disconnected top cells: wrap in one aggregate of rank N+1.
		compound := make([]int, len(cells))
		for i := range compound {
			compound[i] = i
		}
		p.appendRank([][]int{compound})
	}

	p.colors = make([][3]float64, len(p.ranks[len(p.ranks)-1]))
	for i := range p.colors {
		p.colors[i] = randomColor()
	}

	return p, nil
}

func validateInput(vertices []mgl64.Vec3, faces [][]int, cells [][]int) error {
	if len(vertices) == 0 {
		return fmt.Errorf("%w: no vertices", ErrDegenerateFace)
	}

	for i, face := range faces {
		if len(face) < 3 {
			return fmt.Errorf("%w: face %d has %d vertices", ErrDegenerateFace, i, len(face))
		}
		for _, idx := range face {
			if idx < 0 || idx >= len(vertices) {
				return fmt.Errorf("%w: face %d references vertex %d of %d", ErrIndexOutOfRange, i, idx, len(vertices))
			}
		}
	}

	for i, cell := range cells {
		if len(cell) == 0 {
			return fmt.Errorf("%w: cell %d has no faces", ErrDegenerateFace, i)
		}
		for _, idx := range cell {
			if idx < 0 || idx >= len(faces) {
				return fmt.Errorf("%w: cell %d references face %d of %d", ErrIndexOutOfRange, i, idx, len(faces))
			}
		}
	}

	return nil
}

// inferEdges walks each face cycle's consecutive vertex pairs (wrapping)
// and records each undirected pair once, checking both orientations.
// Returns the edges as vertex-index pairs and the faces re-expressed as
// edge-index cycles.
func inferEdges(faces [][]int) (edges [][]int, facesByEdge [][]int) {
	index := make(map[[2]int]int)

	facesByEdge = make([][]int, len(faces))
	for i, face := range faces {
		cycle := make([]int, 0, len(face))
		for x := range face {
			a, b := face[x], face[(x+1)%len(face)]
			// (a,b) and (b,a) are the same edge.
			key := [2]int{a, b}
			if a > b {
				key = [2]int{b, a}
			}

			idx, ok := index[key]
			if !ok {
				idx = len(edges)
				index[key] = idx
				edges = append(edges, []int{a, b})
			}
			cycle = append(cycle, idx)
		}
		facesByEdge[i] = cycle
	}

	return edges, facesByEdge
}

// appendRank instantiates one rank of elements from subface-index lists and
// pushes the superface back-link onto each referenced subface.
func (p *Polytope) appendRank(elements [][]int) {
	rank := len(p.ranks)
	created := make([]Element, len(elements))

	for i, subfaces := range elements {
		created[i] = Element{subfaces: append([]int(nil), subfaces...)}
		for _, subIdx := range subfaces {
			sub := &p.ranks[rank-1][subIdx]
			sub.superfaces = append(sub.superfaces, i)
		}
	}

	p.ranks = append(p.ranks, created)
}

// randomColor picks an RGB tag in [0.2, 1.0) for the presentation layer,
// bright enough to read against a dark background.
func randomColor() [3]float64 {
	return [3]float64{
		0.2 + 0.8*rand.Float64(),
		0.2 + 0.8*rand.Float64(),
		0.2 + 0.8*rand.Float64(),
	}
}
