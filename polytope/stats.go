package polytope

import "fmt"

// Stats reports the element counts of a polyhedron.
type Stats struct {
	Vertices, Edges, Faces, Cells int
}

// Counts returns the number of elements at each rank, index 0 = vertices.
func (p *Polytope) Counts() []int {
	counts := make([]int, len(p.ranks))
	for r := range p.ranks {
		counts[r] = len(p.ranks[r])
	}
	return counts
}

// Stats returns the named counts of the first four ranks.
func (p *Polytope) Stats() Stats {
	var s Stats
	counts := p.Counts()
	if len(counts) > 0 {
		s.Vertices = counts[0]
	}
	if len(counts) > 1 {
		s.Edges = counts[1]
	}
	if len(counts) > 2 {
		s.Faces = counts[2]
	}
	if len(counts) > 3 {
		s.Cells = counts[3]
	}
	return s
}

// EulerCharacteristic returns vertices - edges + faces. A valid closed
// polyhedron has characteristic 2; this is a self-check, not enforced at
// construction.
func (p *Polytope) EulerCharacteristic() int {
	s := p.Stats()
	return s.Vertices - s.Edges + s.Faces
}

// FaceTypes returns a histogram of polygon sizes: edge count of each
// 2-cell mapped to how many faces have it.
func (p *Polytope) FaceTypes() map[int]int {
	types := make(map[int]int)
	if len(p.ranks) < 3 {
		return types
	}
	for i := range p.ranks[2] {
		types[len(p.ranks[2][i].subfaces)]++
	}
	return types
}

var polygonNames = map[int]string{
	3:  "triangles",
	4:  "quadrilaterals",
	5:  "pentagons",
	6:  "hexagons",
	7:  "heptagons",
	8:  "octagons",
	9:  "nonagons",
	10: "decagons",
	11: "undecagons",
	12: "dodecagons",
}

// PolygonName returns the plural name of a k-gon for 3 <= k <= 12 and a
// generic "k-gons" beyond that.
func PolygonName(k int) string {
	if name, ok := polygonNames[k]; ok {
		return name
	}
	return fmt.Sprintf("%d-gons", k)
}
