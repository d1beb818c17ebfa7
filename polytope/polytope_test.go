package polytope

import (
	"errors"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func buildCube(t *testing.T) *Polytope {
	t.Helper()
	vertices, faces := cubeGeometry()
	p, err := Build(vertices, faces)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	return p
}

func TestChildrenAndParents(t *testing.T) {
	p := buildCube(t)

	if _, err := p.Children(ID{Rank: 0, Index: 0}); !errors.Is(err, ErrNoSubfaces) {
		t.Errorf("Children of vertex: err = %v, want ErrNoSubfaces", err)
	}
	if _, err := p.Parents(ID{Rank: 3, Index: 0}); !errors.Is(err, ErrNoParent) {
		t.Errorf("Parents of top cell: err = %v, want ErrNoParent", err)
	}

	edgeChildren, err := p.Children(ID{Rank: 1, Index: 0})
	if err != nil {
		t.Fatalf("Children of edge failed: %v", err)
	}
	if len(edgeChildren) != 2 {
		t.Errorf("edge has %d children, want 2", len(edgeChildren))
	}

	vertexParents, err := p.Parents(ID{Rank: 0, Index: 0})
	if err != nil {
		t.Fatalf("Parents of vertex failed: %v", err)
	}
	if len(vertexParents) != 3 {
		t.Errorf("cube vertex lies on %d edges, want 3", len(vertexParents))
	}
}

func TestNFacesRankOutOfRange(t *testing.T) {
	p := buildCube(t)

	for _, rank := range []int{-1, 4} {
		if _, err := p.NFaces(rank); !errors.Is(err, ErrRankOutOfRange) {
			t.Errorf("NFaces(%d): err = %v, want ErrRankOutOfRange", rank, err)
		}
	}
	if ids, err := p.NFaces(2); err != nil || len(ids) != 6 {
		t.Errorf("NFaces(2) = %d ids, err %v; want 6, nil", len(ids), err)
	}
}

func TestNeighboursAndSiblings(t *testing.T) {
	p := buildCube(t)

	// A cube vertex has 3 edge-sharing neighbours.
	neighbours, err := p.Neighbours(ID{Rank: 0, Index: 0})
	if err != nil {
		t.Fatalf("Neighbours failed: %v", err)
	}
	if len(neighbours) != 3 {
		t.Errorf("vertex neighbours = %d, want 3", len(neighbours))
	}

	// A cube face shares an edge with 4 of the other 5 faces.
	faceNeighbours, err := p.Neighbours(ID{Rank: 2, Index: 0})
	if err != nil {
		t.Fatalf("face Neighbours failed: %v", err)
	}
	if len(faceNeighbours) != 4 {
		t.Errorf("face neighbours = %d, want 4", len(faceNeighbours))
	}

	// All faces share the single top cell, so each has 5 siblings.
	faceSiblings, err := p.Siblings(ID{Rank: 2, Index: 0})
	if err != nil {
		t.Fatalf("Siblings failed: %v", err)
	}
	if len(faceSiblings) != 5 {
		t.Errorf("face siblings = %d, want 5", len(faceSiblings))
	}
}

func TestCentroid(t *testing.T) {
	p := buildCube(t)

	whole, err := p.Centroid(ID{Rank: 3, Index: 0})
	if err != nil {
		t.Fatalf("Centroid failed: %v", err)
	}
	if !whole.ApproxEqualThreshold(mgl64.Vec3{0, 0, 0}, 1e-12) {
		t.Errorf("cube centroid = %v, want origin", whole)
	}

	// An edge centroid is its midpoint.
	edge := ID{Rank: 1, Index: 0}
	verts, _ := p.Children(edge)
	a, _ := p.Position(verts[0])
	b, _ := p.Position(verts[1])

	mid, err := p.Centroid(edge)
	if err != nil {
		t.Fatalf("edge Centroid failed: %v", err)
	}
	if !mid.ApproxEqualThreshold(a.Add(b).Mul(0.5), 1e-12) {
		t.Errorf("edge centroid = %v, want midpoint of %v and %v", mid, a, b)
	}
}

func TestOrderedBoundary(t *testing.T) {
	p := buildCube(t)

	for _, face := range p.Faces() {
		boundary, err := p.OrderedBoundary(face)
		if err != nil {
			t.Fatalf("OrderedBoundary(%v) failed: %v", face, err)
		}
		if len(boundary) != 4 {
			t.Fatalf("cube face boundary has %d vertices, want 4", len(boundary))
		}

		// Consecutive boundary vertices must share an edge.
		for x := range boundary {
			a, b := boundary[x], boundary[(x+1)%len(boundary)]
			if !shareEdge(t, p, a, b) {
				t.Errorf("boundary vertices %v and %v share no edge", a, b)
			}
		}
	}
}

func shareEdge(t *testing.T, p *Polytope, a, b ID) bool {
	t.Helper()
	aEdges, err := p.Parents(a)
	if err != nil {
		t.Fatalf("Parents failed: %v", err)
	}
	bEdges, err := p.Parents(b)
	if err != nil {
		t.Fatalf("Parents failed: %v", err)
	}
	for _, ea := range aEdges {
		for _, eb := range bEdges {
			if ea == eb {
				return true
			}
		}
	}
	return false
}

func TestOrderedBoundaryBrokenCycle(t *testing.T) {
	// A face cycle that revisits a vertex collapses onto two doubled
	// edges; the chaining walk must fail, not return garbage.
	vertices := []mgl64.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}
	p, err := Build(vertices, [][]int{{0, 1, 0, 2}})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if _, err := p.OrderedBoundary(ID{Rank: 2, Index: 0}); !errors.Is(err, ErrBrokenCycle) {
		t.Errorf("err = %v, want ErrBrokenCycle", err)
	}
}

func TestFaceCycle(t *testing.T) {
	p := buildCube(t)

	for _, vertex := range p.Vertices() {
		cycle, err := p.FaceCycle(vertex)
		if err != nil {
			t.Fatalf("FaceCycle(%v) failed: %v", vertex, err)
		}
		if len(cycle) != 3 {
			t.Fatalf("cube vertex lies on %d faces, want 3", len(cycle))
		}
	}
}

func TestIsCanonical(t *testing.T) {
	if !buildCube(t).IsCanonical(0) {
		t.Error("cube must be canonical: every edge line touches the midsphere")
	}

	// Stretching along z moves the vertical edge lines to a different
	// distance from the origin than the horizontal ones.
	vertices, faces := cubeGeometry()
	for i := range vertices {
		vertices[i][2] *= 2
	}
	stretched, err := Build(vertices, faces)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if stretched.IsCanonical(0) {
		t.Error("stretched cube must not be canonical")
	}
}

func TestFacesByVertex(t *testing.T) {
	p := buildCube(t)

	faces, err := p.FacesByVertex()
	if err != nil {
		t.Fatalf("FacesByVertex failed: %v", err)
	}
	if len(faces) != 6 {
		t.Fatalf("faces = %d, want 6", len(faces))
	}

	// Rebuilding from the exported form reproduces the combinatorics.
	rebuilt, err := Build(p.VertexCoordinates(), faces)
	if err != nil {
		t.Fatalf("rebuild failed: %v", err)
	}
	if rebuilt.Stats() != p.Stats() {
		t.Errorf("rebuilt stats = %+v, want %+v", rebuilt.Stats(), p.Stats())
	}
}

func TestStatsAndFaceTypes(t *testing.T) {
	p := buildCube(t)

	types := p.FaceTypes()
	if len(types) != 1 || types[4] != 6 {
		t.Errorf("cube face types = %v, want 6 quadrilaterals", types)
	}

	if got := PolygonName(4); got != "quadrilaterals" {
		t.Errorf("PolygonName(4) = %q", got)
	}
	if got := PolygonName(3); got != "triangles" {
		t.Errorf("PolygonName(3) = %q", got)
	}
	if got := PolygonName(13); got != "13-gons" {
		t.Errorf("PolygonName(13) = %q", got)
	}
}
