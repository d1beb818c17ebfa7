package polytope

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// phi is the golden ratio, fixing the dodecahedron and icosahedron tables.
var phi = (1 + math.Sqrt(5)) / 2

// mustBuild wraps Build for the literal seed tables below, which are known
// valid.
func mustBuild(vertices []mgl64.Vec3, faces [][]int) *Polytope {
	p, err := Build(vertices, faces)
	if err != nil {
		panic(err)
	}
	return p
}

// Tetrahedron returns a fresh regular tetrahedron.
func Tetrahedron() *Polytope {
	return mustBuild(
		[]mgl64.Vec3{
			{1, 1, 1}, {-1, -1, 1}, {-1, 1, -1}, {1, -1, -1},
		},
		[][]int{
			{0, 1, 2}, {0, 2, 3}, {0, 1, 3}, {1, 2, 3},
		},
	)
}

// Cube returns a fresh cube.
func Cube() *Polytope {
	return mustBuild(
		[]mgl64.Vec3{
			{1, 1, 1}, {1, 1, -1}, {1, -1, -1}, {1, -1, 1},
			{-1, -1, 1}, {-1, -1, -1}, {-1, 1, -1}, {-1, 1, 1},
		},
		[][]int{
			{0, 1, 2, 3}, {0, 1, 6, 7}, {0, 3, 4, 7},
			{4, 5, 6, 7}, {4, 5, 2, 3}, {1, 2, 5, 6},
		},
	)
}

// Octahedron returns a fresh regular octahedron.
func Octahedron() *Polytope {
	return mustBuild(
		[]mgl64.Vec3{
			{0, 1, 0}, {1, 0, 0}, {0, 0, 1}, {-1, 0, 0}, {0, 0, -1}, {0, -1, 0},
		},
		[][]int{
			{0, 1, 4}, {0, 1, 2}, {0, 2, 3}, {0, 3, 4},
			{1, 4, 5}, {1, 2, 5}, {2, 3, 5}, {3, 4, 5},
		},
	)
}

// Dodecahedron returns a fresh regular dodecahedron.
func Dodecahedron() *Polytope {
	return mustBuild(
		[]mgl64.Vec3{
			{1, 1, 1}, {1, 1, -1}, {1, -1, 1}, {-1, 1, 1},
			{-1, 1, -1}, {-1, -1, 1}, {1, -1, -1}, {-1, -1, -1},
			{0, phi, 1 / phi}, {0, phi, -1 / phi}, {0, -phi, 1 / phi}, {0, -phi, -1 / phi},
			{1 / phi, 0, phi}, {1 / phi, 0, -phi}, {-1 / phi, 0, phi}, {-1 / phi, 0, -phi},
			{phi, 1 / phi, 0}, {phi, -1 / phi, 0}, {-phi, 1 / phi, 0}, {-phi, -1 / phi, 0},
		},
		[][]int{
			{14, 12, 2, 10, 5}, {12, 0, 16, 17, 2}, {2, 17, 6, 11, 10},
			{5, 10, 11, 7, 19}, {17, 16, 1, 13, 6}, {6, 13, 15, 7, 11},
			{14, 3, 18, 19, 5}, {14, 12, 0, 8, 3}, {3, 8, 9, 4, 18},
			{19, 18, 4, 15, 7}, {8, 0, 16, 1, 9}, {9, 1, 13, 15, 4},
		},
	)
}

// Icosahedron returns a fresh regular icosahedron.
func Icosahedron() *Polytope {
	return mustBuild(
		[]mgl64.Vec3{
			{0, 1, phi}, {0, 1, -phi}, {0, -1, phi}, {0, -1, -phi},
			{1, phi, 0}, {1, -phi, 0}, {-1, phi, 0}, {-1, -phi, 0},
			{phi, 0, 1}, {phi, 0, -1}, {-phi, 0, 1}, {-phi, 0, -1},
		},
		[][]int{
			{4, 0, 6}, {4, 6, 1}, {1, 11, 6}, {6, 11, 10}, {6, 10, 0},
			{3, 1, 11}, {3, 11, 7}, {3, 7, 5}, {3, 5, 9}, {3, 9, 1},
			{10, 11, 7}, {1, 4, 9}, {2, 8, 5}, {5, 8, 9}, {2, 5, 7},
			{0, 4, 8}, {0, 2, 8}, {0, 2, 10}, {2, 7, 10}, {4, 8, 9},
		},
	)
}
