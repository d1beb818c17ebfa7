// Package geometry provides the scalar and vector primitives shared by the
// polytope builder and the operator library: lexicographic comparison,
// tolerance equality, interpolation, line geometry, and the vertex
// deduplication pool.
package geometry

import (
	"github.com/go-gl/mathgl/mgl64"
)

// DefaultTolerance is the absolute tolerance used for vertex welding and
// geometric predicates when the caller does not supply one. Coordinates of
// the seed solids are all of magnitude ~1, so an absolute tolerance is
// appropriate at this scale.
const DefaultTolerance = 1e-9

// CompareVec3 compares vectors lexicographically (x, then y, then z).
// Used to normalize undirected edges so (a,b) and (b,a) dedup as one.
func CompareVec3(a, b mgl64.Vec3) int {
	for i := 0; i < 3; i++ {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// ApproxEqual reports whether a and b match component-wise within eps.
// eps of zero demands exact equality.
func ApproxEqual(a, b mgl64.Vec3, eps float64) bool {
	if eps == 0 {
		return a == b
	}
	return a.ApproxEqualThreshold(b, eps)
}

// Lerp returns the point a fraction t of the way from a to b.
func Lerp(a, b mgl64.Vec3, t float64) mgl64.Vec3 {
	return a.Add(b.Sub(a).Mul(t))
}

// Midpoint returns the arithmetic midpoint of a and b.
func Midpoint(a, b mgl64.Vec3) mgl64.Vec3 {
	return Lerp(a, b, 0.5)
}

// Centroid returns the arithmetic mean of points.
// Returns the zero vector for an empty slice.
func Centroid(points []mgl64.Vec3) mgl64.Vec3 {
	if len(points) == 0 {
		return mgl64.Vec3{}
	}

	var sum mgl64.Vec3
	for _, p := range points {
		sum = sum.Add(p)
	}

	return sum.Mul(1.0 / float64(len(points)))
}
