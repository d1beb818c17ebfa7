package geometry

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// ClosestToOrigin returns the point on the infinite line through a and b
// nearest the origin. This is the midsphere projection used by the
// midsphere rectification method: for a polyhedron with a midsphere, this
// point is where the edge line touches that sphere.
//
// Degenerate input (a == b) returns a itself.
func ClosestToOrigin(a, b mgl64.Vec3) mgl64.Vec3 {
	dir := b.Sub(a)

	lenSq := dir.Dot(dir)
	if lenSq < 1e-18 {
		return a
	}

	// Project the origin onto the line: a + t*dir with t = -(a·dir)/|dir|².
	t := -a.Dot(dir) / lenSq
	return a.Add(dir.Mul(t))
}

// DistanceToOrigin returns the distance from the origin to the infinite
// line through a and b.
func DistanceToOrigin(a, b mgl64.Vec3) float64 {
	return ClosestToOrigin(a, b).Len()
}

// IntersectLines computes the intersection of the infinite 3D lines through
// (a1,a2) and (b1,b2). The second return is false when the lines are
// parallel (or coincident) or when they are skew: the closest points on the
// two lines are farther apart than eps.
//
// For nearly-intersecting lines within eps the midpoint of the two closest
// points is returned, which keeps the result stable under floating-point
// noise in the edge coordinates.
func IntersectLines(a1, a2, b1, b2 mgl64.Vec3, eps float64) (mgl64.Vec3, bool) {
	d1 := a2.Sub(a1)
	d2 := b2.Sub(b1)
	w := a1.Sub(b1)

	a := d1.Dot(d1)
	b := d1.Dot(d2)
	c := d2.Dot(d2)
	d := d1.Dot(w)
	e := d2.Dot(w)

	denom := a*c - b*b
	// denom scales with |d1|²|d2|²sin²θ; normalize the parallel test so it
	// does not depend on edge length.
	if a < 1e-18 || c < 1e-18 || math.Abs(denom) < 1e-12*a*c {
		return mgl64.Vec3{}, false
	}

	s := (b*e - c*d) / denom
	t := (a*e - b*d) / denom

	p1 := a1.Add(d1.Mul(s))
	p2 := b1.Add(d2.Mul(t))

	if eps == 0 {
		eps = DefaultTolerance
	}
	if p1.Sub(p2).Len() > eps {
		return mgl64.Vec3{}, false
	}

	return Midpoint(p1, p2), true
}
