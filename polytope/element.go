// Package polytope implements the n-dimensional cell hierarchy: elements of
// every rank with mutually consistent subface/superface links, topological
// queries over them, and the builder that derives the hierarchy from raw
// vertex and face lists.
//
// Elements live in a per-rank arena and reference each other by index, so
// the doubly-linked hierarchy carries no ownership cycles: superface
// back-links are plain ints with no lifetime implication, and links can
// never be traversed across distinct Polytope instances.
package polytope

import "github.com/go-gl/mathgl/mgl64"

// ID addresses one element of a Polytope: rank 0 is a vertex, 1 an edge,
// 2 a face, 3 a cell.
type ID struct {
	Rank, Index int
}

// Element is a single cell of fixed rank.
//
// A rank-0 element stores its coordinates and has no subfaces; every other
// rank stores the indices of its boundary elements one rank down. The
// superfaces list is the back-reference (one rank up) kept consistent by
// the builder; elements never own their superfaces.
type Element struct {
	coords     mgl64.Vec3 // rank 0 only
	subfaces   []int
	superfaces []int
}

// Subfaces returns the indices (at rank-1) of the element's boundary.
func (e *Element) Subfaces() []int { return e.subfaces }

// Superfaces returns the indices (at rank+1) of the elements containing e.
func (e *Element) Superfaces() []int { return e.superfaces }
