package operator

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/allytrope/shapeshift/geometry"
	"github.com/allytrope/shapeshift/polytope"
)

// Stellate extends every edge, as an infinite line, until it meets the
// other edge lines. For each edge the intersection points are bucketed into
// distinct distance tiers from the edge's own midpoint; Options.Stellation
// picks the tier supplying the edge's two extended endpoints (one on each
// side of the midpoint). Order 1 is the base polytope itself.
//
// Faces are rebuilt per original face by walking its ordered boundary and
// replacing each edge with that edge's two chosen points in traversal
// order; welding collapses shared endpoints, so order 1 reproduces the
// input combinatorics exactly.
//
// A requested order with no matching tier, or a tier that does not yield
// one point on each side of the midpoint, fails with ErrStellationOrder
// rather than returning a silently wrong shape.
func Stellate(p *polytope.Polytope, o Options) (*polytope.Polytope, error) {
	if o.Stellation < 1 {
		return nil, fmt.Errorf("%w: order %d", ErrStellationOrder, o.Stellation)
	}
	eps := o.Tolerance
	if eps == 0 {
		eps = geometry.DefaultTolerance
	}

	edges := p.Edges()
	segments := make([][2]mgl64.Vec3, len(edges))
	pairToEdge := make(map[[2]int]int, len(edges))
	for i, edge := range edges {
		verts, err := p.Children(edge)
		if err != nil {
			return nil, err
		}
		a, _ := p.Position(verts[0])
		b, _ := p.Position(verts[1])
		segments[i] = [2]mgl64.Vec3{a, b}

		key := [2]int{verts[0].Index, verts[1].Index}
		if key[0] > key[1] {
			key[0], key[1] = key[1], key[0]
		}
		pairToEdge[key] = i
	}

	// Each edge's extension is independent of every other edge's result.
	type extension struct {
		back, fwd mgl64.Vec3
		err       error
	}
	extensions := make([]extension, len(edges))
	task(o.Workers, segments, func(i int, seg [2]mgl64.Vec3) {
		back, fwd, err := extendEdge(i, segments, o.Stellation, eps)
		extensions[i] = extension{back: back, fwd: fwd, err: err}
	})
	for _, ext := range extensions {
		if ext.err != nil {
			return nil, ext.err
		}
	}

	pool := geometry.NewPool(o.Tolerance)
	var newFaces [][]int

	for _, face := range p.Faces() {
		boundary, err := p.OrderedBoundary(face)
		if err != nil {
			return nil, err
		}

		newFace := make([]int, 0, 2*len(boundary))
		for x := range boundary {
			cur := boundary[x]
			next := boundary[(x+1)%len(boundary)]

			key := [2]int{cur.Index, next.Index}
			if key[0] > key[1] {
				key[0], key[1] = key[1], key[0]
			}
			edgeIdx, ok := pairToEdge[key]
			if !ok {
				return nil, fmt.Errorf("%w: face %d uses unknown edge", polytope.ErrBrokenCycle, face.Index)
			}

			// Chosen points in traversal order: back/fwd are relative to
			// the edge's own direction, which the walk may reverse.
			first, second := extensions[edgeIdx].back, extensions[edgeIdx].fwd
			verts, _ := p.Children(polytope.ID{Rank: 1, Index: edgeIdx})
			if verts[0].Index != cur.Index {
				first, second = second, first
			}
			newFace = append(newFace, pool.Index(first), pool.Index(second))
		}
		newFaces = append(newFaces, compressFace(newFace))
	}

	return polytope.Build(pool.Points(), newFaces)
}

// extendEdge intersects edge i's line against every other edge line and
// returns the two points at the requested distance tier, one on each side
// of the edge midpoint.
func extendEdge(i int, segments [][2]mgl64.Vec3, order int, eps float64) (back, fwd mgl64.Vec3, err error) {
	a, b := segments[i][0], segments[i][1]
	mid := geometry.Midpoint(a, b)
	dir := b.Sub(a).Normalize()

	// Distinct intersection points on this edge's line. Same-tier,
	// same-side hits from different lines land on the same point, so a
	// proximity dedup keeps one representative each.
	var points []mgl64.Vec3
	for j, seg := range segments {
		if j == i {
			continue
		}
		pt, ok := geometry.IntersectLines(a, b, seg[0], seg[1], eps)
		if !ok {
			continue
		}
		duplicate := false
		for _, existing := range points {
			if geometry.ApproxEqual(existing, pt, eps) {
				duplicate = true
				break
			}
		}
		if !duplicate {
			points = append(points, pt)
		}
	}

	// Distance tiers, tolerance-welded and sorted ascending.
	var tiers []float64
	for _, pt := range points {
		d := pt.Sub(mid).Len()
		seen := false
		for _, t := range tiers {
			if math.Abs(t-d) <= eps {
				seen = true
				break
			}
		}
		if !seen {
			tiers = append(tiers, d)
		}
	}
	for x := 1; x < len(tiers); x++ {
		for y := x; y > 0 && tiers[y] < tiers[y-1]; y-- {
			tiers[y], tiers[y-1] = tiers[y-1], tiers[y]
		}
	}

	if order > len(tiers) {
		return back, fwd, fmt.Errorf("%w: order %d requested, %d tiers available on edge %d",
			ErrStellationOrder, order, len(tiers), i)
	}
	tier := tiers[order-1]

	var haveBack, haveFwd bool
	for _, pt := range points {
		if math.Abs(pt.Sub(mid).Len()-tier) > eps {
			continue
		}
		if pt.Sub(mid).Dot(dir) < 0 {
			back, haveBack = pt, true
		} else {
			fwd, haveFwd = pt, true
		}
	}
	if !haveBack || !haveFwd {
		return back, fwd, fmt.Errorf("%w: tier %d of edge %d has no endpoint pair",
			ErrStellationOrder, order, i)
	}

	return back, fwd, nil
}
