package geometry

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// CellKey addresses a cell of the pool's uniform spatial grid.
type CellKey struct {
	X, Y, Z int
}

// Pool deduplicates vertices generated independently by multiple faces and
// operators. Index returns a stable index for each distinct point, welding
// points that compare equal within the pool's tolerance.
//
// Lookups go through a uniform spatial grid so a query only probes the 27
// cells around the point instead of scanning the whole pool. Cells are
// sized at least twice the tolerance, so any point within eps of the query
// lives in one of the probed cells and the grid preserves exactly the
// linear-scan equality semantics.
type Pool struct {
	eps      float64
	cellSize float64
	points   []mgl64.Vec3
	cells    map[CellKey][]int
}

// NewPool returns an empty pool welding points within eps.
// eps of zero means exact equality.
func NewPool(eps float64) *Pool {
	cellSize := 0.25
	if eps*2 > cellSize {
		cellSize = eps * 2
	}

	return &Pool{
		eps:      eps,
		cellSize: cellSize,
		cells:    make(map[CellKey][]int),
	}
}

// Len returns the number of distinct points in the pool.
func (p *Pool) Len() int {
	return len(p.points)
}

// Points returns the distinct points in insertion order. The slice is the
// pool's backing store; callers hand it to the builder and must not keep
// mutating the pool afterwards.
func (p *Pool) Points() []mgl64.Vec3 {
	return p.points
}

// At returns the point stored at index i.
func (p *Pool) At(i int) mgl64.Vec3 {
	return p.points[i]
}

// Lookup returns the index of a pooled point equal to pt within tolerance.
func (p *Pool) Lookup(pt mgl64.Vec3) (int, bool) {
	center := p.cellOf(pt)

	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			for dz := -1; dz <= 1; dz++ {
				key := CellKey{center.X + dx, center.Y + dy, center.Z + dz}
				for _, idx := range p.cells[key] {
					if ApproxEqual(p.points[idx], pt, p.eps) {
						return idx, true
					}
				}
			}
		}
	}

	return 0, false
}

// Index returns the index of pt, appending it if no equal point is pooled.
// Idempotent: indexing the same point twice never grows the pool.
func (p *Pool) Index(pt mgl64.Vec3) int {
	if idx, ok := p.Lookup(pt); ok {
		return idx
	}

	idx := len(p.points)
	p.points = append(p.points, pt)

	key := p.cellOf(pt)
	p.cells[key] = append(p.cells[key], idx)

	return idx
}

// cellOf converts a position to grid cell coordinates.
func (p *Pool) cellOf(pt mgl64.Vec3) CellKey {
	return CellKey{
		X: int(math.Floor(pt.X() / p.cellSize)),
		Y: int(math.Floor(pt.Y() / p.cellSize)),
		Z: int(math.Floor(pt.Z() / p.cellSize)),
	}
}
