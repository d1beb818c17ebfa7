package geometry

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestPoolIndexAssignsSequentialIndices(t *testing.T) {
	pool := NewPool(1e-9)

	points := []mgl64.Vec3{
		{1, 1, 1}, {-1, 1, 1}, {1, -1, 1},
	}
	for i, pt := range points {
		if got := pool.Index(pt); got != i {
			t.Errorf("Index(%v) = %d, want %d", pt, got, i)
		}
	}
	if pool.Len() != 3 {
		t.Errorf("Len = %d, want 3", pool.Len())
	}
}

func TestPoolIndexIdempotent(t *testing.T) {
	pool := NewPool(1e-9)

	pt := mgl64.Vec3{0.5, -0.25, 1.75}
	first := pool.Index(pt)
	second := pool.Index(pt)

	if first != second {
		t.Errorf("second Index = %d, want %d", second, first)
	}
	if pool.Len() != 1 {
		t.Errorf("Len after double insert = %d, want 1", pool.Len())
	}
}

func TestPoolWeldsWithinTolerance(t *testing.T) {
	pool := NewPool(1e-9)

	a := mgl64.Vec3{1, 2, 3}
	b := mgl64.Vec3{1 + 1e-11, 2 - 1e-11, 3}

	if pool.Index(a) != pool.Index(b) {
		t.Error("points within tolerance got distinct indices")
	}
	if pool.Len() != 1 {
		t.Errorf("Len = %d, want 1", pool.Len())
	}
}

func TestPoolWeldsAcrossCellBoundary(t *testing.T) {
	// Two points straddling a grid cell boundary must still weld; the
	// lookup probes the surrounding cells.
	pool := NewPool(1e-9)

	a := mgl64.Vec3{0.25 - 1e-11, 0, 0}
	b := mgl64.Vec3{0.25 + 1e-11, 0, 0}

	if pool.Index(a) != pool.Index(b) {
		t.Error("points straddling a cell boundary got distinct indices")
	}
}

func TestPoolExactMode(t *testing.T) {
	pool := NewPool(0)

	a := mgl64.Vec3{1, 2, 3}
	b := mgl64.Vec3{1 + 1e-15, 2, 3}

	ia := pool.Index(a)
	ib := pool.Index(b)
	if ia == ib {
		t.Error("exact mode welded distinct points")
	}
	if pool.Len() != 2 {
		t.Errorf("Len = %d, want 2", pool.Len())
	}
}

func TestPoolLookup(t *testing.T) {
	pool := NewPool(1e-9)
	pool.Index(mgl64.Vec3{1, 0, 0})

	if _, ok := pool.Lookup(mgl64.Vec3{1, 0, 0}); !ok {
		t.Error("Lookup missed a pooled point")
	}
	if _, ok := pool.Lookup(mgl64.Vec3{2, 0, 0}); ok {
		t.Error("Lookup found a point never pooled")
	}
}

func TestPoolPointsPreserveInsertionOrder(t *testing.T) {
	pool := NewPool(1e-9)

	in := []mgl64.Vec3{{3, 0, 0}, {1, 0, 0}, {2, 0, 0}}
	for _, pt := range in {
		pool.Index(pt)
	}

	out := pool.Points()
	if len(out) != len(in) {
		t.Fatalf("Points length = %d, want %d", len(out), len(in))
	}
	for i := range in {
		if out[i] != in[i] {
			t.Errorf("Points[%d] = %v, want %v", i, out[i], in[i])
		}
	}
}
