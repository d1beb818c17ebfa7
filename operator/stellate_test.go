package operator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allytrope/shapeshift/polytope"
)

func TestStellateOrderOneIsIdentity(t *testing.T) {
	// The first tier on every edge line is the edge's own endpoints, so
	// order 1 reproduces the input combinatorics.
	seeds := map[string]func() *polytope.Polytope{
		"tetrahedron": polytope.Tetrahedron,
		"cube":        polytope.Cube,
		"octahedron":  polytope.Octahedron,
	}

	for name, build := range seeds {
		t.Run(name, func(t *testing.T) {
			seed := build()
			o := DefaultOptions()
			o.Stellation = 1

			p, err := Stellate(seed, o)
			require.NoError(t, err)
			assert.Equal(t, seed.Stats(), p.Stats())
			assert.Equal(t, seed.FaceTypes(), p.FaceTypes())
		})
	}
}

func TestStellateCubeHasNoSecondOrder(t *testing.T) {
	// Cube edge lines are axis-parallel and meet other edge lines only at
	// the shared vertices, leaving a single tier.
	o := DefaultOptions()
	o.Stellation = 2

	_, err := Stellate(polytope.Cube(), o)
	require.ErrorIs(t, err, ErrStellationOrder)
}

func TestStellateRejectsAbsurdOrder(t *testing.T) {
	o := DefaultOptions()
	o.Stellation = 99

	_, err := Stellate(polytope.Tetrahedron(), o)
	require.ErrorIs(t, err, ErrStellationOrder)
}

func TestStellateRejectsNonPositiveOrder(t *testing.T) {
	o := DefaultOptions()
	o.Stellation = 0

	_, err := Stellate(polytope.Cube(), o)
	require.ErrorIs(t, err, ErrStellationOrder)
}

func TestStellateRunsWithMultipleWorkers(t *testing.T) {
	o := DefaultOptions()
	o.Stellation = 1
	o.Workers = 4

	p, err := Stellate(polytope.Icosahedron(), o)
	require.NoError(t, err)
	assert.Equal(t, polytope.Icosahedron().Stats(), p.Stats())
}
