package operator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allytrope/shapeshift/polytope"
)

func TestPlaceholdersReturnInputUnchanged(t *testing.T) {
	tests := []struct {
		name string
		fn   Func
	}{
		{name: "cap", fn: Cap},
		{name: "bridge", fn: Bridge},
		{name: "decompose", fn: Decompose},
		{name: "uncouple", fn: Uncouple},
		{name: "greaten", fn: Greaten},
	}

	seed := polytope.Cube()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := tt.fn(seed, DefaultOptions())
			require.ErrorIs(t, err, ErrUnfinished)
			assert.Same(t, seed, p, "an unfinished operator hands back its input")
		})
	}
}
