package lattice_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/latmax/lattice"
)

func TestUnitAndWith(t *testing.T) {
	u := lattice.Unit(4, 2)
	if diff := cmp.Diff(lattice.Vector{0, 0, 1, 0}, u); diff != "" {
		t.Fatalf("Unit mismatch (-want +got):\n%s", diff)
	}

	x := lattice.Vector{1, 2, 3}
	y := x.With(1, 4)
	require.Equal(t, lattice.Vector{1, 6, 3}, y)
	require.Equal(t, lattice.Vector{1, 2, 3}, x, "With must not mutate its receiver")
	require.Equal(t, 10, y.Norm())
}

func TestUnitPanicsOutOfRange(t *testing.T) {
	require.Panics(t, func() { lattice.Unit(3, 3) })
	require.Panics(t, func() { lattice.Unit(3, -1) })
}

func TestCoordinateWise(t *testing.T) {
	a := lattice.Vector{1, 5, 2}
	b := lattice.Vector{3, 4, 2}

	lo, err := lattice.Min(a, b)
	require.NoError(t, err)
	assert.Equal(t, lattice.Vector{1, 4, 2}, lo)

	hi, err := lattice.Max(a, b)
	require.NoError(t, err)
	assert.Equal(t, lattice.Vector{3, 5, 2}, hi)

	assert.True(t, lo.Leq(a))
	assert.True(t, lo.Leq(b))
	assert.False(t, a.Leq(b))

	_, err = lattice.Min(a, lattice.Vector{1})
	require.True(t, errors.Is(err, lattice.ErrDimensionMismatch))

	sum, err := a.Add(b)
	require.NoError(t, err)
	assert.Equal(t, lattice.Vector{4, 9, 4}, sum)
	assert.Equal(t, lattice.Vector{2, 10, 4}, a.Scale(2))
}

func TestWithin(t *testing.T) {
	caps := lattice.Uniform(3, 2)
	assert.True(t, lattice.Vector{0, 2, 1}.Within(caps))
	assert.False(t, lattice.Vector{0, 3, 1}.Within(caps))
	assert.False(t, lattice.Vector{-1, 0, 0}.Within(caps))
	assert.False(t, lattice.Vector{0, 0}.Within(caps))
}

func TestEnumerateVisitsWholeBox(t *testing.T) {
	caps := lattice.Vector{1, 2, 0}
	seen := map[string]bool{}
	var order []lattice.Vector
	err := lattice.Enumerate(caps, func(x lattice.Vector) bool {
		require.True(t, x.Within(caps))
		seen[x.String()] = true
		order = append(order, x)
		return true
	})
	require.NoError(t, err)
	require.Equal(t, lattice.Count(caps), len(seen))
	require.Equal(t, 6, len(order))
	assert.Equal(t, lattice.Vector{0, 0, 0}, order[0])
	assert.Equal(t, lattice.Vector{1, 2, 0}, order[len(order)-1])
}

func TestEnumerateStopsEarly(t *testing.T) {
	calls := 0
	err := lattice.Enumerate(lattice.Uniform(3, 3), func(lattice.Vector) bool {
		calls++
		return calls < 5
	})
	require.NoError(t, err)
	require.Equal(t, 5, calls)
}

func TestEnumerateRejectsNegativeCapacity(t *testing.T) {
	err := lattice.Enumerate(lattice.Vector{1, -1}, func(lattice.Vector) bool { return true })
	require.ErrorIs(t, err, lattice.ErrNegativeCapacity)
}

func TestRandomWithNorm(t *testing.T) {
	rng := rand.New(rand.NewSource(2022))
	caps := lattice.Vector{3, 0, 5, 1, 2}
	for norm := 0; norm <= caps.Norm(); norm++ {
		x, err := lattice.RandomWithNorm(rng, caps, norm)
		require.NoError(t, err)
		require.True(t, x.Within(caps), "x=%v", x)
		require.Equal(t, norm, x.Norm())
	}

	_, err := lattice.RandomWithNorm(rng, caps, caps.Norm()+1)
	require.ErrorIs(t, err, lattice.ErrNormTooLarge)
}
