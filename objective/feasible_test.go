package objective_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/latmax/lattice"
	"github.com/katalvlaran/latmax/objective"
)

func TestCheckBudget(t *testing.T) {
	f, err := objective.NewModular([]float64{1, 2, 3}, lattice.Vector{2, 0, 1})
	require.NoError(t, err)

	caps, err := objective.CheckBudget(f, 3)
	require.NoError(t, err)
	assert.Equal(t, lattice.Vector{2, 0, 1}, caps)
	_, err = objective.CheckBudget(f, 0)
	require.NoError(t, err)

	_, err = objective.CheckBudget(f, 4)
	require.ErrorIs(t, err, objective.ErrInfeasible)
	_, err = objective.CheckBudget(f, -1)
	require.ErrorIs(t, err, objective.ErrBadBudget)
	_, err = objective.CheckBudget(nil, 1)
	require.ErrorIs(t, err, objective.ErrNilOracle)
	assert.Zero(t, f.Calls(), "validation never evaluates f")
}

func TestBestUnitGain(t *testing.T) {
	// concave per coordinate: the first unit of e=0 beats it, the full block of e=2 wins
	f, err := objective.NewFunc("steps", lattice.Vector{3, 0, 4}, func(x lattice.Vector) (float64, error) {
		v := 5.0
		if x[0] > 0 {
			v += 4
		}
		return v + 1.5*float64(x[2]), nil
	})
	require.NoError(t, err)

	gain, base, err := objective.BestUnitGain(f, f.Capacity(), false)
	require.NoError(t, err)
	assert.Equal(t, 5.0, base)
	assert.Equal(t, 4.0, gain)
	assert.Equal(t, 3, f.Calls(), "f(0) plus one probe per coordinate with capacity")

	gain, _, err = objective.BestUnitGain(f, f.Capacity(), true)
	require.NoError(t, err)
	assert.Equal(t, 6.0, gain)

	empty, err := objective.NewModular([]float64{1, 1}, lattice.Vector{0, 0})
	require.NoError(t, err)
	gain, base, err = objective.BestUnitGain(empty, empty.Capacity(), false)
	require.NoError(t, err)
	assert.Zero(t, gain)
	assert.Zero(t, base)
}
