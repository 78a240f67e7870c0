package greedy_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/latmax/bipartite"
	"github.com/katalvlaran/latmax/greedy"
	"github.com/katalvlaran/latmax/lattice"
	"github.com/katalvlaran/latmax/objective"
)

// algorithm is the common one-shot signature of the variants under test.
type algorithm func(*rand.Rand, objective.Oracle, int, ...greedy.Option) (lattice.Vector, float64, error)

var variants = map[string]algorithm{
	"SingleUnit":     greedy.SingleUnit,
	"Boost":          greedy.Boost,
	"ThresholdDecay": greedy.ThresholdDecay,
	"LaiDR":          greedy.LaiDR,
}

// scenario is the n=5, B=2, w=[10..50] modular instance.
func scenario(t testing.TB) *objective.Modular {
	t.Helper()
	f, err := objective.NewModular([]float64{10, 20, 30, 40, 50}, lattice.Uniform(5, 2))
	require.NoError(t, err)

	return f
}

// concave is f(x) = Σ_e w_e·√x_e over caps.
func concave(t testing.TB, w []float64, caps lattice.Vector) *objective.Func {
	t.Helper()
	f, err := objective.NewFunc("concave", caps, func(x lattice.Vector) (float64, error) {
		v := 0.0
		for e, c := range x {
			v += w[e] * math.Sqrt(float64(c))
		}
		return v, nil
	})
	require.NoError(t, err)

	return f
}

// budget builds a random budget allocation instance with uneven capacities.
func budget(t testing.TB, seed int64, n int) *objective.BudgetAllocation {
	t.Helper()
	g, err := bipartite.Random(n, 2*n, 0.3, bipartite.WithSeed(seed),
		bipartite.WithWeightFn(func(r *rand.Rand) float64 { return 0.05 + 0.5*r.Float64() }))
	require.NoError(t, err)
	caps := make(lattice.Vector, n)
	for e := range caps {
		caps[e] = e%4 + 1
	}
	f, err := objective.NewBudgetAllocation(g, caps)
	require.NoError(t, err)

	return f
}

// stepper mirrors the resumable surface of the greedy states.
type stepper interface {
	Step() error
	Done() bool
	Solution() (lattice.Vector, float64)
}
