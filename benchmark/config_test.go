package benchmark_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/latmax/algo"
	"github.com/katalvlaran/latmax/benchmark"
	"github.com/katalvlaran/latmax/objective"
)

const sampleConfig = `
seed: 7
objective: demo_non_monotone
algorithms: [SGL-I, threshold-decay, SSG]
nbr:
  - [5, 2, 4]
  - [3, 1, 2]
timeouts: [100ms, 1s]
samples: 3
epsilon: 0.1
parallelism: 2
`

func TestParseConfig(t *testing.T) {
	cfg, err := benchmark.ParseConfig([]byte(sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, int64(7), cfg.Seed)
	assert.Equal(t, benchmark.DemoNonMonotone, cfg.Objective)
	assert.Equal(t, []benchmark.NBR{{N: 5, B: 2, R: 4}, {N: 3, B: 1, R: 2}}, cfg.NBR)
	assert.Equal(t, []time.Duration{100 * time.Millisecond, time.Second}, cfg.Timeouts)
	assert.Equal(t, 3, cfg.Samples)
	assert.Equal(t, 0.1, cfg.Epsilon)
	assert.Equal(t, 2, cfg.Workers())

	kinds, err := cfg.Kinds()
	require.NoError(t, err)
	assert.Equal(t, []algo.Kind{algo.SingleUnit, algo.ThresholdDecay, algo.SetStochasticGreedy}, kinds)
}

func TestConfigMarshalRoundTrip(t *testing.T) {
	cfg, err := benchmark.ParseConfig([]byte(sampleConfig))
	require.NoError(t, err)
	data, err := cfg.Marshal()
	require.NoError(t, err)
	back, err := benchmark.ParseConfig(data)
	require.NoError(t, err)
	if diff := cmp.Diff(cfg, back); diff != "" {
		t.Fatalf("config changed after round trip (-want +got):\n%s", diff)
	}
}

func TestParseConfigSweep(t *testing.T) {
	cfg, err := benchmark.ParseConfig([]byte("sweep: {nBase: 1, bBase: 1}\n"))
	require.NoError(t, err)
	assert.Equal(t, benchmark.GenerateNBR(1, 1), cfg.NBR)
	assert.Equal(t, benchmark.DefaultConfig().Algorithms, cfg.Algorithms)
}

func TestConfigValidation(t *testing.T) {
	cases := map[string]string{
		"unknown objective": "objective: nope\n",
		"empty algorithms":  "algorithms: []\n",
		"bad triplet":       "nbr: [[0, 1, 1]]\n",
		"short triplet":     "nbr: [[1, 1]]\n",
		"negative timeout":  "timeouts: [-1s]\n",
		"no samples":        "samples: 0\n",
		"epsilon":           "epsilon: 1\n",
		"graph ratio":       "objective: facility_location\ngraph: {ratio: 0, p: 0.5}\n",
		"graph p":           "objective: budget_allocation\ngraph: {ratio: 1, p: 2}\n",
		"unknown field":     "samplez: 3\n",
	}
	for name, doc := range cases {
		_, err := benchmark.ParseConfig([]byte(doc))
		assert.Error(t, err, name)
	}

	_, err := benchmark.ParseConfig([]byte("algorithms: [SGL-IV]\n"))
	require.ErrorIs(t, err, algo.ErrUnknownKind)
	_, err = benchmark.ParseConfig([]byte("nbr: [[2, 2, 5]]\n"))
	require.ErrorIs(t, err, objective.ErrInfeasible)
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bench.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleConfig), 0o600))
	t.Setenv("LATMAX_TEST_DIR", dir)

	cfg, err := benchmark.LoadConfig("$LATMAX_TEST_DIR/bench.yaml")
	require.NoError(t, err)
	assert.Equal(t, int64(7), cfg.Seed)

	_, err = benchmark.LoadConfig(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
}

func TestGenerateNBR(t *testing.T) {
	all := benchmark.GenerateNBR(1, 1)
	require.Len(t, all, 98)
	assert.Equal(t, benchmark.NBR{N: 2, B: 1, R: 1}, all[0])
	for _, v := range all {
		assert.LessOrEqual(t, v.B, v.R, "%v", v)
		assert.Less(t, v.R, v.N*v.B, "%v", v)
	}

	big := benchmark.GenerateNBR(50, 5)
	require.Len(t, big, 175)
	assert.Equal(t, benchmark.NBR{N: 50, B: 5, R: 7}, big[1], "r = ⌊1.5·b⌋")
}
