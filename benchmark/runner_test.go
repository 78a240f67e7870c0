package benchmark_test

import (
	"bytes"
	"context"
	"encoding/csv"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/latmax/algo"
	"github.com/katalvlaran/latmax/benchmark"
)

type RunnerSuite struct {
	suite.Suite
	logger *logrus.Logger
	hook   *test.Hook
}

func (s *RunnerSuite) SetupTest() {
	s.logger, s.hook = test.NewNullLogger()
	s.logger.SetLevel(logrus.DebugLevel)
}

func (s *RunnerSuite) config() *benchmark.Config {
	cfg := benchmark.DefaultConfig()
	cfg.Algorithms = nil
	for _, k := range algo.Kinds() {
		cfg.Algorithms = append(cfg.Algorithms, k.String())
	}
	cfg.NBR = []benchmark.NBR{{N: 5, B: 2, R: 4}, {N: 4, B: 3, R: 5}}
	cfg.Timeouts = []time.Duration{0}
	cfg.Samples = 2
	cfg.Parallelism = 2

	return cfg
}

func (s *RunnerSuite) run(cfg *benchmark.Config, opts ...benchmark.Option) [][]string {
	r, err := benchmark.NewRunner(cfg, append([]benchmark.Option{benchmark.WithLogger(s.logger)}, opts...)...)
	require.NoError(s.T(), err)
	var buf bytes.Buffer
	require.NoError(s.T(), r.Run(context.Background(), benchmark.NewCSVWriter(&buf, true)))
	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(s.T(), err)
	require.NotEmpty(s.T(), rows)
	require.Equal(s.T(), benchmark.Header, rows[0])

	return rows[1:]
}

func column(name string) int {
	for i, h := range benchmark.Header {
		if h == name {
			return i
		}
	}
	panic(name)
}

func (s *RunnerSuite) TestRecordsCoverEveryRun() {
	cfg := s.config()
	rows := s.run(cfg)
	require.Len(s.T(), rows, len(cfg.NBR)*len(cfg.Algorithms)*len(cfg.Timeouts)*cfg.Samples)

	for _, row := range rows {
		opt, err := strconv.ParseFloat(row[column("opt")], 64)
		require.NoError(s.T(), err)
		approx, err := strconv.ParseFloat(row[column("approx")], 64)
		require.NoError(s.T(), err)
		ratio, err := strconv.ParseFloat(row[column("ratio")], 64)
		require.NoError(s.T(), err)
		require.LessOrEqual(s.T(), approx, opt+1e-9, "%v", row)
		require.InDelta(s.T(), approx/opt, ratio, 1e-12)
		require.Equal(s.T(), "false", row[column("interrupted")])
		calls, err := strconv.Atoi(row[column("calls")])
		require.NoError(s.T(), err)
		require.Positive(s.T(), calls)
	}

	// instance order, then algorithm order
	require.Equal(s.T(), "5", rows[0][column("n")])
	require.Equal(s.T(), algo.SingleUnit.String(), rows[0][column("algorithm")])
	require.Equal(s.T(), "4", rows[len(rows)-1][column("n")])

	var found bool
	for _, e := range s.hook.AllEntries() {
		if e.Message == "computed exact maximum" {
			found = true
		}
	}
	require.True(s.T(), found)
}

func (s *RunnerSuite) TestDeterministicAcrossParallelism() {
	strip := func(rows [][]string) [][]string {
		for _, row := range rows {
			row[column("elapsed")] = ""
		}
		return rows
	}
	cfg := s.config()
	a := strip(s.run(cfg))
	cfg.Parallelism = 1
	b := strip(s.run(cfg))
	require.Equal(s.T(), a, b)
}

func (s *RunnerSuite) TestMetricsObserveRuns() {
	reg := prometheus.NewRegistry()
	m, err := benchmark.NewMetrics(reg)
	require.NoError(s.T(), err)

	cfg := s.config()
	cfg.Algorithms = []string{algo.Soma.String()}
	rows := s.run(cfg, benchmark.WithMetrics(m))

	total := 0
	for _, row := range rows {
		c, err := strconv.Atoi(row[column("calls")])
		require.NoError(s.T(), err)
		total += c
	}
	require.Equal(s.T(), 1, testutil.CollectAndCount(reg, "latmax_oracle_calls_total"))
	require.Equal(s.T(), 1, testutil.CollectAndCount(reg, "latmax_run_duration_seconds"))
	require.Equal(s.T(), 0, testutil.CollectAndCount(reg, "latmax_runs_interrupted_total"))

	mfs, err := reg.Gather()
	require.NoError(s.T(), err)
	var got float64
	for _, mf := range mfs {
		if mf.GetName() == "latmax_oracle_calls_total" {
			got = mf.GetMetric()[0].GetCounter().GetValue()
		}
	}
	require.Equal(s.T(), float64(total), got, "the counter sums the calls column")

	_, err = benchmark.NewMetrics(reg)
	require.Error(s.T(), err, "collectors are already registered")

	var none *benchmark.Metrics
	none.Observe(benchmark.Record{Ratio: math.NaN()})
}

func (s *RunnerSuite) TestTimeoutInterruptsRuns() {
	reg := prometheus.NewRegistry()
	m, err := benchmark.NewMetrics(reg)
	require.NoError(s.T(), err)

	cfg := s.config()
	cfg.Algorithms = []string{algo.SingleUnit.String()}
	cfg.NBR = []benchmark.NBR{{N: 8, B: 3, R: 20}}
	cfg.Timeouts = []time.Duration{time.Nanosecond}
	cfg.Samples = 3
	rows := s.run(cfg, benchmark.WithMetrics(m))
	require.Len(s.T(), rows, cfg.Samples)

	for _, row := range rows {
		require.Equal(s.T(), "true", row[column("interrupted")], "%v", row)
		opt, err := strconv.ParseFloat(row[column("opt")], 64)
		require.NoError(s.T(), err)
		approx, err := strconv.ParseFloat(row[column("approx")], 64)
		require.NoError(s.T(), err)
		require.LessOrEqual(s.T(), approx, opt)
		calls, err := strconv.Atoi(row[column("calls")])
		require.NoError(s.T(), err)
		require.Positive(s.T(), calls, "construction evaluates f(0)")
	}

	mfs, err := reg.Gather()
	require.NoError(s.T(), err)
	var interrupted float64
	for _, mf := range mfs {
		if mf.GetName() == "latmax_runs_interrupted_total" {
			interrupted = mf.GetMetric()[0].GetCounter().GetValue()
		}
	}
	require.Equal(s.T(), float64(cfg.Samples), interrupted)
}

func (s *RunnerSuite) TestGraphObjectives() {
	cfg := s.config()
	cfg.Algorithms = []string{algo.ThresholdDecay.String(), algo.SomaCapacity.String()}
	cfg.NBR = []benchmark.NBR{{N: 4, B: 2, R: 3}}
	cfg.Graph = benchmark.Graph{Ratio: 1.5, P: 0.5}
	for _, obj := range []string{benchmark.FacilityLocation, benchmark.BudgetAllocation} {
		cfg.Objective = obj
		rows := s.run(cfg)
		require.Len(s.T(), rows, 4, obj)
		for _, row := range rows {
			require.Equal(s.T(), obj, row[column("objective")])
			require.Equal(s.T(), "4", row[column("n")])
		}
	}
}

func (s *RunnerSuite) TestEdgeListInput() {
	path := filepath.Join(s.T().TempDir(), "edges.csv")
	require.NoError(s.T(), os.WriteFile(path, []byte("a,x,0.5\nb,y,0.25\nb,x,0.75\n"), 0o600))

	cfg := s.config()
	cfg.Objective = benchmark.BudgetAllocation
	cfg.Algorithms = []string{algo.Boost.String()}
	cfg.NBR = []benchmark.NBR{{N: 99, B: 2, R: 3}}
	cfg.Graph = benchmark.Graph{EdgeList: path}
	rows := s.run(cfg)
	require.Len(s.T(), rows, 2)
	require.Equal(s.T(), "2", rows[0][column("n")], "n comes from the edge list")

	cfg.NBR = []benchmark.NBR{{N: 1, B: 1, R: 3}}
	r, err := benchmark.NewRunner(cfg, benchmark.WithLogger(s.logger))
	require.NoError(s.T(), err)
	require.Error(s.T(), r.Run(context.Background(), benchmark.NewCSVWriter(&bytes.Buffer{}, true)))

	cfg.Graph.EdgeList = filepath.Join(s.T().TempDir(), "missing.csv")
	_, err = benchmark.NewRunner(cfg)
	require.Error(s.T(), err)
}

func (s *RunnerSuite) TestCancelledContext() {
	r, err := benchmark.NewRunner(s.config(), benchmark.WithLogger(s.logger))
	require.NoError(s.T(), err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err = r.Run(ctx, benchmark.NewCSVWriter(&bytes.Buffer{}, true))
	require.ErrorIs(s.T(), err, context.Canceled)
}

func (s *RunnerSuite) TestSkipsExactWhenTooLarge() {
	cfg := s.config()
	cfg.Algorithms = []string{algo.SingleUnit.String()}
	cfg.ExactLimit = 10
	rows := s.run(cfg)
	for _, row := range rows {
		assert.Equal(s.T(), "NaN", row[column("opt")])
		assert.Equal(s.T(), "NaN", row[column("ratio")])
	}
}

func TestRunnerSuite(t *testing.T) {
	suite.Run(t, new(RunnerSuite))
}

func TestCSVWriterHeaderOnce(t *testing.T) {
	var buf bytes.Buffer
	w := benchmark.NewCSVWriter(&buf, true)
	rec := benchmark.Record{I: 1, Algorithm: "SSG", Objective: "demo_monotone", N: 5, B: 2, R: 4,
		Opt: 180, Approx: 170, Ratio: 170.0 / 180, Calls: 33, Timeout: time.Second, Elapsed: 1500 * time.Microsecond}
	require.NoError(t, w.Write(rec))
	require.NoError(t, w.Write(rec))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"1", "SSG", "demo_monotone", "5", "2", "4", "180", "170", strconv.FormatFloat(170.0/180, 'g', -1, 64), "33", "1.000000", "0.001500", "false"}, rows[1])

	buf.Reset()
	require.NoError(t, benchmark.NewCSVWriter(&buf, false).Write(rec))
	rows, err = csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 1)
}
