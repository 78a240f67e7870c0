// SPDX-License-Identifier: MIT
// Package: latmax/benchmark
//
// config.go — YAML run configuration.

package benchmark

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"

	"github.com/katalvlaran/latmax/algo"
	"github.com/katalvlaran/latmax/objective"
)

// Objective families.
const (
	DemoMonotone       = "demo_monotone"
	DemoMonotoneSkewed = "demo_monotone_skewed"
	DemoNonMonotone    = "demo_non_monotone"
	FacilityLocation   = "facility_location"
	BudgetAllocation   = "budget_allocation"
)

// Objectives lists the supported objective families.
func Objectives() []string {
	return []string{DemoMonotone, DemoMonotoneSkewed, DemoNonMonotone, FacilityLocation, BudgetAllocation}
}

// NBR is one (n, b, r) triplet: ground set size, uniform capacity and
// cardinality budget. In YAML it is the flow sequence [n, b, r].
type NBR struct {
	N, B, R int
}

// UnmarshalYAML decodes [n, b, r].
func (t *NBR) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var v []int
	if err := unmarshal(&v); err != nil {
		return err
	}
	if len(v) != 3 {
		return fmt.Errorf("nbr triplet needs 3 values, got %d", len(v))
	}
	t.N, t.B, t.R = v[0], v[1], v[2]

	return nil
}

// MarshalYAML encodes [n, b, r].
func (t NBR) MarshalYAML() (interface{}, error) {
	return []int{t.N, t.B, t.R}, nil
}

// Sweep generates triplets with GenerateNBR instead of listing them.
type Sweep struct {
	NBase int `yaml:"nBase"`
	BBase int `yaml:"bBase"`
}

// Graph configures the bipartite input of the graph objectives.
type Graph struct {
	// Ratio sets |T| = ⌈Ratio·n⌉ for random graphs.
	Ratio float64 `yaml:"ratio"`
	// P is the edge probability of random graphs.
	P float64 `yaml:"p"`
	// EdgeList, when set, replaces random graphs with a loaded one; n is
	// then the number of sources in the file.
	EdgeList string `yaml:"edgeList"`
}

// Config is a benchmark run.
type Config struct {
	Seed        int64           `yaml:"seed"`
	Objective   string          `yaml:"objective"`
	Algorithms  []string        `yaml:"algorithms"`
	NBR         []NBR           `yaml:"nbr"`
	Sweep       *Sweep          `yaml:"sweep,omitempty"`
	Timeouts    []time.Duration `yaml:"timeouts"`
	Samples     int             `yaml:"samples"`
	Epsilon     float64         `yaml:"epsilon,omitempty"`
	Parallelism int             `yaml:"parallelism,omitempty"`
	// ExactLimit bounds the brute-force search; 0 selects the default.
	ExactLimit int   `yaml:"exactLimit,omitempty"`
	Graph      Graph `yaml:"graph,omitempty"`
}

// DefaultConfig returns a small monotone benchmark.
func DefaultConfig() *Config {
	return &Config{
		Seed:       2021,
		Objective:  DemoMonotone,
		Algorithms: []string{algo.SingleUnit.String(), algo.Boost.String(), algo.ThresholdDecay.String()},
		NBR:        []NBR{{N: 5, B: 2, R: 4}},
		Timeouts:   []time.Duration{time.Second},
		Samples:    5,
		Graph:      Graph{Ratio: 2, P: 0.3},
	}
}

// ParseConfig decodes YAML over DefaultConfig, expands a sweep and validates.
func ParseConfig(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.UnmarshalStrict(data, cfg); err != nil {
		return nil, errors.Wrap(err, "decoding benchmark config")
	}
	if cfg.Sweep != nil {
		cfg.NBR = GenerateNBR(cfg.Sweep.NBase, cfg.Sweep.BBase)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadConfig reads and parses the file at path; $VARS in path are expanded.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(os.ExpandEnv(path))
	if err != nil {
		return nil, errors.Wrapf(err, "reading benchmark config %s", path)
	}

	return ParseConfig(data)
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	if !contains(Objectives(), c.Objective) {
		return errors.Errorf("unknown objective %q (want one of %v)", c.Objective, Objectives())
	}
	if len(c.Algorithms) == 0 {
		return errors.New("no algorithms configured")
	}
	if _, err := c.Kinds(); err != nil {
		return err
	}
	if len(c.NBR) == 0 {
		return errors.New("no (n, b, r) triplets configured")
	}
	for i, t := range c.NBR {
		if t.N < 1 || t.B < 1 || t.R < 0 {
			return errors.Errorf("nbr[%d] = %v: need n ≥ 1, b ≥ 1, r ≥ 0", i, t)
		}
		if c.Graph.EdgeList == "" && t.R > t.N*t.B {
			return errors.Wrapf(objective.ErrInfeasible, "nbr[%d] = %v", i, t)
		}
	}
	if len(c.Timeouts) == 0 {
		return errors.New("no timeouts configured")
	}
	for i, d := range c.Timeouts {
		if d < 0 {
			return errors.Errorf("timeouts[%d] = %v is negative", i, d)
		}
	}
	if c.Samples < 1 {
		return errors.Errorf("samples = %d, need ≥ 1", c.Samples)
	}
	if c.Epsilon < 0 || c.Epsilon >= 1 {
		return errors.Errorf("epsilon = %v, need 0 (default) or a value in (0,1)", c.Epsilon)
	}
	if c.Parallelism < 0 {
		return errors.Errorf("parallelism = %d is negative", c.Parallelism)
	}
	if c.isGraph() && c.Graph.EdgeList == "" {
		if c.Graph.Ratio <= 0 {
			return errors.Errorf("graph.ratio = %v, need > 0", c.Graph.Ratio)
		}
		if c.Graph.P < 0 || c.Graph.P > 1 {
			return errors.Errorf("graph.p = %v, need a probability", c.Graph.P)
		}
	}

	return nil
}

// Kinds resolves Algorithms.
func (c *Config) Kinds() ([]algo.Kind, error) {
	ks, err := algo.ParseKinds(c.Algorithms)
	if err != nil {
		return nil, errors.Wrap(err, "resolving algorithms")
	}

	return ks, nil
}

// Workers returns the errgroup limit: Parallelism, or GOMAXPROCS when unset.
func (c *Config) Workers() int {
	if c.Parallelism > 0 {
		return c.Parallelism
	}

	return runtime.GOMAXPROCS(0)
}

// Marshal encodes c as YAML.
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

func (c *Config) isGraph() bool {
	return c.Objective == FacilityLocation || c.Objective == BudgetAllocation
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
