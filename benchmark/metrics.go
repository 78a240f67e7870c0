// SPDX-License-Identifier: MIT
// Package: latmax/benchmark

package benchmark

import (
	"math"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	AlgorithmLabel = "algorithm"
	ObjectiveLabel = "objective"
)

// Metrics aggregates run records for Prometheus.
type Metrics struct {
	calls       *prometheus.CounterVec
	duration    *prometheus.HistogramVec
	ratio       *prometheus.GaugeVec
	interrupted *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	labels := []string{AlgorithmLabel, ObjectiveLabel}
	m := &Metrics{
		calls: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "latmax_oracle_calls_total",
				Help: "Oracle calls spent by benchmark runs",
			},
			labels,
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "latmax_run_duration_seconds",
				Help:    "Wall time of a single algorithm run",
				Buckets: prometheus.ExponentialBuckets(0.0005, 4, 10),
			},
			labels,
		),
		ratio: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "latmax_approximation_ratio",
				Help: "Approximation ratio f(x)/OPT of the most recent run",
			},
			labels,
		),
		interrupted: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "latmax_runs_interrupted_total",
				Help: "Runs stopped by their timeout before completion",
			},
			labels,
		),
	}
	for _, c := range []prometheus.Collector{m.calls, m.duration, m.ratio, m.interrupted} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// Observe records one run. A nil receiver is a no-op.
func (m *Metrics) Observe(rec Record) {
	if m == nil {
		return
	}
	m.calls.WithLabelValues(rec.Algorithm, rec.Objective).Add(float64(rec.Calls))
	m.duration.WithLabelValues(rec.Algorithm, rec.Objective).Observe(rec.Elapsed.Seconds())
	if !math.IsNaN(rec.Ratio) {
		m.ratio.WithLabelValues(rec.Algorithm, rec.Objective).Set(rec.Ratio)
	}
	if rec.Interrupted {
		m.interrupted.WithLabelValues(rec.Algorithm, rec.Objective).Inc()
	}
}
