// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/latmax/benchmark"
)

type runOptions struct {
	root        *rootOptions
	config      string
	output      string
	append      bool
	parallelism int
	samples     int
	seed        int64
	algorithms  kindsValue
	metricsAddr string
	metricsFile string
}

func newRunCmd(root *rootOptions) *cobra.Command {
	o := &runOptions{root: root}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run a benchmark configuration and write CSV records",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := o.root.logger()

			ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			return o.run(ctx, cmd, logger)
		},
	}

	cmd.Flags().StringVarP(&o.config, "config", "c", "", "benchmark configuration file (YAML); defaults apply when empty")
	cmd.Flags().StringVarP(&o.output, "output", "o", "-", "CSV output file, - for stdout")
	cmd.Flags().BoolVar(&o.append, "append", false, "append to the output file without writing a header")
	cmd.Flags().IntVar(&o.parallelism, "parallelism", 0, "instances processed concurrently (overrides the config)")
	cmd.Flags().IntVar(&o.samples, "samples", 0, "runs per algorithm and timeout (overrides the config)")
	cmd.Flags().Int64Var(&o.seed, "seed", 0, "master seed (overrides the config)")
	cmd.Flags().Var(&o.algorithms, "algorithms", "comma-separated algorithm labels (overrides the config)")
	cmd.Flags().StringVar(&o.metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address while running")
	cmd.Flags().StringVar(&o.metricsFile, "metrics-file", "", "write Prometheus metrics in text format to this file when done")

	return cmd
}

func (o *runOptions) load(cmd *cobra.Command) (*benchmark.Config, error) {
	cfg := benchmark.DefaultConfig()
	if o.config != "" {
		var err error
		if cfg, err = benchmark.LoadConfig(o.config); err != nil {
			return nil, err
		}
	}
	if cmd.Flags().Changed("parallelism") {
		cfg.Parallelism = o.parallelism
	}
	if cmd.Flags().Changed("samples") {
		cfg.Samples = o.samples
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = o.seed
	}
	if labels := o.algorithms.labels(); labels != nil {
		cfg.Algorithms = labels
	}

	return cfg, cfg.Validate()
}

func (o *runOptions) run(ctx context.Context, cmd *cobra.Command, logger *logrus.Logger) error {
	cfg, err := o.load(cmd)
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	metrics, err := benchmark.NewMetrics(reg)
	if err != nil {
		return errors.Wrap(err, "registering metrics")
	}
	if o.metricsAddr != "" {
		srv := &http.Server{Addr: o.metricsAddr, Handler: promhttp.HandlerFor(reg, promhttp.HandlerOpts{})}
		go func() {
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				logger.WithError(err).Error("metrics server stopped")
			}
		}()
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = srv.Shutdown(shutdownCtx)
		}()
		logger.WithField("addr", o.metricsAddr).Info("serving metrics")
	}

	out := cmd.OutOrStdout()
	header := true
	if o.output != "-" {
		flags := os.O_CREATE | os.O_WRONLY | os.O_TRUNC
		if o.append {
			flags = os.O_CREATE | os.O_WRONLY | os.O_APPEND
		}
		fh, err := os.OpenFile(o.output, flags, 0o644)
		if err != nil {
			return errors.Wrap(err, "opening output")
		}
		defer fh.Close()
		if o.append {
			st, err := fh.Stat()
			if err != nil {
				return errors.Wrap(err, "inspecting output")
			}
			header = st.Size() == 0
		}
		out = fh
	}

	runner, err := benchmark.NewRunner(cfg, benchmark.WithLogger(logger), benchmark.WithMetrics(metrics))
	if err != nil {
		return err
	}
	logger.WithFields(logrus.Fields{
		"objective":  cfg.Objective,
		"algorithms": cfg.Algorithms,
		"instances":  len(cfg.NBR),
		"workers":    cfg.Workers(),
	}).Info("starting benchmark")

	start := time.Now()
	if err = runner.Run(ctx, benchmark.NewCSVWriter(out, header)); err != nil {
		return err
	}
	logger.WithField("elapsed", time.Since(start)).Info("benchmark finished")

	if o.metricsFile != "" {
		if err = prometheus.WriteToTextfile(o.metricsFile, reg); err != nil {
			return errors.Wrap(err, "writing metrics file")
		}
	}

	return nil
}
