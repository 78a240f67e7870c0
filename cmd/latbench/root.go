// SPDX-License-Identifier: MIT

package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	debug bool
}

func (o *rootOptions) logger() *logrus.Logger {
	logger := logrus.New()
	if o.debug {
		logger.SetLevel(logrus.DebugLevel)
	}
	logger.Debugf("log level %s", logger.Level)

	return logger
}

func newRootCmd() *cobra.Command {
	o := &rootOptions{}

	cmd := &cobra.Command{
		Use:          "latbench",
		Short:        "Benchmark submodular maximization on the integer lattice",
		SilenceUsage: true,
	}
	cmd.PersistentFlags().BoolVar(&o.debug, "debug", false, "use debug log level")

	cmd.AddCommand(
		newRunCmd(o),
		newSweepCmd(),
		newAlgorithmsCmd(),
	)

	return cmd
}
