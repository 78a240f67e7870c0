// SPDX-License-Identifier: MIT

package main

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"

	"github.com/katalvlaran/latmax/benchmark"
)

func newSweepCmd() *cobra.Command {
	var nBase, bBase int

	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Print the generated (n, b, r) triplets as a YAML nbr list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if nBase < 1 || bBase < 1 {
				return errors.Errorf("bases must be positive, got n=%d b=%d", nBase, bBase)
			}
			doc := struct {
				NBR []benchmark.NBR `yaml:"nbr"`
			}{NBR: benchmark.GenerateNBR(nBase, bBase)}

			data, err := yaml.Marshal(doc)
			if err != nil {
				return errors.Wrap(err, "encoding triplets")
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	cmd.Flags().IntVar(&nBase, "n-base", 50, "base ground set size")
	cmd.Flags().IntVar(&bBase, "b-base", 5, "base capacity")

	return cmd
}
