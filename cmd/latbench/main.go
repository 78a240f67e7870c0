// SPDX-License-Identifier: MIT

// Command latbench benchmarks the lattice maximization algorithms against the
// exact optimum.
//
//	latbench run --config bench.yaml --output results.csv
//	latbench sweep --n-base 50 --b-base 5 > nbr.yaml
//	latbench algorithms
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
