// SPDX-License-Identifier: MIT
// Package: latmax/soma

package soma

import "math"

// MaxPasses returns ⌈log(ε/r)/log(1−ε)⌉: after that many decays θ is below
// (ε/r)·θ₀. It returns 0 for r ≤ 0.
func MaxPasses(eps float64, r int) int {
	if r <= 0 {
		return 0
	}

	return int(math.Ceil(math.Log(eps/float64(r)) / math.Log(1-eps)))
}
