// SPDX-License-Identifier: MIT
// Package: latmax/benchmark

package benchmark

var (
	nFactors = []float64{1, 2, 5, 10, 50}
	bFactors = []float64{1, 2, 4, 8, 12, 25, 50}
	rFactors = []float64{1, 1.5, 2, 5, 10}
)

// GenerateNBR scales (nBase, bBase) by fixed factor tables and keeps the
// triplets with b ≤ r < n·b, i.e. budgets that neither fit in one coordinate
// below its capacity nor fill the whole box.
func GenerateNBR(nBase, bBase int) []NBR {
	var out []NBR
	for _, nf := range nFactors {
		for _, bf := range bFactors {
			for _, rf := range rFactors {
				n := int(float64(nBase) * nf)
				b := int(float64(bBase) * bf)
				r := int(float64(b) * rf)
				if b <= r && r < n*b {
					out = append(out, NBR{N: n, B: b, R: r})
				}
			}
		}
	}

	return out
}
