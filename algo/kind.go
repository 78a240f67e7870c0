// SPDX-License-Identifier: MIT
// Package: latmax/algo
//
// Package algo names every lattice maximization algorithm in one closed
// enumeration and runs any of them through a uniform step interface.
//
// Kinds and their experiment labels:
//
//	SingleUnit           SGL-I      greedy.NewSingleUnit
//	Boost                SGL-II     greedy.NewBoost
//	ThresholdDecay       SGL-III    greedy.NewThresholdDecay
//	Soma                 Soma-DR-I  soma.NewSoma (unit-gain θ₀)
//	SomaCapacity         Soma-II    soma.NewSoma with WithCapacityTheta
//	SetStochasticGreedy  SSG        bridge.NewSSG
//	LaiDR                Lai-DR     greedy.NewLaiDR
//
// A Kind is resolved once, when configuration is parsed (ParseKind); there is
// no name → constructor registry to consult at run time.
//
// Drive steps a Stepper until it finishes or its context expires. Expiry is
// not an error: the result carries the last fully applied point and
// Interrupted = true.
package algo

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownKind indicates an algorithm label that names no Kind.
var ErrUnknownKind = errors.New("algo: unknown algorithm")

// Kind enumerates the algorithms.
type Kind int

// Enum values (stable ordering).
const (
	SingleUnit Kind = iota
	Boost
	ThresholdDecay
	Soma
	SomaCapacity
	SetStochasticGreedy
	LaiDR
)

var kindLabels = [...]string{
	SingleUnit:          "SGL-I",
	Boost:               "SGL-II",
	ThresholdDecay:      "SGL-III",
	Soma:                "Soma-DR-I",
	SomaCapacity:        "Soma-II",
	SetStochasticGreedy: "SSG",
	LaiDR:               "Lai-DR",
}

var kindNames = [...]string{
	SingleUnit:          "single-unit",
	Boost:               "boost",
	ThresholdDecay:      "threshold-decay",
	Soma:                "soma",
	SomaCapacity:        "soma-capacity",
	SetStochasticGreedy: "set-stochastic-greedy",
	LaiDR:               "lai-dr",
}

// Kinds returns every Kind in enum order.
func Kinds() []Kind {
	out := make([]Kind, len(kindLabels))
	for i := range out {
		out[i] = Kind(i)
	}

	return out
}

func (k Kind) valid() bool { return k >= 0 && int(k) < len(kindLabels) }

// String returns the experiment label, e.g. "SGL-III".
func (k Kind) String() string {
	if !k.valid() {
		return fmt.Sprintf("Kind(%d)", int(k))
	}

	return kindLabels[k]
}

// Name returns the descriptive name, e.g. "threshold-decay".
func (k Kind) Name() string {
	if !k.valid() {
		return "unknown"
	}

	return kindNames[k]
}

// Randomized reports whether the algorithm consumes an rng.
func (k Kind) Randomized() bool {
	return k != Soma && k != SomaCapacity
}

// ParseKind resolves a label or a descriptive name, case-insensitively.
func ParseKind(s string) (Kind, error) {
	s = strings.TrimSpace(s)
	for _, k := range Kinds() {
		if strings.EqualFold(s, kindLabels[k]) || strings.EqualFold(s, kindNames[k]) {
			return k, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// ParseKinds resolves every label in order.
func ParseKinds(labels []string) ([]Kind, error) {
	out := make([]Kind, 0, len(labels))
	for _, s := range labels {
		k, err := ParseKind(s)
		if err != nil {
			return nil, err
		}
		out = append(out, k)
	}

	return out, nil
}
