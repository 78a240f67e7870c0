package greedy_test

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/latmax/greedy"
	"github.com/katalvlaran/latmax/lattice"
	"github.com/katalvlaran/latmax/objective"
)

// ExampleSingleUnit maximizes a modular function with five coordinates of
// capacity 2 under the budget r = 4.
func ExampleSingleUnit() {
	f, err := objective.NewModular([]float64{10, 20, 30, 40, 50}, lattice.Uniform(5, 2))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	x, v, err := greedy.SingleUnit(rand.New(rand.NewSource(2022)), f, 4)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("x=%v f(x)=%.0f\n", x, v)
	// Output: x=[0 0 0 2 2] f(x)=180
}

// ExampleNewThresholdDecay drives the resumable form step by step, the way a
// deadline-bound caller would.
func ExampleNewThresholdDecay() {
	f, _ := objective.NewModular([]float64{1, 5, 3}, lattice.Vector{3, 1, 2})
	a, err := greedy.NewThresholdDecay(rand.New(rand.NewSource(1)), f, 3, greedy.WithEpsilon(0.04))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for !a.Done() {
		if err = a.Step(); err != nil {
			fmt.Println("error:", err)
			return
		}
	}
	x, v := a.Solution()
	fmt.Printf("x=%v f(x)=%.0f\n", x, v)
	// Output: x=[0 1 2] f(x)=11
}
