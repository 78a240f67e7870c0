package soma_test

import (
	"fmt"

	"github.com/katalvlaran/latmax/lattice"
	"github.com/katalvlaran/latmax/objective"
	"github.com/katalvlaran/latmax/soma"
)

// ExampleSoma runs the deterministic threshold algorithm on a modular
// objective; the heaviest coordinates fill the budget in whole blocks.
func ExampleSoma() {
	f, err := objective.NewModular([]float64{10, 20, 30, 40, 50}, lattice.Uniform(5, 2))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	x, v, err := soma.Soma(f, 4)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("x=%v f(x)=%.0f\n", x, v)
	// Output: x=[0 0 0 2 2] f(x)=180
}
