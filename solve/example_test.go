package solve_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvnum/solve"
)

func ExampleSolve() {
	res, err := solve.Solve(
		[][]float64{{2, 1, -1}, {-3, -1, 2}, {-2, 1, 2}},
		[]float64{8, -11, -3},
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, x := range res.Values() {
		fmt.Printf("%.3f ", x)
	}
	fmt.Println(res.Status)

	res, _ = solve.Solve([][]int{{1, 2}, {2, 4}}, []int{1, 1})
	fmt.Println(res.Status, res.Ok())

	_, err = solve.Solve([][]any{{1, 1}, {0, "x"}}, []float64{1, 1})
	var ie *solve.InputError
	if errors.As(err, &ie) {
		fmt.Println(ie.Arg, ie.Index, ie.IsTypeError())
	}
	// Output:
	// 2.000 3.000 -1.000 Solved
	// Singular false
	// bound 3 true
}
