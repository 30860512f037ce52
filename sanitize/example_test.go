package sanitize_test

import (
	"fmt"

	"github.com/linefold/piecewise/sanitize"
)

// ExampleForceStrictlyIncreasing repairs a loading profile with two
// vertical steps (duplicate x at 0.4 and at 3) so that an interpolator
// requiring strictly increasing x can consume it.
//
// With KeepEndPoints=true the later point of each step keeps its exact
// position; the earlier point is pulled down by a multiple of Eps. An
// exaggerated Eps=0.01 makes the adjustment visible.
func ExampleForceStrictlyIncreasing() {
	x := []float64{0, 0.4, 0.4, 1, 2.5, 3, 3}
	y := []float64{0, 10, 20, 20, 30, 30, 40}

	opts := sanitize.Options{KeepEndPoints: true, Eps: 0.01}
	xs, ys, err := sanitize.ForceStrictlyIncreasing(x, y, &opts)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("x = %.2f\n", xs)
	fmt.Printf("y = %.0f\n", ys)
	// Output:
	// x = [0.00 0.38 0.40 1.00 2.50 2.99 3.00]
	// y = [0 10 20 20 30 30 40]
}

// ExampleForceNonDecreasing reverses a descending profile so that x
// ascends; the duplicate x values (vertical steps) are left in place.
func ExampleForceNonDecreasing() {
	x := []float64{0, -0.4, -0.4, -1, -2.5, -3, -3}
	y := []float64{0, 10, 20, 20, 30, 30, 40}

	xs, ys, err := sanitize.ForceNonDecreasing(x, y)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(xs)
	fmt.Println(ys)
	// Output:
	// [-3 -3 -2.5 -1 -0.4 -0.4 0]
	// [40 30 30 20 20 10 0]
}

// ExampleForceStrictlyIncreasing_mixedDirection shows the rejection of a
// switch-back: data that rises, falls and rises again has no monotone
// orientation and cannot be canonicalized.
func ExampleForceStrictlyIncreasing_mixedDirection() {
	x := []float64{0, 0.5, 1, 0.75, 1.5, 2}

	_, _, err := sanitize.ForceStrictlyIncreasing(x, nil, nil)
	fmt.Println(err)
	// Output:
	// sanitize: x is neither non-increasing nor non-decreasing
}
