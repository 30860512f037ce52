package segment_test

import (
	"fmt"

	"github.com/linefold/piecewise/segment"
)

// ExampleRampsConstantsSteps classifies a loading profile that mixes all
// three segment kinds:
//
//	40 ┤                 │   ← step at index 5
//	30 ┤         ╱───────┘   ← ramp 3, constant 4
//	20 ┤  │╱─────            ← step 1, constant 2
//	10 ┤ ╱│                  ← ramp 0
//	 0 ┼──┬──────┬───────┬── x
//	   0 0.4     1  2.5  3
func ExampleRampsConstantsSteps() {
	x := []float64{0, 0.4, 0.4, 1, 2.5, 3, 3}
	y := []float64{0, 10, 20, 20, 30, 30, 40}

	ramps, constants, steps := segment.RampsConstantsSteps(x, y)
	fmt.Println("ramps:", ramps)
	fmt.Println("constants:", constants)
	fmt.Println("steps:", steps)
	// Output:
	// ramps: [0 3]
	// constants: [2 4]
	// steps: [1 5]
}

// ExampleStepStarts shows the degenerate-interval policy of the helpers:
// the interval at index 1 changes neither x nor y and is reported by
// neither StepStarts nor ConstantStarts.
func ExampleStepStarts() {
	x := []float64{0, 1, 1, 2}
	y := []float64{0, 5, 5, 5}

	fmt.Println("steps:", segment.StepStarts(x, y))
	fmt.Println("constants:", segment.ConstantStarts(x, y))
	// Output:
	// steps: []
	// constants: [2]
}

// ExampleRampsConstantsStepsAfter keeps only the activity at or beyond a
// given x position.
func ExampleRampsConstantsStepsAfter() {
	x := []float64{0, 0.4, 0.4, 1, 2.5, 3, 3}
	y := []float64{0, 10, 20, 20, 30, 30, 40}

	ramps, constants, steps := segment.RampsConstantsStepsAfter(x, y, 1)
	fmt.Println("ramps:", ramps)
	fmt.Println("constants:", constants)
	fmt.Println("steps:", steps)
	// Output:
	// ramps: [3]
	// constants: [4]
	// steps: [5]
}
