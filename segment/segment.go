package segment

import "gonum.org/v1/gonum/floats"

// RampsConstantsSteps classifies every unit interval [i, i+1] of
// non-decreasing (x, y) data into exactly one of three kinds and returns
// the start indices of each, ascending.
//
// Description:
//
//	steps     — Δx = 0 (vertical line), including the degenerate
//	            Δx = 0 ∧ Δy = 0 interval: zero Δx takes precedence.
//	constants — Δy = 0 with Δx ≠ 0 (horizontal line).
//	ramps     — everything else (both coordinates change).
//
//	The three sets are pairwise disjoint and together cover every
//	interval {0, …, len(x)-2}.
//
// The inputs must be non-decreasing; this is not checked. Panics when
// len(x) != len(y).
//
// Complexity: O(n) time, O(n) memory.
func RampsConstantsSteps(x, y []float64) (ramps, constants, steps []int) {
	dx, dy := diffs(x, y)
	for i := range dx {
		switch {
		case dx[i] == 0:
			steps = append(steps, i)
		case dy[i] == 0:
			constants = append(constants, i)
		default:
			ramps = append(ramps, i)
		}
	}

	return ramps, constants, steps
}

// RampStarts returns the start indices of all ramp intervals: both
// Δx ≠ 0 and Δy ≠ 0. Assumes non-decreasing data; panics when
// len(x) != len(y).
func RampStarts(x, y []float64) []int {
	dx, dy := diffs(x, y)
	var starts []int
	for i := range dx {
		if dx[i] != 0 && dy[i] != 0 {
			starts = append(starts, i)
		}
	}

	return starts
}

// ConstantStarts returns the start indices of all constant intervals:
// Δy = 0 with Δx ≠ 0. Degenerate intervals (Δx = 0 ∧ Δy = 0) are excluded,
// unlike in RampsConstantsSteps. Assumes non-decreasing data; panics when
// len(x) != len(y).
func ConstantStarts(x, y []float64) []int {
	dx, dy := diffs(x, y)
	var starts []int
	for i := range dy {
		if dy[i] == 0 && dx[i] != 0 {
			starts = append(starts, i)
		}
	}

	return starts
}

// StepStarts returns the start indices of all step intervals: Δx = 0 with
// Δy ≠ 0. Degenerate intervals (Δx = 0 ∧ Δy = 0) are excluded, unlike in
// RampsConstantsSteps. Assumes non-decreasing data; panics when
// len(x) != len(y).
func StepStarts(x, y []float64) []int {
	dx, dy := diffs(x, y)
	var starts []int
	for i := range dx {
		if dx[i] == 0 && dy[i] != 0 {
			starts = append(starts, i)
		}
	}

	return starts
}

// RampsConstantsStepsAfter classifies like RampsConstantsSteps but keeps
// only intervals starting at or beyond xi, i.e. those with x[i] ≥ xi.
// Assumes non-decreasing data; panics when len(x) != len(y).
func RampsConstantsStepsAfter(x, y []float64, xi float64) (ramps, constants, steps []int) {
	ramps, constants, steps = RampsConstantsSteps(x, y)

	return startingAt(ramps, x, xi), startingAt(constants, x, xi), startingAt(steps, x, xi)
}

// startingAt filters start indices to those with x[i] >= xi. Since x is
// non-decreasing the kept indices form a suffix of starts.
func startingAt(starts []int, x []float64, xi float64) []int {
	var kept []int
	for _, i := range starts {
		if x[i] >= xi {
			kept = append(kept, i)
		}
	}

	return kept
}

// diffs returns the consecutive differences of x and of y, the slice
// analog of a vectorized diff. Panics when len(x) != len(y), following
// the floats convention for shape errors.
func diffs(x, y []float64) (dx, dy []float64) {
	if len(x) != len(y) {
		panic("segment: x and y length mismatch")
	}
	if len(x) < 2 {
		return nil, nil
	}
	n := len(x) - 1
	dx = make([]float64, n)
	dy = make([]float64, n)
	floats.SubTo(dx, x[1:], x[:n])
	floats.SubTo(dy, y[1:], y[:n])

	return dx, dy
}
