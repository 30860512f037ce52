// Package segment classifies the unit intervals of non-decreasing
// piecewise-linear (x, y) data as ramps, constants or steps.
//
// 🚀 What is segment?
//
//	Every pair of consecutive points [i, i+1] draws one of three shapes:
//	  • ramp     — x and y both change (a sloped line)
//	  • constant — y holds still while x advances (a horizontal line)
//	  • step     — x holds still while y jumps (a vertical line)
//
// ✨ Two classification policies:
//
//   - RampsConstantsSteps partitions all intervals into exactly three
//     disjoint sets. A degenerate interval (neither x nor y changes)
//     counts as a step: Δx=0 takes precedence.
//   - The RampStarts / ConstantStarts / StepStarts helpers instead drop
//     degenerate intervals entirely, so each returns only intervals
//     where something genuinely happens.
//
// Both policies assume x and y are non-decreasing (run the sanitize
// package first when in doubt); this precondition is not checked.
//
// ⚙️ Usage:
//
//	import "github.com/linefold/piecewise/segment"
//
//	x := []float64{0, 0, 1, 1, 2}
//	y := []float64{0, 10, 10, 30, 30}
//
//	ramps, constants, steps := segment.RampsConstantsSteps(x, y)
//	// ramps=[], constants=[1 3], steps=[0 2]
//
// Performance: O(n) time, O(n) memory.
package segment
