// Package piecewise analyzes and sanitizes piecewise-linear 1D data:
// sequences of (x, y) coordinate pairs that may contain flat "constant"
// runs, vertical "step" discontinuities, and monotonic "ramp" segments.
//
// 🚀 What is piecewise?
//
//	A small, stateless, pure-Go library that answers structural questions
//	about tabulated piecewise-linear functions:
//	  • Is x monotone? Strictly? Where does it reverse direction?
//	  • Where are the steps (duplicate x), the flats (duplicate y),
//	    and the true ramps?
//	  • How do I turn "almost increasing" data with duplicate x values
//	    into strictly increasing data an interpolator will accept?
//
// ✨ Why choose piecewise?
//
//   - Pure functions — no state, no I/O, safe for concurrent callers
//   - Inputs are never mutated; sanitizers hand back fresh slices
//   - Sentinel errors for malformed shapes, matched with errors.Is
//   - Linear-time scans throughout
//
// Everything is organized under three subpackages:
//
//	monotone/ — monotonicity predicates and the direction-run splitter
//	sanitize/ — canonicalize data into strictly increasing or
//	            non-decreasing form (reverse and/or perturb duplicates)
//	segment/  — classify unit intervals as ramps, constants or steps
//
// Quick ASCII example:
//
//	  y
//	  30 ┤           ┌────
//	  20 ┤      ╱────┘
//	  10 ┤  ────
//	   0 ┼──┬───┬───┬───── x
//
//	a staircase profile: ramps, constants and one vertical step.
//
// Typical pipeline: raw (x, y) → sanitize.ForceNonDecreasing →
// segment.RampsConstantsSteps, or → sanitize.ForceStrictlyIncreasing
// when a downstream interpolator needs strict monotonicity.
//
//	go get github.com/linefold/piecewise
package piecewise
