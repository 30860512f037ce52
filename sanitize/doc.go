// Package sanitize canonicalizes piecewise-linear (x, y) data whose x
// coordinates are monotone but not yet in the strictly increasing form
// most interpolation routines demand.
//
// 🚀 What is sanitize?
//
//	Two repairs for "almost right" data:
//	  • ForceNonDecreasing — reverse descending data so x ascends,
//	    leaving already ascending data alone.
//	  • ForceStrictlyIncreasing — additionally nudge duplicate x values
//	    apart by multiples of a tiny eps, so vertical steps survive as
//	    near-vertical ramps and x becomes strictly increasing.
//
// ✨ Guarantees:
//   - inputs are never mutated; both functions return fresh slices
//   - no x value moves by more than (duplicate count) · eps
//   - y is untouched apart from reversal
//   - mixed-direction data (a genuine switch-back) is rejected with
//     ErrMixedDirection rather than silently reordered
//
// ⚙️ Usage:
//
//	import "github.com/linefold/piecewise/sanitize"
//
//	x := []float64{0, 0.4, 0.4, 1, 2.5, 3, 3}
//	y := []float64{0, 10, 20, 20, 30, 30, 40}
//
//	opts := sanitize.DefaultOptions() // KeepEndPoints=true, Eps=1e-15
//	xs, ys, err := sanitize.ForceStrictlyIncreasing(x, y, &opts)
//	if err != nil {
//	  // handle ErrMixedDirection, ErrLengthMismatch or ErrBadEps
//	}
//	// xs is strictly increasing; ys equals y
//
// Performance: O(n) time, O(n) memory (the returned copies).
package sanitize
