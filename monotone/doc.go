// Package monotone provides monotonicity predicates over numeric sequences
// and a splitter that partitions a sequence into maximal monotone runs.
//
// 🚀 What is monotone?
//
//	The leaf layer of piecewise: cheap O(n) answers to "which way does
//	this data go?" for a slice of x coordinates:
//	  • StrictlyIncreasing / StrictlyDecreasing — no ties allowed
//	  • NonDecreasing / NonIncreasing — ties allowed
//	  • HasDuplicates — any vertical step (equal consecutive x)?
//	  • InitiallyIncreasing — direction of the first actual change
//	  • Parts — split at every direction reversal
//
// ✨ Key properties:
//   - every predicate short-circuits on the first violating pair
//   - sequences shorter than two elements are vacuously monotone
//   - equal consecutive values never split a run on their own;
//     only a sign reversal of the difference does
//
// ⚙️ Usage:
//
//	import "github.com/linefold/piecewise/monotone"
//
//	x := []float64{0, 0.5, 1, 0.75, 1.5, 2}
//	monotone.NonDecreasing(x) // false: reversal at index 2→3
//
//	parts, err := monotone.Parts(x, false)
//	// parts = [[0 1] [2] [3 4]], one group per monotone run
//
// Performance: O(n) time for everything, O(n) memory for Parts only.
package monotone
