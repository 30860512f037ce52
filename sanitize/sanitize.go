package sanitize

import (
	"gonum.org/v1/gonum/floats"

	"github.com/linefold/piecewise/monotone"
)

// ForceStrictlyIncreasing turns monotone x data into strictly increasing
// x data, reversing descending input and nudging duplicate x values apart.
//
// Description:
//
//	Already strictly increasing x is returned as-is. Strictly decreasing
//	x is reversed (along with y). Non-increasing x is reversed first;
//	the resulting non-decreasing x then has every duplicate pair spread
//	by a multiple of opts.Eps. With c duplicates, the k-th one (0-based,
//	in ascending order) moves by (c-k)·Eps subtracted from its earlier
//	point when KeepEndPoints is set, or by (k+1)·Eps added to its later
//	point otherwise. Descending multiples keep adjacent perturbations
//	from colliding or reordering.
//
//	y may be nil when only x needs repair. Inputs are never mutated;
//	the results are fresh slices.
//
// Complexity:
//
//	Time   = O(n)
//	Memory = O(n)
//
// Errors:
//   - ErrMixedDirection — x reverses direction, no orientation is monotone.
//   - ErrLengthMismatch — y is non-nil and len(y) != len(x).
//   - ErrBadEps         — opts.Eps is zero or negative.
func ForceStrictlyIncreasing(x, y []float64, opts *Options) ([]float64, []float64, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if o.Eps <= 0 {
		return nil, nil, ErrBadEps
	}
	if y != nil && len(y) != len(x) {
		return nil, nil, ErrLengthMismatch
	}

	xs, ys := clonePair(x, y)

	if monotone.StrictlyIncreasing(xs) {
		return xs, ys, nil
	}
	if monotone.StrictlyDecreasing(xs) {
		reversePair(xs, ys)

		return xs, ys, nil
	}
	if monotone.NonIncreasing(xs) {
		reversePair(xs, ys)
	}
	if !monotone.NonDecreasing(xs) {
		return nil, nil, ErrMixedDirection
	}

	dups := duplicateStarts(xs)
	if o.KeepEndPoints {
		for k, i := range dups {
			xs[i] -= float64(len(dups)-k) * o.Eps
		}
	} else {
		for k, i := range dups {
			xs[i+1] += float64(k+1) * o.Eps
		}
	}

	return xs, ys, nil
}

// ForceNonDecreasing reverses non-increasing (x, y) data so that x becomes
// non-decreasing, and leaves already non-decreasing data alone. y may be
// nil. Inputs are never mutated; the results are fresh slices.
//
// Errors:
//   - ErrMixedDirection — x reverses direction, no orientation is monotone.
//   - ErrLengthMismatch — y is non-nil and len(y) != len(x).
func ForceNonDecreasing(x, y []float64) ([]float64, []float64, error) {
	if y != nil && len(y) != len(x) {
		return nil, nil, ErrLengthMismatch
	}

	xs, ys := clonePair(x, y)

	if monotone.NonDecreasing(xs) {
		return xs, ys, nil
	}
	if !monotone.NonIncreasing(xs) {
		return nil, nil, ErrMixedDirection
	}
	reversePair(xs, ys)

	return xs, ys, nil
}

// clonePair copies x and y so callers never observe their inputs changing.
func clonePair(x, y []float64) ([]float64, []float64) {
	xs := make([]float64, len(x))
	copy(xs, x)
	if y == nil {
		return xs, nil
	}
	ys := make([]float64, len(y))
	copy(ys, y)

	return xs, ys
}

// reversePair flips both sequences in place; y may be nil.
func reversePair(x, y []float64) {
	floats.Reverse(x)
	if y != nil {
		floats.Reverse(y)
	}
}

// duplicateStarts lists every index i where x[i+1] == x[i], ascending.
func duplicateStarts(x []float64) []int {
	var dups []int
	for i := 1; i < len(x); i++ {
		if x[i] == x[i-1] {
			dups = append(dups, i-1)
		}
	}

	return dups
}
