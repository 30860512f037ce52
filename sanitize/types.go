// Package sanitize defines options and sentinel errors for the sanitizers.
package sanitize

import "errors"

// Sentinel errors for sanitizer operations.
var (
	// ErrMixedDirection indicates x is neither non-increasing nor
	// non-decreasing, so no orientation of the data is monotone.
	ErrMixedDirection = errors.New("sanitize: x is neither non-increasing nor non-decreasing")
	// ErrLengthMismatch indicates y was supplied with a length different from x.
	ErrLengthMismatch = errors.New("sanitize: x and y must have the same length")
	// ErrBadEps indicates a non-positive perturbation magnitude.
	ErrBadEps = errors.New("sanitize: Eps must be positive")
)

// Options configures ForceStrictlyIncreasing.
//
// Fields:
//   - KeepEndPoints — which side of a duplicate x pair moves. Consider
//     x=[1,1], y=[20,40]. With KeepEndPoints=true the earlier point is
//     pulled down: x=[1-eps, 1]; the end value stays exact. With
//     KeepEndPoints=false the later point is pushed up: x=[1, 1+eps].
//   - Eps — the perturbation unit. Duplicates receive distinct multiples
//     of Eps (see ForceStrictlyIncreasing), so Eps must be positive and
//     small relative to the minimum nonzero gap in x.
type Options struct {
	KeepEndPoints bool
	Eps           float64
}

// DefaultOptions returns the canonical settings: KeepEndPoints=true,
// Eps=1e-15 (comparable to float64 machine epsilon near 1.0).
func DefaultOptions() Options {
	return Options{
		KeepEndPoints: true,
		Eps:           1e-15,
	}
}
