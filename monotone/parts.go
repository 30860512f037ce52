package monotone

import "errors"

// ErrNoDirectionChange indicates the sequence never moves: every consecutive
// difference is zero, so no run has a defined sign to split on.
var ErrNoDirectionChange = errors.New("monotone: sequence is entirely flat, runs have no sign")

// Parts splits x into maximal non-increasing / non-decreasing runs.
//
// Description:
//
//	Each element of the result holds the start indices of the unit
//	segments [i, i+1] belonging to one monotone run. The sign of the
//	consecutive difference stays constant within a run; a zero
//	difference (duplicate x) extends the current run, and only a sign
//	reversal closes it and opens the next one.
//
//	With includeEndPoints=true every run additionally carries its
//	closing point: the boundary index is shared between a run and its
//	successor, and the final run gains one index past its last segment,
//	so x[run[0] : run[len(run)-1]+1] spans the whole monotone section
//	including both ends.
//
// Complexity:
//
//	Time   = O(n)
//	Memory = O(n)
//
// Errors:
//   - ErrNoDirectionChange — x has no nonzero difference (fully flat,
//     which includes sequences shorter than two elements).
func Parts(x []float64, includeEndPoints bool) ([][]int, error) {
	signs := diffSigns(x)

	// The first run's sign is the first nonzero difference.
	current := 0
	for _, s := range signs {
		if s != 0 {
			current = s
			break
		}
	}
	if current == 0 {
		return nil, ErrNoDirectionChange
	}

	parts := [][]int{{0}}
	for i := 1; i < len(signs); i++ {
		s := signs[i]
		if s != 0 && s != current {
			if includeEndPoints {
				parts[len(parts)-1] = append(parts[len(parts)-1], i)
			}
			parts = append(parts, nil)
			current = s
		}
		parts[len(parts)-1] = append(parts[len(parts)-1], i)
	}
	if includeEndPoints {
		last := parts[len(parts)-1]
		parts[len(parts)-1] = append(last, last[len(last)-1]+1)
	}

	return parts, nil
}

// diffSigns returns the sign (-1, 0, +1) of each consecutive difference of x.
func diffSigns(x []float64) []int {
	if len(x) < 2 {
		return nil
	}
	signs := make([]int, len(x)-1)
	for i := 1; i < len(x); i++ {
		switch {
		case x[i] > x[i-1]:
			signs[i-1] = 1
		case x[i] < x[i-1]:
			signs[i-1] = -1
		}
	}

	return signs
}
