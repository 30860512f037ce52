package monotone

// HasDuplicates reports whether any two consecutive values of x are equal.
// In piecewise-linear data a duplicate x marks a vertical step segment.
func HasDuplicates(x []float64) bool {
	for i := 1; i < len(x); i++ {
		if x[i] == x[i-1] {
			return true
		}
	}

	return false
}

// InitiallyIncreasing reports the direction of the first change in x: it
// scans to the first pair with x[i+1] ≠ x[i] and returns x[i+1] > x[i].
// A fully flat sequence has no direction and yields false.
func InitiallyIncreasing(x []float64) bool {
	for i := 1; i < len(x); i++ {
		if x[i] != x[i-1] {
			return x[i] > x[i-1]
		}
	}

	return false
}

// StrictlyIncreasing reports whether every x[i+1] > x[i].
func StrictlyIncreasing(x []float64) bool {
	for i := 1; i < len(x); i++ {
		if x[i] <= x[i-1] {
			return false
		}
	}

	return true
}

// StrictlyDecreasing reports whether every x[i+1] < x[i].
func StrictlyDecreasing(x []float64) bool {
	for i := 1; i < len(x); i++ {
		if x[i] >= x[i-1] {
			return false
		}
	}

	return true
}

// NonIncreasing reports whether every x[i+1] ≤ x[i].
func NonIncreasing(x []float64) bool {
	for i := 1; i < len(x); i++ {
		if x[i] > x[i-1] {
			return false
		}
	}

	return true
}

// NonDecreasing reports whether every x[i+1] ≥ x[i].
func NonDecreasing(x []float64) bool {
	for i := 1; i < len(x); i++ {
		if x[i] < x[i-1] {
			return false
		}
	}

	return true
}
