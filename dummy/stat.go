package dummy

import "sort"

// The statistic routines are deliberately explicit (sum/len, sort + midpoint,
// frequency count) so the predicted value is fully specified by this file.
// All of them require a non-empty input; constructors enforce that before
// they are reached.

// meanOf returns the arithmetic mean of values.
func meanOf(values []float64) float64 {
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// medianOf returns the 50th percentile of values using the conventional
// midpoint rule: for even-length input, the average of the two middle
// elements of the sorted sequence. The input slice is not modified.
func medianOf(values []float64) float64 {
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}
	return (sorted[mid-1] + sorted[mid]) / 2
}

// modeOf returns the most frequent value in values, together with the
// distinct values in first-seen order and their frequency counts.
//
// Tie-break: when several values are tied for most frequent, the first one
// to reach the maximal count in input order is returned. Which tied value is
// chosen is implementation-defined and not part of the contract; callers may
// only rely on a given instance returning the same value on every call.
func modeOf[T comparable](values []T) (mode T, classes []T, counts map[T]int) {
	counts = make(map[T]int, len(values))
	best := 0
	for _, v := range values {
		if _, seen := counts[v]; !seen {
			classes = append(classes, v)
		}
		counts[v]++
		if counts[v] > best {
			best = counts[v]
			mode = v
		}
	}
	return mode, classes, counts
}
