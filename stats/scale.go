package stats

import (
	"math"
	"sort"
)

// QuantileBuckets assigns each value an equal-frequency bucket index in
// 0..n-1. Duplicate boundaries collapse, so fewer than n buckets may come
// out; ties never fail.
func QuantileBuckets(values []float64, n int) []int {
	out := make([]int, len(values))
	if len(values) == 0 || n <= 1 {
		return out
	}
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	// interior quantile edges; duplicates collapse
	edges := make([]float64, 0, n-1)
	for i := 1; i < n; i++ {
		e := quantile(sorted, float64(i)/float64(n))
		if len(edges) == 0 || e > edges[len(edges)-1] {
			edges = append(edges, e)
		}
	}
	for i, v := range values {
		bucket := 0
		for _, e := range edges {
			if v > e {
				bucket++
			}
		}
		out[i] = bucket
	}
	return out
}

// quantile interpolates linearly between order statistics.
func quantile(sorted []float64, q float64) float64 {
	if len(sorted) == 1 {
		return sorted[0]
	}
	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo] + (sorted[hi]-sorted[lo])*frac
}

// BucketCount returns the number of distinct buckets actually used.
func BucketCount(buckets []int) int {
	seen := map[int]struct{}{}
	for _, b := range buckets {
		seen[b] = struct{}{}
	}
	return len(seen)
}

// LogScaleDecision reports whether an axis over values should use a log
// scale: true when the max/min ratio over strictly positive values exceeds
// the threshold.
func LogScaleDecision(values []float64, thresholdRatio float64) bool {
	minPos := math.MaxFloat64
	maxPos := 0.0
	for _, v := range values {
		if v <= 0 || math.IsNaN(v) {
			continue
		}
		if v < minPos {
			minPos = v
		}
		if v > maxPos {
			maxPos = v
		}
	}
	if maxPos <= 0 || minPos == math.MaxFloat64 {
		return false
	}
	return maxPos/minPos > thresholdRatio
}
