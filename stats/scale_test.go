package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogScaleDecision(t *testing.T) {
	assert.True(t, LogScaleDecision([]float64{1, 25}, 20))
	assert.False(t, LogScaleDecision([]float64{1, 15}, 20))
	// threshold is strict
	assert.False(t, LogScaleDecision([]float64{1, 20}, 20))
}

func TestLogScaleDecisionIgnoresNonPositive(t *testing.T) {
	// 0 must not count as the minimum
	assert.False(t, LogScaleDecision([]float64{0, 5, 50}, 20))
	assert.False(t, LogScaleDecision([]float64{0, 0}, 20))
	assert.False(t, LogScaleDecision(nil, 20))
	assert.True(t, LogScaleDecision([]float64{-3, 1, 25}, 20))
}

func TestQuantileBucketsExtremes(t *testing.T) {
	values := []float64{10, 20, 30, 40, 50, 60, 70, 80, 90, 100}
	buckets := QuantileBuckets(values, 5)
	require.Len(t, buckets, len(values))
	assert.Equal(t, 0, buckets[0], "minimum lands in bucket 0")
	assert.Equal(t, 4, buckets[len(buckets)-1], "maximum lands in the last bucket")
	for _, b := range buckets {
		assert.GreaterOrEqual(t, b, 0)
		assert.Less(t, b, 5)
	}
}

func TestQuantileBucketsEqualFrequency(t *testing.T) {
	values := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	buckets := QuantileBuckets(values, 5)
	counts := map[int]int{}
	for _, b := range buckets {
		counts[b]++
	}
	for b, c := range counts {
		assert.Equal(t, 2, c, "bucket %d", b)
	}
}

func TestQuantileBucketsDuplicatesCollapse(t *testing.T) {
	values := []float64{5, 5, 5, 5, 5, 5, 5, 5, 5, 100}
	buckets := QuantileBuckets(values, 5)
	require.Len(t, buckets, len(values))
	// collapsed boundaries: fewer distinct buckets, no failure
	assert.LessOrEqual(t, BucketCount(buckets), 5)
	assert.Greater(t, buckets[len(buckets)-1], buckets[0])
}

func TestQuantileBucketsDegenerate(t *testing.T) {
	assert.Empty(t, QuantileBuckets(nil, 5))
	assert.Equal(t, []int{0, 0}, QuantileBuckets([]float64{1, 2}, 1))
}
