package detection

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func histSum(h *histSet) uint32 {
	var sum uint32
	for _, n := range h.data {
		sum += n
	}
	return sum
}

// naiveMedian returns the value at sorted rank ceil(n/2), 1-indexed.
func naiveMedian(vals []uint8) uint8 {
	sorted := append([]uint8(nil), vals...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	return sorted[(len(sorted)+1)/2-1]
}

func TestHistSet_CountInvariant(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	var h histSet
	var live []uint8

	for i := 0; i < 5000; i++ {
		if len(live) > 0 && rng.Intn(3) == 0 {
			j := rng.Intn(len(live))
			h.decr(live[j])
			live = append(live[:j], live[j+1:]...)
		} else {
			v := uint8(rng.Intn(256))
			h.incr(v)
			live = append(live, v)
		}
		require.Equal(t, histSum(&h), h.count, "after op %d", i)
		require.Equal(t, uint32(len(live)), h.count, "after op %d", i)
	}
}

func TestHistSet_MedianMatchesSort(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for _, n := range []int{1, 2, 3, 80, 81, 255} {
		for trial := 0; trial < 50; trial++ {
			var h histSet
			vals := make([]uint8, n)
			for i := range vals {
				vals[i] = uint8(rng.Intn(256))
				h.incr(vals[i])
			}
			require.Equal(t, naiveMedian(vals), h.median(), "n=%d trial=%d vals=%v", n, trial, vals)
		}
	}
}

func TestHistSet_MedianNarrowRange(t *testing.T) {
	// Heavy ties stress the cumulative comparison.
	rng := rand.New(rand.NewSource(3))
	for trial := 0; trial < 100; trial++ {
		var h histSet
		vals := make([]uint8, 81)
		for i := range vals {
			vals[i] = uint8(100 + rng.Intn(3))
			h.incr(vals[i])
		}
		assert.Equal(t, naiveMedian(vals), h.median())
	}
}

func TestHistSet_LowerMedian(t *testing.T) {
	var h histSet
	h.incr(10)
	h.incr(20)
	assert.Equal(t, uint8(10), h.median(), "even count takes the lower middle value")

	h.incr(30)
	h.incr(40)
	assert.Equal(t, uint8(20), h.median())
}

func TestHistSet_Empty(t *testing.T) {
	var h histSet
	assert.Equal(t, uint8(0), h.median())
	assert.Equal(t, uint32(0), h.count)
}

func TestHistSet_DecrRestoresMedian(t *testing.T) {
	var h histSet
	for _, v := range []uint8{5, 5, 200, 200, 200} {
		h.incr(v)
	}
	assert.Equal(t, uint8(200), h.median())

	h.decr(200)
	h.decr(200)
	assert.Equal(t, uint8(5), h.median())
	assert.Equal(t, uint32(3), h.count)
}
