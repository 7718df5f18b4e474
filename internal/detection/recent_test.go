package detection

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecentPoints_PruneFromFront(t *testing.T) {
	points := []PointCandidate{
		{X: 10, Y: 0, Val: 90},
		{X: 50, Y: 5, Val: 90},
		{X: 90, Y: 5, Val: 90},
		{X: 130, Y: 9, Val: 90},
	}
	var r recentPoints
	for i := range points {
		r.push(i)
	}

	r.prune(points, 0)
	assert.Equal(t, 4, r.len(), "nothing lies above row 0")

	r.prune(points, 5)
	assert.Equal(t, []int{1, 2, 3}, r.items)

	r.prune(points, 6)
	assert.Equal(t, []int{3}, r.items)

	r.prune(points, 100)
	assert.Equal(t, 0, r.len())

	r.push(1)
	assert.Equal(t, []int{1}, r.items)
}

func TestRecentPoints_PruneNegativeCutoff(t *testing.T) {
	points := []PointCandidate{{X: 10, Y: 0, Val: 90}}
	var r recentPoints
	r.push(0)

	r.prune(points, -20)
	assert.Equal(t, 1, r.len())
}

func TestRecentPoints_MatchFirstInOrder(t *testing.T) {
	points := []PointCandidate{
		{X: 100, Y: 0, Val: 90},
		{X: 105, Y: 1, Val: 90},
	}
	var r recentPoints
	r.push(0)
	r.push(1)

	idx, ok := r.match(points, 110, 20)
	assert.True(t, ok)
	assert.Equal(t, 0, idx, "earliest entry wins even when a later one is closer")

	idx, ok = r.match(points, 124, 20)
	assert.True(t, ok)
	assert.Equal(t, 1, idx)

	_, ok = r.match(points, 125, 20)
	assert.False(t, ok, "distance equal to the radius does not match")

	idx, ok = r.match(points, 81, 20)
	assert.True(t, ok)
	assert.Equal(t, 0, idx)

	_, ok = r.match(points, 80, 20)
	assert.False(t, ok)
}

func TestRecentPoints_MatchEmpty(t *testing.T) {
	var r recentPoints
	_, ok := r.match(nil, 0, 20)
	assert.False(t, ok)
}
