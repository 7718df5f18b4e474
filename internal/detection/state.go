package detection

import "fmt"

type stateKind uint8

const (
	stateSearching stateKind = iota
	stateWithinNewPoint
	stateWithinExistingPoint
	stateWithinGuard
)

func (k stateKind) String() string {
	switch k {
	case stateSearching:
		return "searching"
	case stateWithinNewPoint:
		return "within_new_point"
	case stateWithinExistingPoint:
		return "within_existing_point"
	case stateWithinGuard:
		return "within_guard"
	}
	return fmt.Sprintf("stateKind(%d)", uint8(k))
}

// scanState is the tagged union driving the point tracker. Only the fields of
// the active kind are meaningful:
//
//	stateWithinNewPoint       x, y, maxVal (running maximum of an unrecorded blob)
//	stateWithinExistingPoint  index (into the point list)
//	stateWithinGuard          remaining (pixels left in the cooldown)
type scanState struct {
	kind      stateKind
	x, y      uint32
	maxVal    uint8
	index     int
	remaining int
}

func searching() scanState {
	return scanState{kind: stateSearching}
}

func withinNewPoint(x, y uint32, val uint8) scanState {
	return scanState{kind: stateWithinNewPoint, x: x, y: y, maxVal: val}
}

func withinExistingPoint(index int) scanState {
	return scanState{kind: stateWithinExistingPoint, index: index}
}

func withinGuard(remaining int) scanState {
	return scanState{kind: stateWithinGuard, remaining: remaining}
}

// tracker owns the mutable state of one scan: the point list, the recent
// point queue and the current state.
type tracker struct {
	radius    int
	threshold uint8
	points    []PointCandidate
	recent    recentPoints
	state     scanState
	stats     Stats
}

func newTracker(p Params) *tracker {
	return &tracker{
		radius:    p.radius(),
		threshold: p.Threshold,
		state:     searching(),
	}
}

// prune retires recent points that lie more than the exclusion radius above row y.
func (t *tracker) prune(y int) {
	t.recent.prune(t.points, y-t.radius)
}

// step feeds one processed pixel through the transition table.
func (t *tracker) step(x, y int, processed uint8) {
	switch t.state.kind {
	case stateSearching:
		if idx, ok := t.recent.match(t.points, x, t.radius); ok {
			t.state = withinExistingPoint(idx)
			t.stats.ExistingRevisits++
		} else if processed > t.threshold {
			t.state = withinNewPoint(uint32(x), uint32(y), processed)
		}

	case stateWithinExistingPoint:
		p := &t.points[t.state.index]
		if processed > p.Val {
			*p = PointCandidate{X: uint32(x), Y: uint32(y), Val: processed}
			t.stats.PointUpdates++
		} else if processed <= t.threshold {
			t.enterGuard()
		}

	case stateWithinNewPoint:
		if processed > t.state.maxVal {
			t.state = withinNewPoint(uint32(x), uint32(y), processed)
		} else if processed <= t.threshold {
			t.points = append(t.points, PointCandidate{X: t.state.x, Y: t.state.y, Val: t.state.maxVal})
			t.recent.push(len(t.points) - 1)
			t.stats.PointsCreated++
			t.enterGuard()
		}

	case stateWithinGuard:
		if t.state.remaining > 0 {
			t.state.remaining--
		} else {
			t.state = searching()
		}

	default:
		panic(fmt.Sprintf("detection: unknown scan state %v", t.state.kind))
	}
}

func (t *tracker) enterGuard() {
	t.state = withinGuard(t.radius)
	t.stats.GuardsEntered++
}

// open reports whether a blob is still being tracked.
func (t *tracker) open() bool {
	return t.state.kind == stateWithinNewPoint || t.state.kind == stateWithinExistingPoint
}
