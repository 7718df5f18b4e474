package detection

// recentPoints is a FIFO of indices into the point list, ordered by the row
// their point was created on. Only entries still inside the exclusion radius
// of the scan row take part in merge lookups.
type recentPoints struct {
	items []int
}

func (r *recentPoints) push(idx int) {
	r.items = append(r.items, idx)
}

func (r *recentPoints) len() int {
	return len(r.items)
}

// prune drops entries from the front whose point lies above row cutoff.
func (r *recentPoints) prune(points []PointCandidate, cutoff int) {
	for len(r.items) > 0 && int(points[r.items[0]].Y) < cutoff {
		r.items = r.items[1:]
	}
}

// match returns the first entry, in insertion order, whose point lies less
// than radius columns from x.
func (r *recentPoints) match(points []PointCandidate, x, radius int) (int, bool) {
	for _, idx := range r.items {
		dx := int(points[idx].X) - x
		if dx < 0 {
			dx = -dx
		}
		if dx < radius {
			return idx, true
		}
	}
	return 0, false
}
