package wfc

// selectNext scans the grid for the next cell to collapse: among all
// uncollapsed cells with a nonzero domain, those of minimum domain size
// ("lowest entropy"). Candidates are gathered in row-major scan order —
// that order is part of the determinism contract — and one is picked by a
// draw keyed on (seed, step), where step is the explicit collapsed-cell
// counter. Returns false when no candidate exists; that is the solver's
// only terminal condition.
//
// Complexity: O(cols×rows×n/64).
func selectNext(g *Grid, seed int64, step uint64) (Coordinate, bool) {
	best := -1
	var candidates []Coordinate
	for y := 0; y < g.rows; y++ {
		for x := 0; x < g.cols; x++ {
			co := Coordinate{X: x, Y: y}
			c := g.at(co)
			if c.collapsed {
				continue
			}
			n := c.domain.Count()
			if n == 0 {
				continue
			}
			if best == -1 || n < best {
				best = n
				candidates = candidates[:0]
			}
			if n == best {
				candidates = append(candidates, co)
			}
		}
	}
	if len(candidates) == 0 {
		return Coordinate{}, false
	}

	return candidates[drawIndex(len(candidates), seed, streamSelect, step)], true
}
