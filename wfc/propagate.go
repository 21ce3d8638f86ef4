package wfc

import "github.com/katalvlaran/wavegrid/tileset"

// Propagate re-establishes arc-consistency outward from a freshly collapsed
// origin cell, using an explicit FIFO worklist of coordinates-to-recheck
// rather than recursion, so call depth stays O(1) on arbitrarily large
// grids. Returns ErrOutOfBounds for an origin outside the grid.
//
// Rechecking a cell intersects its domain with the support set offered by
// each in-bounds neighbor (the union, over the neighbor's domain, of tiles
// the constraint table allows toward the rechecked cell). Outcomes per
// recheck:
//
//   - domain emptied — a local contradiction: the cell is recorded in the
//     Conflict Set and its domain reset to the full catalog. The reset cell
//     is not cascaded from. This deliberately correctness-relaxing policy
//     guarantees termination and forward progress at the cost of possible
//     local inconsistency in the final output; it is the documented
//     behavior, not a bug to fix with backtracking.
//   - domain shrank without emptying — the cell leaves the Conflict Set if
//     present, and its uncollapsed neighbors are enqueued for recheck.
//   - domain unchanged — nothing happens.
//
// The loop drains when no reachable domain can change: the standard
// arc-consistency fixpoint on the grid's 4-neighborhood graph. Worklist
// order affects exploration cost only, never the fixpoint.
//
// Complexity: O(cells×n) per shrink level; every enqueue follows a strict
// domain shrink, so total work is bounded by cols×rows×n rechecks.
func Propagate(g *Grid, t *tileset.Table, origin Coordinate) error {
	if !g.InBounds(origin) {
		return ErrOutOfBounds
	}
	// Seed the worklist with the origin's uncollapsed neighbors; the origin
	// itself is collapsed and fixed.
	var queue []Coordinate
	for _, d := range tileset.Directions {
		dx, dy := d.Delta()
		nb := Coordinate{X: origin.X + dx, Y: origin.Y + dy}
		if g.InBounds(nb) && !g.at(nb).collapsed {
			queue = append(queue, nb)
		}
	}

	for qi := 0; qi < len(queue); qi++ {
		co := queue[qi]
		c := g.at(co)
		if c.collapsed {
			continue
		}

		changed := false
		emptied := false
		for _, d := range tileset.Directions {
			dx, dy := d.Delta()
			nb := Coordinate{X: co.X + dx, Y: co.Y + dy}
			if !g.InBounds(nb) {
				continue
			}
			support := t.Support(g.at(nb).domain, d.Opposite())
			if c.domain.IntersectWith(support) {
				changed = true
			}
			if c.domain.Count() == 0 {
				emptied = true
				break
			}
		}

		if emptied {
			g.markConflict(co)
			c.domain.Fill()
			continue
		}
		if !changed {
			continue
		}
		g.clearConflict(co)
		for _, d := range tileset.Directions {
			dx, dy := d.Delta()
			nb := Coordinate{X: co.X + dx, Y: co.Y + dy}
			if g.InBounds(nb) && !g.at(nb).collapsed {
				queue = append(queue, nb)
			}
		}
	}

	return nil
}
