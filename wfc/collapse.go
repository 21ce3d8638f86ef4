package wfc

import "github.com/katalvlaran/wavegrid/tileset"

// collapse commits the cell at co to exactly one tile, drawn from its
// domain's ascending index list by a draw keyed on (seed, coordinate,
// step). The stream tag differs from the selector's, so the two draw
// families never correlate. Returns false — a no-progress no-op — when the
// cell is already collapsed or its domain is empty. Mutates exactly one
// cell.
//
// Complexity: O(n).
func collapse(g *Grid, co Coordinate, seed int64, step uint64) bool {
	c := g.at(co)
	if c.collapsed || c.domain.Count() == 0 {
		return false
	}
	choices := c.domain.Indices()
	pick := choices[drawIndex(len(choices), seed, streamCollapse, coordKey(co), step)]

	c.domain = tileset.EmptyDomain(g.catalog.Size())
	c.domain.Add(pick)
	c.tile = pick
	c.collapsed = true
	g.collapsedCount++
	// A singleton domain is below the full catalog, so a conflicted cell
	// leaves the Conflict Set on collapse like on any other shrink.
	g.clearConflict(co)

	return true
}
