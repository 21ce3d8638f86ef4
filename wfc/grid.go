package wfc

import (
	"sort"

	"github.com/katalvlaran/wavegrid/tileset"
)

// Cell is one grid position: a domain of still-possible tiles, a collapsed
// flag, and the resolved tile index (meaningful only when collapsed).
//
// Invariant: collapsed ⇒ domain == {tile}. The converse does not hold — a
// domain narrowed to one member by propagation stays uncollapsed until the
// collapse operator commits it, because contradiction handling may still
// reset it to the full catalog.
type Cell struct {
	domain    tileset.Domain
	collapsed bool
	tile      int
}

// Grid is a fixed-size row-major arrangement of Cells. It exclusively owns
// its cells; the solver is the only writer. Regeneration is wholesale —
// build a fresh Grid, discard the old one entirely.
type Grid struct {
	cols, rows     int
	catalog        *tileset.Catalog
	cells          []Cell
	collapsedCount int
	conflicts      map[Coordinate]struct{}
}

// NewGrid constructs a cols×rows grid over catalog c, every cell's domain
// initialized to the full catalog. Fails fast on caller error:
// ErrBadDimensions for cols or rows < 1, ErrNilCatalog for a nil catalog.
// Complexity: O(cols×rows×n/64) time and memory.
func NewGrid(cols, rows int, c *tileset.Catalog) (*Grid, error) {
	if cols < 1 || rows < 1 {
		return nil, ErrBadDimensions
	}
	if c == nil {
		return nil, ErrNilCatalog
	}
	g := &Grid{
		cols:      cols,
		rows:      rows,
		catalog:   c,
		cells:     make([]Cell, cols*rows),
		conflicts: make(map[Coordinate]struct{}),
	}
	for i := range g.cells {
		g.cells[i].domain = tileset.FullDomain(c.Size())
	}

	return g, nil
}

// Dimensions derives grid dimensions from a target pixel area and a fixed
// cell size, the way a canvas-driven caller sizes its grid. Returns
// ErrBadCellSize for cellSize < 1 and ErrBadDimensions when the area does
// not fit at least one cell each way.
// Complexity: O(1).
func Dimensions(widthPx, heightPx, cellSize int) (cols, rows int, err error) {
	if cellSize < 1 {
		return 0, 0, ErrBadCellSize
	}
	cols, rows = widthPx/cellSize, heightPx/cellSize
	if cols < 1 || rows < 1 {
		return 0, 0, ErrBadDimensions
	}
	return cols, rows, nil
}

// Cols returns the number of columns.
// Complexity: O(1).
func (g *Grid) Cols() int { return g.cols }

// Rows returns the number of rows.
// Complexity: O(1).
func (g *Grid) Rows() int { return g.rows }

// Catalog returns the catalog the grid was built over.
// Complexity: O(1).
func (g *Grid) Catalog() *tileset.Catalog { return g.catalog }

// InBounds reports whether co lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(co Coordinate) bool {
	return co.X >= 0 && co.X < g.cols && co.Y >= 0 && co.Y < g.rows
}

// index maps co to a row-major index: Y*cols + X.
// Complexity: O(1).
func (g *Grid) index(co Coordinate) int {
	return co.Y*g.cols + co.X
}

// at returns the cell at co for mutation. Callers must bounds-check first.
func (g *Grid) at(co Coordinate) *Cell {
	return &g.cells[g.index(co)]
}

// DomainSize returns the entropy (domain member count) of the cell at co,
// or 0 for out-of-bounds coordinates. Use it for entropy heatmaps.
// Complexity: O(n/64).
func (g *Grid) DomainSize(co Coordinate) int {
	if !g.InBounds(co) {
		return 0
	}
	return g.at(co).domain.Count()
}

// Collapsed reports whether the cell at co has been committed to one tile.
// Complexity: O(1).
func (g *Grid) Collapsed(co Coordinate) bool {
	return g.InBounds(co) && g.at(co).collapsed
}

// ResolvedTile returns the tile the cell at co collapsed into, and whether
// it is collapsed at all. Use it for rendering.
// Complexity: O(1).
func (g *Grid) ResolvedTile(co Coordinate) (tileset.Tile, bool) {
	if !g.InBounds(co) || !g.at(co).collapsed {
		return tileset.Tile{}, false
	}
	return g.catalog.Tile(g.at(co).tile), true
}

// CellDomain returns an independent copy of the domain of the cell at co,
// or an empty domain for out-of-bounds coordinates. Use it when a caller
// needs more than the entropy — e.g. listing a cell's surviving tiles.
// Complexity: O(n/64).
func (g *Grid) CellDomain(co Coordinate) tileset.Domain {
	if !g.InBounds(co) {
		return tileset.EmptyDomain(g.catalog.Size())
	}
	return g.at(co).domain.Clone()
}

// CollapsedCount returns the number of collapsed cells. It is maintained as
// an explicit counter, never recomputed by scanning, and keys every
// pseudo-random draw.
// Complexity: O(1).
func (g *Grid) CollapsedCount() int {
	return g.collapsedCount
}

// IsComplete reports whether every cell is collapsed. Because emptied
// domains are reset within the same propagation pass, no cell ever rests
// with an empty domain, so this coincides with selector exhaustion.
// Complexity: O(1).
func (g *Grid) IsComplete() bool {
	return g.collapsedCount == len(g.cells)
}

// Conflicts returns the Conflict Set — cells whose domain emptied under
// propagation and was reset to the full catalog — sorted row-major for
// deterministic iteration. Observability only (overlay visualization);
// membership has no effect on solving.
// Complexity: O(k log k), k = set size.
func (g *Grid) Conflicts() []Coordinate {
	out := make([]Coordinate, 0, len(g.conflicts))
	for co := range g.conflicts {
		out = append(out, co)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Y != out[j].Y {
			return out[i].Y < out[j].Y
		}
		return out[i].X < out[j].X
	})
	return out
}

// markConflict records co in the Conflict Set.
func (g *Grid) markConflict(co Coordinate) {
	g.conflicts[co] = struct{}{}
}

// clearConflict removes co from the Conflict Set. A cell leaves the set
// once its domain shrinks below the full catalog again without emptying.
func (g *Grid) clearConflict(co Coordinate) {
	delete(g.conflicts, co)
}

// ForceTile collapses the cell at co to tile index `tile` without a random
// draw. It exists for pre-seeding scenarios (fixing cells before the solve,
// or staging a deliberate contradiction ahead of Propagate). Returns
// ErrOutOfBounds, ErrUnknownTile, or ErrCellCollapsed on caller error.
// Complexity: O(n/64).
func (g *Grid) ForceTile(co Coordinate, tile int) error {
	if !g.InBounds(co) {
		return ErrOutOfBounds
	}
	if tile < 0 || tile >= g.catalog.Size() {
		return ErrUnknownTile
	}
	c := g.at(co)
	if c.collapsed {
		return ErrCellCollapsed
	}
	c.domain = tileset.EmptyDomain(g.catalog.Size())
	c.domain.Add(tile)
	c.tile = tile
	c.collapsed = true
	g.collapsedCount++
	g.clearConflict(co)

	return nil
}
