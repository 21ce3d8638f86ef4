// Package tileset builds immutable tile catalogs: the closed alphabet a
// wave-function-collapse solver draws from. A Catalog assigns every tile a
// stable index; all domain and constraint machinery works on those indices.
package tileset

// Catalog is a closed, indexed set of Tiles. It is immutable once built;
// a single Catalog may be shared (read-only) by any number of solvers.
type Catalog struct {
	tiles []Tile
	index map[string]int
}

// New constructs a Catalog from a non-empty tile list.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyCatalog for zero tiles, ErrBlankTileName for an unnamed
// tile, ErrDuplicateTile when two tiles share a name.
// Complexity: O(n) time and memory.
func New(tiles []Tile) (*Catalog, error) {
	if len(tiles) == 0 {
		return nil, ErrEmptyCatalog
	}
	c := &Catalog{
		tiles: make([]Tile, len(tiles)),
		index: make(map[string]int, len(tiles)),
	}
	copy(c.tiles, tiles)
	for i, t := range c.tiles {
		if t.Name == "" {
			return nil, ErrBlankTileName
		}
		if _, dup := c.index[t.Name]; dup {
			return nil, ErrDuplicateTile
		}
		c.index[t.Name] = i
	}

	return c, nil
}

// Size returns the number of tiles in the catalog.
// Complexity: O(1).
func (c *Catalog) Size() int {
	return len(c.tiles)
}

// Tile returns the tile at index i. The index must be in [0, Size).
// Complexity: O(1).
func (c *Catalog) Tile(i int) Tile {
	return c.tiles[i]
}

// Index returns the index of the tile named name, and whether it exists.
// Complexity: O(1).
func (c *Catalog) Index(name string) (int, bool) {
	i, ok := c.index[name]
	return i, ok
}

// Tiles returns a copy of the full tile list in index order.
// Complexity: O(n).
func (c *Catalog) Tiles() []Tile {
	out := make([]Tile, len(c.tiles))
	copy(out, c.tiles)
	return out
}

// Pipes returns the classic pipe-tile alphabet: a blank tile, straight
// vertical and horizontal runs, a four-way cross, and the four elbows.
// Edge vectors are ordered Up, Right, Down, Left.
func Pipes() *Catalog {
	c, _ := New([]Tile{ // literals below are valid by construction
		{Name: "blank", Glyph: ' ', Edges: [NumDirections]bool{false, false, false, false}},
		{Name: "vertical", Glyph: '│', Edges: [NumDirections]bool{true, false, true, false}},
		{Name: "horizontal", Glyph: '─', Edges: [NumDirections]bool{false, true, false, true}},
		{Name: "cross", Glyph: '┼', Edges: [NumDirections]bool{true, true, true, true}},
		{Name: "up-right", Glyph: '└', Edges: [NumDirections]bool{true, true, false, false}},
		{Name: "right-down", Glyph: '┌', Edges: [NumDirections]bool{false, true, true, false}},
		{Name: "down-left", Glyph: '┐', Edges: [NumDirections]bool{false, false, true, true}},
		{Name: "left-up", Glyph: '┘', Edges: [NumDirections]bool{true, false, false, true}},
	})
	return c
}
