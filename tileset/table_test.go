package tileset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wavegrid/tileset"
)

// linesCatalog is the three-tile alphabet used across the solver tests:
// blank connects nowhere, vertical connects up/down, horizontal left/right.
func linesCatalog(t *testing.T) *tileset.Catalog {
	t.Helper()
	c, err := tileset.New([]tileset.Tile{
		{Name: "blank", Glyph: ' '},
		{Name: "vertical", Glyph: '│', Edges: [tileset.NumDirections]bool{true, false, true, false}},
		{Name: "horizontal", Glyph: '─', Edges: [tileset.NumDirections]bool{false, true, false, true}},
	})
	require.NoError(t, err)
	return c
}

// TestBuildTable_Lines pins down the exact allowed sets of the three-tile
// alphabet (indices: 0=blank, 1=vertical, 2=horizontal).
func TestBuildTable_Lines(t *testing.T) {
	tb := tileset.BuildTable(linesCatalog(t))

	cases := []struct {
		tile int
		d    tileset.Direction
		want []int
	}{
		{1, tileset.Up, []int{1}},
		{1, tileset.Down, []int{1}},
		{1, tileset.Right, []int{0, 1}},
		{1, tileset.Left, []int{0, 1}},
		{2, tileset.Right, []int{2}},
		{2, tileset.Left, []int{2}},
		{2, tileset.Up, []int{0, 2}},
		{0, tileset.Up, []int{0, 2}},
		{0, tileset.Right, []int{0, 1}},
	}
	for _, tc := range cases {
		got := tb.Allowed(tc.tile, tc.d).Indices()
		assert.Equal(t, tc.want, got, "Allowed(%d, %v)", tc.tile, tc.d)
	}
}

// TestBuildTable_Symmetry verifies the compatibility-symmetry invariant over
// the full pipe alphabet: B ∈ Allowed(A,d) ⇔ A ∈ Allowed(B, opposite(d)).
func TestBuildTable_Symmetry(t *testing.T) {
	c := tileset.Pipes()
	tb := tileset.BuildTable(c)

	for a := 0; a < c.Size(); a++ {
		for b := 0; b < c.Size(); b++ {
			for _, d := range tileset.Directions {
				forward := tb.Allowed(a, d).Has(b)
				backward := tb.Allowed(b, d.Opposite()).Has(a)
				assert.Equal(t, forward, backward,
					"symmetry broken for tiles %q/%q direction %v",
					c.Tile(a).Name, c.Tile(b).Name, d)
			}
		}
	}
}

// TestTable_Support checks that Support is the union of per-tile allowed
// sets over a domain.
func TestTable_Support(t *testing.T) {
	c := linesCatalog(t)
	tb := tileset.BuildTable(c)

	dom := tileset.EmptyDomain(c.Size())
	dom.Add(1) // vertical
	dom.Add(2) // horizontal

	// Allowed(vertical,Up)={vertical}; Allowed(horizontal,Up)={blank,horizontal}.
	assert.Equal(t, []int{0, 1, 2}, tb.Support(dom, tileset.Up).Indices())

	single := tileset.EmptyDomain(c.Size())
	single.Add(1)
	assert.Equal(t, []int{0, 1}, tb.Support(single, tileset.Right).Indices(),
		"singleton support must equal the tile's allowed set")

	empty := tileset.EmptyDomain(c.Size())
	assert.Equal(t, 0, tb.Support(empty, tileset.Down).Count(),
		"empty domain offers no support")
}

// TestTable_AllowedIsCopy verifies callers cannot mutate table internals.
func TestTable_AllowedIsCopy(t *testing.T) {
	tb := tileset.BuildTable(linesCatalog(t))
	d := tb.Allowed(1, tileset.Up)
	d.Add(0)
	assert.Equal(t, []int{1}, tb.Allowed(1, tileset.Up).Indices(),
		"table mutated through Allowed copy")
}
