package tileset

import "math/bits"

// Table is the adjacency constraint table derived from a Catalog: for every
// (tile, direction) pair, the set of tiles allowed to sit one step away in
// that direction. Built once by BuildTable and read-only afterward; a single
// Table may be shared by all solvers using the same catalog.
type Table struct {
	catalog *Catalog
	allowed [][NumDirections]Domain
}

// BuildTable derives the constraint table from c. Two tiles are compatible
// across a shared edge when their facing edge predicates agree: A admits B
// in direction d exactly when A.Edges[d] == B.Edges[d.Opposite()]. The rule
// is symmetric by construction, so B ∈ Allowed(A, d) ⇔ A ∈ Allowed(B,
// d.Opposite()). Pure function of the catalog; no error conditions.
// Complexity: O(n²) time, O(n²/64) memory.
func BuildTable(c *Catalog) *Table {
	n := c.Size()
	t := &Table{
		catalog: c,
		allowed: make([][NumDirections]Domain, n),
	}
	for a := 0; a < n; a++ {
		for _, d := range Directions {
			dom := EmptyDomain(n)
			for b := 0; b < n; b++ {
				if c.Tile(a).Edges[d] == c.Tile(b).Edges[d.Opposite()] {
					dom.Add(b)
				}
			}
			t.allowed[a][d] = dom
		}
	}

	return t
}

// Catalog returns the catalog the table was built from.
// Complexity: O(1).
func (t *Table) Catalog() *Catalog {
	return t.catalog
}

// Allowed returns the set of tiles permitted one step in direction d from a
// cell resolved to tile index `tile`. The result is a copy; callers may
// mutate it freely.
// Complexity: O(n/64).
func (t *Table) Allowed(tile int, d Direction) Domain {
	return t.allowed[tile][d].Clone()
}

// Support returns the union of Allowed(t, d) over every tile t in dom: the
// generalized arc-consistency support an uncollapsed cell with domain dom
// offers to its neighbor in direction d.
// Complexity: O(k·n/64), k = |dom|.
func (t *Table) Support(dom Domain, d Direction) Domain {
	out := EmptyDomain(t.catalog.Size())
	for wi, w := range dom.words {
		for w != 0 {
			b := bits.TrailingZeros64(w)
			out.UnionWith(t.allowed[wi*wordBits+b][d])
			w &^= uint64(1) << b
		}
	}
	return out
}
