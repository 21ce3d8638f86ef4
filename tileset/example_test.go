// File: tileset/example_test.go
package tileset_test

import (
	"fmt"

	"github.com/katalvlaran/wavegrid/tileset"
)

////////////////////////////////////////////////////////////////////////////////
// Example: BuildTable
////////////////////////////////////////////////////////////////////////////////

// ExampleBuildTable demonstrates deriving the adjacency constraint table
// from a tiny alphabet and reading the allowed-neighbor sets of one tile.
// Scenario:
//
//   - blank connects nowhere, vertical connects up/down, horizontal
//     connects left/right.
//   - Two tiles are compatible across an edge when their facing edge
//     predicates agree, so vertical stacks only on vertical, while either
//     blank or vertical may flank it sideways.
//
// Complexity: O(n²) build, O(n/64) per lookup.
func ExampleBuildTable() {
	catalog, _ := tileset.New([]tileset.Tile{
		{Name: "blank"},
		{Name: "vertical", Edges: [tileset.NumDirections]bool{true, false, true, false}},
		{Name: "horizontal", Edges: [tileset.NumDirections]bool{false, true, false, true}},
	})
	table := tileset.BuildTable(catalog)

	vertical, _ := catalog.Index("vertical")
	for _, d := range tileset.Directions {
		fmt.Printf("%s:", d)
		for _, i := range table.Allowed(vertical, d).Indices() {
			fmt.Printf(" %s", catalog.Tile(i).Name)
		}
		fmt.Println()
	}

	// Output:
	// up: vertical
	// right: blank vertical
	// down: vertical
	// left: blank vertical
}

////////////////////////////////////////////////////////////////////////////////
// Example: Domain
////////////////////////////////////////////////////////////////////////////////

// ExampleDomain demonstrates domain narrowing: intersecting a full domain
// with an allowed set and reading the surviving entropy.
func ExampleDomain() {
	catalog := tileset.Pipes()
	table := tileset.BuildTable(catalog)

	dom := tileset.FullDomain(catalog.Size())
	fmt.Println("entropy before:", dom.Count())

	// Constrain to tiles allowed below a vertical pipe.
	vertical, _ := catalog.Index("vertical")
	dom.IntersectWith(table.Allowed(vertical, tileset.Down))
	fmt.Println("entropy after:", dom.Count())

	// Output:
	// entropy before: 8
	// entropy after: 4
}
