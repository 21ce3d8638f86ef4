// Package tileset provides the immutable inputs of a wave-function-collapse
// solve: the tile alphabet, the pairwise adjacency constraint table derived
// from it, and bitset domains over tile indices.
//
// What:
//
//   - Tile couples an opaque symbol with a four-entry boolean edge vector
//     (connects up/right/down/left).
//   - Catalog is the closed, indexed alphabet; validated once at build.
//   - Table maps every (tile, direction) to the set of tiles allowed one
//     step away, derived from edge-predicate equality.
//   - Domain is a bitset of still-possible tiles; its Count is a cell's
//     entropy.
//
// Why:
//
//   - Procedural maps: pipes, roads, rivers, dungeon corridors.
//   - Constraint demos: the catalog and table are pure data, so one build
//     serves any number of concurrent solver instances.
//
// Complexity:
//
//   - New:        O(n) time, O(n) memory.
//   - BuildTable: O(n²) time, O(n²/64) memory.
//   - Domain ops: O(n/64) per intersect/union/count.
//
// Errors:
//
//   - ErrEmptyCatalog: catalog built from zero tiles.
//   - ErrBlankTileName: a tile with an empty name.
//   - ErrDuplicateTile: two tiles sharing a name.
//
// Invariant: the table is symmetric — B ∈ Allowed(A, d) if and only if
// A ∈ Allowed(B, d.Opposite()) — because both memberships reduce to the
// same predicate equality.
package tileset
