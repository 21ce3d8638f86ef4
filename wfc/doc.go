// Package wfc implements a deterministic wave-function-collapse grid
// solver: it fills a 2D grid one cell at a time, each choice constrained by
// already-collapsed neighbors, until every cell holds exactly one tile.
//
// What:
//
//   - Grid holds Cells, each with a domain of still-possible tiles and a
//     collapsed flag; read-only accessors expose entropy, resolved tiles,
//     and the Conflict Set for callers that visualize.
//   - Solver runs the cycle: entropy selector (fewest-options cell, ties
//     broken by a seeded draw over row-major scan order) → collapse
//     operator (seeded draw from the cell's domain) → constraint
//     propagation to the arc-consistency fixpoint via an explicit worklist.
//   - Contradictions (a domain emptied by propagation) are recorded in the
//     Conflict Set and healed by resetting the cell to the full catalog —
//     no backtracking, no failure state, guaranteed termination.
//
// Why:
//
//   - Procedural generation: tile maps, pipe mazes, dungeon corridors.
//   - Stepwise drivers: each Step is atomic, so animation loops and manual
//     single-stepping are equivalent to the solver.
//   - Reproducibility: identical (seed, catalog, dimensions) replay the
//     identical solve trace, cell by cell.
//
// Complexity:
//
//   - Step:      O(cols×rows×n) worst case (scan + propagation fixpoint).
//   - Run:       at most cols×rows progressed steps to Complete.
//   - Propagate: every enqueue follows a strict domain shrink.
//
// Errors:
//
//   - ErrBadDimensions, ErrBadCellSize, ErrNilCatalog: NewGrid/Dimensions
//     preconditions.
//   - ErrNilGrid, ErrNilTable, ErrCatalogMismatch: NewSolver preconditions.
//   - ErrOutOfBounds, ErrUnknownTile, ErrCellCollapsed: ForceTile misuse.
//
// Construction is the only failure surface. During solving there are no
// errors: local contradictions self-heal and are surfaced only through the
// Conflict Set, which may leave locally inconsistent tiles in the final
// output. That trade-off is deliberate and documented on Propagate.
//
// The solver performs no file, network, or display I/O and never reads the
// clock; it consumes only a tile catalog and an integer seed.
package wfc
