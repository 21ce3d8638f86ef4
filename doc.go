// Package wavegrid is a deterministic wave-function-collapse toolkit:
// define a tile alphabet, derive its adjacency constraints once, and fill
// 2D grids cell by cell under those constraints.
//
// 🚀 What is wavegrid?
//
//	A small, seed-reproducible constraint solver that brings together:
//		• Tile catalogs: closed alphabets with per-edge connector predicates
//		• Constraint tables: (tile, direction) → allowed-neighbor sets
//		• Bitset domains: a cell's remaining possibilities, counted as entropy
//		• A step solver: lowest-entropy selection, seeded collapse, worklist
//		  propagation to the arc-consistency fixpoint
//		• Conflict healing: contradicted cells reset and are reported, never fatal
//
// ✨ Why choose wavegrid?
//
//   - Reproducible – every draw derives from one integer seed; same seed,
//     same grid, on every platform
//   - Driver-agnostic – each Step is atomic, so timer loops and manual
//     single-stepping are interchangeable
//   - Pure Go – no I/O, no clock reads, no hidden state
//   - Observable – entropy, resolved tiles, and the Conflict Set are plain
//     read-only accessors for heatmaps and overlays
//
// Under the hood, everything is organized under two subpackages:
//
//	tileset/ — Tile, Catalog, Direction, Domain, constraint Table
//	wfc/     — Grid, Cell, Solver state machine, Propagate
//
// Quick ASCII example (a solved 6×3 pipe grid):
//
//	┌─┐ ┌┐
//	│ └─┘│
//	└────┘
//
// Start with tileset.Pipes and wfc.NewSolver; see examples/ for runnable
// walkthroughs.
package wavegrid
