// Package wfc defines core types, options, and sentinel errors
// for the wfc subpackage of github.com/katalvlaran/wavegrid.
package wfc

import (
	"errors"
)

// Sentinel errors for grid and solver construction. Construction is the
// only place wavegrid can fail: once a Solver exists, contradictions during
// solving self-heal (see Propagate) and are surfaced via the Conflict Set,
// never as errors.
var (
	// ErrBadDimensions indicates non-positive grid dimensions.
	ErrBadDimensions = errors.New("wfc: grid dimensions must be at least 1×1")
	// ErrBadCellSize indicates a non-positive cell size for Dimensions.
	ErrBadCellSize = errors.New("wfc: cell size must be at least 1")
	// ErrNilCatalog indicates a nil tile catalog at grid construction.
	ErrNilCatalog = errors.New("wfc: tile catalog must be non-nil")
	// ErrNilGrid indicates a nil grid at solver construction.
	ErrNilGrid = errors.New("wfc: grid must be non-nil")
	// ErrNilTable indicates a nil constraint table at solver construction.
	ErrNilTable = errors.New("wfc: constraint table must be non-nil")
	// ErrCatalogMismatch indicates grid and table built from different catalogs.
	ErrCatalogMismatch = errors.New("wfc: grid and constraint table must share one catalog")
	// ErrOutOfBounds indicates a coordinate outside the grid.
	ErrOutOfBounds = errors.New("wfc: coordinate out of grid bounds")
	// ErrUnknownTile indicates a tile index outside the catalog.
	ErrUnknownTile = errors.New("wfc: tile index outside the catalog")
	// ErrCellCollapsed indicates an attempt to force an already collapsed cell.
	ErrCellCollapsed = errors.New("wfc: cell is already collapsed")
)

// Coordinate addresses one grid cell: X is the column, Y the row.
type Coordinate struct {
	X, Y int
}

// State is the solver lifecycle state.
//
//   - Ready      — grid freshly built, nothing collapsed.
//   - InProgress — some but not all cells collapsed.
//   - Complete   — terminal; the selector found no remaining candidate.
//
// There is no failed state: the contradiction-reset policy guarantees
// forward progress, so selector exhaustion is the only terminal condition.
type State int

const (
	// Ready means no cell has been collapsed yet.
	Ready State = iota
	// InProgress means some but not all cells are collapsed.
	InProgress
	// Complete means every live cell is collapsed; terminal.
	Complete
)

// String implements fmt.Stringer.
func (s State) String() string {
	switch s {
	case Ready:
		return "ready"
	case InProgress:
		return "in-progress"
	default:
		return "complete"
	}
}

// StepResult reports the outcome of a single solver step.
//
//   - Progressed is true when exactly one cell was collapsed this step;
//     Collapsed then holds its coordinate. A false Progressed with a
//     non-Complete solver is a no-progress no-op and the caller should
//     simply step again.
//   - Conflicts is a row-major-sorted snapshot of the current Conflict Set:
//     cells whose domain emptied under propagation and was reset to the
//     full catalog. Observability only; it carries no effect on solving.
type StepResult struct {
	Progressed bool
	Collapsed  Coordinate
	Conflicts  []Coordinate
}
