package wfc

import "github.com/katalvlaran/wavegrid/tileset"

// Solver orchestrates the select → collapse → propagate cycle over a Grid
// it exclusively owns. It is single-threaded and synchronous: every Step is
// an atomic unit of work with no internal suspension and no I/O, so callers
// may drive it at any cadence — timer loop or manual single-step — and the
// grid satisfies its invariants both before and after every call. There is
// no mid-step cancellation; to abort, stop calling Step and discard the
// grid. Regeneration is a fresh NewGrid + NewSolver, never partial reuse.
type Solver struct {
	grid  *Grid
	table *tileset.Table
	seed  int64
	state State
}

// NewSolver binds a grid, a shared read-only constraint table, and the seed
// deriving every pseudo-random draw. Fails fast on ErrNilGrid, ErrNilTable,
// or ErrCatalogMismatch when grid and table were built from different
// catalogs.
// Complexity: O(1).
func NewSolver(g *Grid, t *tileset.Table, seed int64) (*Solver, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if t == nil {
		return nil, ErrNilTable
	}
	if g.Catalog() != t.Catalog() {
		return nil, ErrCatalogMismatch
	}
	s := &Solver{grid: g, table: t, seed: seed, state: Ready}
	if g.CollapsedCount() > 0 {
		s.state = InProgress
	}

	return s, nil
}

// Grid returns the solver's grid for read-only inspection.
// Complexity: O(1).
func (s *Solver) Grid() *Grid { return s.grid }

// State returns the lifecycle state: Ready → InProgress → Complete.
// Complexity: O(1).
func (s *Solver) State() State { return s.state }

// IsComplete reports whether the solve reached its terminal state.
// Complexity: O(1).
func (s *Solver) IsComplete() bool { return s.state == Complete }

// Step advances the solve by one discrete unit: ask the selector for the
// lowest-entropy cell; if none remains, transition to Complete. Otherwise
// collapse that cell and propagate constraints outward from it. A failed
// collapse (domain emptied between selection and collapse) yields a
// no-progress result; the caller simply steps again. Each successful step
// collapses exactly one cell, and contradiction resets never un-collapse
// one, so Complete is reached within cols×rows successful steps.
//
// Complexity: O(cols×rows×n) worst case (scan + propagation fixpoint).
func (s *Solver) Step() StepResult {
	if s.state == Complete {
		return StepResult{Conflicts: s.grid.Conflicts()}
	}

	// The collapsed-cell counter keys both draws; captured before mutation
	// so selector and collapse share one step value.
	step := uint64(s.grid.CollapsedCount())

	co, ok := selectNext(s.grid, s.seed, step)
	if !ok {
		s.state = Complete
		return StepResult{Conflicts: s.grid.Conflicts()}
	}
	if !collapse(s.grid, co, s.seed, step) {
		return StepResult{Conflicts: s.grid.Conflicts()}
	}
	_ = Propagate(s.grid, s.table, co) // origin came from the selector, always in bounds

	s.state = InProgress
	if s.grid.IsComplete() {
		s.state = Complete
	}

	return StepResult{
		Progressed: true,
		Collapsed:  co,
		Conflicts:  s.grid.Conflicts(),
	}
}

// Run drives Step until Complete and returns the number of successful
// collapses performed. Termination is guaranteed: the uncollapsed-cell
// count strictly decreases on every progressed step and is never increased
// by contradiction resets.
//
// Complexity: O((cols×rows)²×n) worst case.
func (s *Solver) Run() int {
	progressed := 0
	for s.state != Complete {
		if s.Step().Progressed {
			progressed++
		}
	}
	return progressed
}
