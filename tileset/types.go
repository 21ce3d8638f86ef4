// Package tileset defines core types and sentinel errors
// for the tileset subpackage of github.com/katalvlaran/wavegrid.
package tileset

import (
	"errors"
)

// Sentinel errors for catalog construction.
var (
	// ErrEmptyCatalog indicates a catalog was built from zero tiles.
	ErrEmptyCatalog = errors.New("tileset: catalog must contain at least one tile")
	// ErrBlankTileName indicates a tile with an empty name.
	ErrBlankTileName = errors.New("tileset: tile name must be non-empty")
	// ErrDuplicateTile indicates two tiles sharing the same name.
	ErrDuplicateTile = errors.New("tileset: tile names must be unique")
)

// Direction identifies one of the four orthogonal grid directions.
type Direction int

const (
	// Up points toward decreasing row index.
	Up Direction = iota
	// Right points toward increasing column index.
	Right
	// Down points toward increasing row index.
	Down
	// Left points toward decreasing column index.
	Left
)

// NumDirections is the size of every per-tile edge vector.
const NumDirections = 4

// Directions lists the four directions in canonical order.
// Use it for adjacency traversals so scan order stays stable.
var Directions = [NumDirections]Direction{Up, Right, Down, Left}

// Opposite returns the direction pointing back at the caller:
// Up↔Down, Left↔Right.
// Complexity: O(1).
func (d Direction) Opposite() Direction {
	return (d + 2) % NumDirections
}

// Delta returns the (dx, dy) column/row offset of one step in d.
// Complexity: O(1).
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case Up:
		return 0, -1
	case Right:
		return 1, 0
	case Down:
		return 0, 1
	default:
		return -1, 0
	}
}

// String implements fmt.Stringer.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	default:
		return "left"
	}
}

// Tile is one symbol of the alphabet: an identity (Name), a display hint
// (Glyph) for callers that render grids, and a fixed-size edge vector
// stating whether the tile connects outward in each direction.
// Tiles are created once at catalog build and never mutated.
type Tile struct {
	Name  string
	Glyph rune
	Edges [NumDirections]bool
}
