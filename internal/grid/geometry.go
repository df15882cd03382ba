// Package grid holds the coordinate space of the board: positions, directions
// and the toroidal wrap-around used for movement.
package grid

import "fmt"

// Coordinate is a cell on a square board, 0 <= X,Y < size.
type Coordinate struct {
	X int
	Y int
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Advance moves pos one cell in direction d, wrapping around the board edges.
func Advance(pos Coordinate, d Direction, size int) Coordinate {
	dx, dy := d.Delta()
	return Coordinate{
		X: wrap(pos.X+dx, size),
		Y: wrap(pos.Y+dy, size),
	}
}

// wrap handles any integer, not only a single step past an edge.
func wrap(v, size int) int {
	return ((v % size) + size) % size
}

// InBounds reports whether c lies on a board of the given size. Positions
// produced by Advance always do.
func InBounds(c Coordinate, size int) bool {
	return c.X >= 0 && c.X < size && c.Y >= 0 && c.Y < size
}

// InInterior reports whether c lies in the interior band, the board minus its
// outermost ring. Food and power-ups only spawn there.
func InInterior(c Coordinate, size int) bool {
	return c.X >= 1 && c.X <= size-2 && c.Y >= 1 && c.Y <= size-2
}

// InteriorCells lists every interior-band cell in row-major order.
func InteriorCells(size int) []Coordinate {
	if size < 3 {
		return nil
	}
	cells := make([]Coordinate, 0, (size-2)*(size-2))
	for y := 1; y <= size-2; y++ {
		for x := 1; x <= size-2; x++ {
			cells = append(cells, Coordinate{X: x, Y: y})
		}
	}
	return cells
}

// Set is an occupancy set of cells.
type Set map[Coordinate]struct{}

// NewSet builds a set from any number of coordinate slices.
func NewSet(groups ...[]Coordinate) Set {
	s := Set{}
	for _, g := range groups {
		for _, c := range g {
			s[c] = struct{}{}
		}
	}
	return s
}

func (s Set) Add(c Coordinate) {
	s[c] = struct{}{}
}

func (s Set) Has(c Coordinate) bool {
	_, ok := s[c]
	return ok
}
