// Package spawn places food and power-ups on free interior cells.
package spawn

import (
	"go-snake/internal/grid"
	"math/rand"
)

// Kind is the effect a power-up has when picked up.
type Kind int

const (
	Speed Kind = iota
	Multiplier
	Shield
)

// Kinds lists every power-up kind, in the order they are drawn from.
var Kinds = []Kind{Speed, Multiplier, Shield}

func (k Kind) String() string {
	switch k {
	case Speed:
		return "SPEED"
	case Multiplier:
		return "MULTIPLIER"
	case Shield:
		return "SHIELD"
	default:
		return "UNKNOWN"
	}
}

// PowerUp is a pickup lying on the board.
type PowerUp struct {
	Position grid.Coordinate
	Kind     Kind
}

// Spawner draws positions from an injected random source so a seeded game is
// reproducible.
type Spawner struct {
	rng           *rand.Rand
	attempts      int
	powerUpChance float64
}

// NewSpawner creates a spawner. attempts bounds the random sampling before
// falling back to a scan of the free cells.
func NewSpawner(rng *rand.Rand, attempts int, powerUpChance float64) *Spawner {
	if attempts < 1 {
		attempts = 1
	}
	return &Spawner{
		rng:           rng,
		attempts:      attempts,
		powerUpChance: powerUpChance,
	}
}

// PlaceFood picks a free cell in the interior band. It returns false when
// every interior cell is occupied.
func (s *Spawner) PlaceFood(occupied grid.Set, size int) (grid.Coordinate, bool) {
	return s.place(occupied, size)
}

// MaybeSpawnPowerUp rolls the spawn chance and, on success, returns a power-up
// of a random kind on a free interior cell. Callers only ask while no
// power-up is on the board.
func (s *Spawner) MaybeSpawnPowerUp(occupied grid.Set, size int) *PowerUp {
	if s.rng.Float64() >= s.powerUpChance {
		return nil
	}
	kind := Kinds[s.rng.Intn(len(Kinds))]
	pos, ok := s.place(occupied, size)
	if !ok {
		return nil
	}
	return &PowerUp{Position: pos, Kind: kind}
}

func (s *Spawner) place(occupied grid.Set, size int) (grid.Coordinate, bool) {
	if size < 3 {
		return grid.Coordinate{}, false
	}

	for i := 0; i < s.attempts; i++ {
		c := grid.Coordinate{
			X: s.rng.Intn(size-2) + 1,
			Y: s.rng.Intn(size-2) + 1,
		}
		if !occupied.Has(c) {
			return c, true
		}
	}

	// Crowded board: pick uniformly among what is left.
	var free []grid.Coordinate
	for _, c := range grid.InteriorCells(size) {
		if !occupied.Has(c) {
			free = append(free, c)
		}
	}
	if len(free) == 0 {
		return grid.Coordinate{}, false
	}
	return free[s.rng.Intn(len(free))], true
}
