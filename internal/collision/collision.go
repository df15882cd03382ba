// Package collision answers the per-tick questions about the new head cell.
package collision

import (
	"go-snake/internal/grid"
	"go-snake/internal/spawn"
	"slices"
)

// SelfCollision reports whether newHead lands on any segment of the snake as
// it was before the move, the tail included.
func SelfCollision(snake []grid.Coordinate, newHead grid.Coordinate) bool {
	return slices.Contains(snake, newHead)
}

func FoodPickup(newHead, food grid.Coordinate) bool {
	return newHead == food
}

// PowerUpPickup is false when no power-up is on the board.
func PowerUpPickup(newHead grid.Coordinate, p *spawn.PowerUp) bool {
	return p != nil && p.Position == newHead
}
