package collision

import (
	"go-snake/internal/grid"
	"go-snake/internal/spawn"
	"testing"
)

func TestSelfCollision(t *testing.T) {
	snake := []grid.Coordinate{{X: 5, Y: 5}, {X: 5, Y: 4}, {X: 6, Y: 4}, {X: 6, Y: 5}}

	if !SelfCollision(snake, grid.Coordinate{X: 6, Y: 5}) {
		t.Error("Moving onto the tail is a collision")
	}
	if !SelfCollision(snake, grid.Coordinate{X: 5, Y: 4}) {
		t.Error("Moving onto the neck is a collision")
	}
	if SelfCollision(snake, grid.Coordinate{X: 4, Y: 5}) {
		t.Error("Free cell should not collide")
	}
	if SelfCollision(nil, grid.Coordinate{}) {
		t.Error("Empty snake never collides")
	}
}

func TestFoodPickup(t *testing.T) {
	if !FoodPickup(grid.Coordinate{X: 3, Y: 3}, grid.Coordinate{X: 3, Y: 3}) {
		t.Error("Same cell should pick up food")
	}
	if FoodPickup(grid.Coordinate{X: 3, Y: 3}, grid.Coordinate{X: 3, Y: 4}) {
		t.Error("Different cell should not pick up food")
	}
}

func TestPowerUpPickup(t *testing.T) {
	p := &spawn.PowerUp{Position: grid.Coordinate{X: 2, Y: 7}, Kind: spawn.Shield}
	if !PowerUpPickup(grid.Coordinate{X: 2, Y: 7}, p) {
		t.Error("Same cell should pick up the power-up")
	}
	if PowerUpPickup(grid.Coordinate{X: 7, Y: 2}, p) {
		t.Error("Different cell should not pick up the power-up")
	}
	if PowerUpPickup(grid.Coordinate{X: 2, Y: 7}, nil) {
		t.Error("No power-up on the board, nothing to pick up")
	}
}
