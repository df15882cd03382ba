// Package config holds every tunable of the game so the engine carries no
// hard-coded constants.
package config

import (
	"errors"
	"fmt"
	"go-snake/internal/difficulty"
	"go-snake/internal/grid"
	"time"
)

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	GridSize     int
	InitialSpeed time.Duration // 0 uses the difficulty's base speed
	Difficulty   difficulty.Level
	Levels       map[difficulty.Level]difficulty.Settings

	StartPosition  grid.Coordinate
	StartDirection grid.Direction
	StartFood      *grid.Coordinate // nil places the first food at random

	MinSpeed       time.Duration
	SpeedStep      time.Duration
	SpeedInterval  int
	GrowInterval   int
	GrowStep       int
	MaxGridSize    int
	BaseFoodPoints int

	PowerUpChance      float64
	PowerUpSpeedStep   time.Duration
	MultiplierDuration time.Duration
	MultiplierFactor   int

	SpawnAttempts int
	InputQueue    int   // 1 keeps only the newest turn
	Seed          int64 // 0 seeds from the clock
}

// Default returns the stock ruleset.
func Default() Config {
	food := grid.Coordinate{X: 15, Y: 15}
	return Config{
		GridSize:   20,
		Difficulty: difficulty.Medium,
		Levels:     difficulty.DefaultSettings(),

		StartPosition:  grid.Coordinate{X: 10, Y: 10},
		StartDirection: grid.Right,
		StartFood:      &food,

		MinSpeed:       50 * time.Millisecond,
		SpeedStep:      20 * time.Millisecond,
		SpeedInterval:  3,
		GrowInterval:   6,
		GrowStep:       2,
		MaxGridSize:    30,
		BaseFoodPoints: 1,

		PowerUpChance:      0.2,
		PowerUpSpeedStep:   30 * time.Millisecond,
		MultiplierDuration: 5 * time.Second,
		MultiplierFactor:   2,

		SpawnAttempts: 64,
		InputQueue:    1,
	}
}

// Settings returns the speed/multiplier pair of the configured difficulty.
func (c Config) Settings() difficulty.Settings {
	return c.Levels[c.Difficulty]
}

// StartSpeed is the tick interval a new game begins with.
func (c Config) StartSpeed() time.Duration {
	if c.InitialSpeed > 0 {
		return c.InitialSpeed
	}
	return c.Settings().Speed
}

// Rules extracts the escalation constants.
func (c Config) Rules() difficulty.Rules {
	return difficulty.Rules{
		SpeedInterval: c.SpeedInterval,
		SpeedStep:     c.SpeedStep,
		MinSpeed:      c.MinSpeed,
		GrowInterval:  c.GrowInterval,
		GrowStep:      c.GrowStep,
		MaxGridSize:   c.MaxGridSize,
	}
}

// Validate checks the config for values the engine cannot run with.
func (c Config) Validate() error {
	if c.GridSize < 3 {
		return fmt.Errorf("%w: grid size %d leaves no interior", ErrInvalidConfig, c.GridSize)
	}
	if c.MaxGridSize < c.GridSize {
		return fmt.Errorf("%w: max grid size %d below grid size %d", ErrInvalidConfig, c.MaxGridSize, c.GridSize)
	}
	s, ok := c.Levels[c.Difficulty]
	if !ok {
		return fmt.Errorf("%w: no settings for difficulty %v", ErrInvalidConfig, c.Difficulty)
	}
	if s.Multiplier <= 0 {
		return fmt.Errorf("%w: difficulty multiplier must be positive", ErrInvalidConfig)
	}
	if c.MinSpeed <= 0 {
		return fmt.Errorf("%w: min speed must be positive", ErrInvalidConfig)
	}
	if c.StartSpeed() < c.MinSpeed {
		return fmt.Errorf("%w: start speed %v below min speed %v", ErrInvalidConfig, c.StartSpeed(), c.MinSpeed)
	}
	if c.SpeedStep < 0 || c.PowerUpSpeedStep < 0 {
		return fmt.Errorf("%w: speed steps must not be negative", ErrInvalidConfig)
	}
	if c.PowerUpChance < 0 || c.PowerUpChance > 1 {
		return fmt.Errorf("%w: power-up chance %v outside [0,1]", ErrInvalidConfig, c.PowerUpChance)
	}
	if c.MultiplierFactor < 1 {
		return fmt.Errorf("%w: multiplier factor must be at least 1", ErrInvalidConfig)
	}
	if c.MultiplierDuration <= 0 {
		return fmt.Errorf("%w: multiplier duration must be positive", ErrInvalidConfig)
	}
	if c.BaseFoodPoints < 1 {
		return fmt.Errorf("%w: food must be worth at least 1 point", ErrInvalidConfig)
	}
	if !grid.InBounds(c.StartPosition, c.GridSize) {
		return fmt.Errorf("%w: start position %v off the board", ErrInvalidConfig, c.StartPosition)
	}
	if !c.StartDirection.Valid() {
		return fmt.Errorf("%w: bad start direction", ErrInvalidConfig)
	}
	if c.StartFood != nil && (!grid.InBounds(*c.StartFood, c.GridSize) || *c.StartFood == c.StartPosition) {
		return fmt.Errorf("%w: start food %v not on a free cell", ErrInvalidConfig, *c.StartFood)
	}
	if c.InputQueue < 1 {
		return fmt.Errorf("%w: input queue must hold at least one turn", ErrInvalidConfig)
	}
	return nil
}
