// Package game is the simulation engine: it owns the GameState, advances it
// one step per tick interval and exposes read-only snapshots for rendering.
package game

import (
	"fmt"
	"go-snake/internal/collision"
	"go-snake/internal/config"
	"go-snake/internal/difficulty"
	"go-snake/internal/grid"
	"go-snake/internal/input"
	"go-snake/internal/scoring"
	"go-snake/internal/spawn"
	"go-snake/internal/state"
	"log"
	"math/rand"
	"time"
)

// Game encapsulates the core game logic, independent of the UI. All mutation
// goes through Tick and the input/pause/restart entry points, which must be
// called from a single goroutine.
type Game struct {
	State *state.State

	config     config.Config
	storage    scoring.ScoreStorage
	spawner    *spawn.Spawner
	escalation *difficulty.Controller
	now        func() time.Time

	// Games counts games started in this session, restarts included.
	Games int
}

// NewGame validates cfg and starts the first game. Finished games are
// recorded in storage.
func NewGame(cfg config.Config, storage scoring.ScoreStorage) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	g := &Game{
		config:     cfg,
		storage:    storage,
		spawner:    spawn.NewSpawner(rng, cfg.SpawnAttempts, cfg.PowerUpChance),
		escalation: difficulty.NewController(cfg.Rules()),
		now:        time.Now,
	}
	if err := g.newState(0); err != nil {
		return nil, err
	}
	return g, nil
}

// newState replaces the state with a fresh game. carried is the high score
// to keep.
func (g *Game) newState(carried int) error {
	cfg := g.config
	sc, err := scoring.InitScoring(cfg.Difficulty.String(), cfg.Settings().Multiplier, cfg.BaseFoodPoints, carried, g.storage)
	if err != nil {
		return fmt.Errorf("starting game: %w", err)
	}

	var food grid.Coordinate
	if cfg.StartFood != nil {
		food = *cfg.StartFood
	} else {
		var ok bool
		food, ok = g.spawner.PlaceFood(grid.NewSet([]grid.Coordinate{cfg.StartPosition}), cfg.GridSize)
		if !ok {
			return fmt.Errorf("starting game: no free cell for food on a %dx%d board", cfg.GridSize, cfg.GridSize)
		}
	}

	g.escalation.Reset()
	g.State = state.NewState(
		cfg.StartPosition,
		food,
		cfg.GridSize,
		cfg.StartSpeed(),
		input.NewMapper(cfg.StartDirection, cfg.InputQueue, nil),
		sc,
	)
	g.Games++
	return nil
}

// Tick advances simulated time by dt, the wall time since the previous call.
// A step is applied once a full tick interval has passed since the last one;
// at most one step runs per call. It reports whether a step ran.
func (g *Game) Tick(dt time.Duration) bool {
	s := g.State
	if !s.IsRunning() || dt < 0 {
		return false
	}

	s.Clock += dt
	if s.Score.ExpireMultiplier(s.Clock) {
		log.Printf("score multiplier expired at %v", s.Clock)
	}

	if s.Clock-s.LastStep < s.Speed {
		return false
	}
	s.LastStep = s.Clock
	g.step()
	return true
}

func (g *Game) step() {
	s := g.State
	s.Steps++

	dir := s.Input.Next()
	newHead := grid.Advance(s.Head(), dir, s.GridSize)

	if collision.SelfCollision(s.Snake, newHead) {
		if s.Shield {
			// The charge absorbs the hit; the snake holds its position and
			// keeps its last applied direction.
			s.Shield = false
			s.Input.Discard()
			log.Printf("shield absorbed collision at %v", newHead)
			return
		}
		s.Fire(state.EventCollide, g.now())
		return
	}

	s.Input.Commit()
	s.Snake = append([]grid.Coordinate{newHead}, s.Snake...)

	if collision.FoodPickup(newHead, s.Food) {
		if !g.eat() {
			return
		}
	} else {
		s.Snake = s.Snake[:len(s.Snake)-1]
	}

	if collision.PowerUpPickup(newHead, s.PowerUp) {
		g.applyPowerUp(*s.PowerUp)
		s.PowerUp = nil
	}
}

// eat scores the food and restocks the board. It returns false when the game
// ended because no free cell is left.
func (g *Game) eat() bool {
	s := g.State
	s.Score.ScoreFood()

	food, ok := g.spawner.PlaceFood(s.Occupied(), s.GridSize)
	if !ok {
		s.Fire(state.EventFill, g.now())
		return false
	}
	s.Food = food

	if s.PowerUp == nil {
		s.PowerUp = g.spawner.MaybeSpawnPowerUp(s.Occupied(), s.GridSize)
	}

	speed, size := g.escalation.OnScored(s.Score.CurrentScore, s.Speed, s.GridSize)
	if speed != s.Speed || size != s.GridSize {
		log.Printf("score %d: interval %v -> %v, grid %d -> %d", s.Score.CurrentScore, s.Speed, speed, s.GridSize, size)
	}
	s.Speed, s.GridSize = speed, size
	return true
}

func (g *Game) applyPowerUp(p spawn.PowerUp) {
	s := g.State
	cfg := g.config

	switch p.Kind {
	case spawn.Speed:
		s.Speed = difficulty.SpeedUp(s.Speed, cfg.PowerUpSpeedStep, cfg.MinSpeed)
		s.Score.CountPowerUp()
	case spawn.Multiplier:
		s.Score.ApplyMultiplier(cfg.MultiplierFactor, s.Clock, cfg.MultiplierDuration)
	case spawn.Shield:
		s.Shield = true
		s.Score.CountPowerUp()
	}
	log.Printf("picked up %v at %v", p.Kind, p.Position)
}

// SubmitKey buffers the turn bound to rawKey. Unknown keys and reversals are
// ignored. Input is accepted in every phase but only applied by a running
// step.
func (g *Game) SubmitKey(rawKey string) bool {
	return g.State.Input.Submit(rawKey)
}

// SubmitDirection buffers d, rejecting reversals.
func (g *Game) SubmitDirection(d grid.Direction) bool {
	return g.State.Input.SubmitDirection(d)
}

// TogglePause flips between running and paused. Finished games ignore it.
func (g *Game) TogglePause() {
	if !g.Pause() {
		g.Resume()
	}
}

func (g *Game) Pause() bool {
	return g.State.Fire(state.EventPause)
}

func (g *Game) Resume() bool {
	return g.State.Fire(state.EventResume)
}

// Restart discards the current game and starts a fresh one, keeping only the
// high score.
func (g *Game) Restart() error {
	if sc := g.State.Score; !sc.Finished() {
		log.Printf("abandoning game %d at score %d", g.Games, sc.CurrentScore)
	}
	return g.newState(g.State.Score.HighScore())
}

func (g *Game) Phase() state.Phase {
	return g.State.Phase()
}

// Config returns the settings the game was created with.
func (g *Game) Config() config.Config {
	return g.config
}
