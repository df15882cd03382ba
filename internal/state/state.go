// Package state holds the GameState record and the phase machine that governs
// which entry points have an effect.
package state

import (
	"context"
	"go-snake/internal/grid"
	"go-snake/internal/input"
	"go-snake/internal/scoring"
	"go-snake/internal/spawn"
	"log"
	"time"

	"github.com/looplab/fsm"
)

// Phase is the coarse state of a game.
type Phase string

const (
	Running Phase = "running"
	Paused  Phase = "paused"
	Over    Phase = "over"
	Won     Phase = "won"
)

// Phase machine events.
const (
	EventPause   = "pause"
	EventResume  = "resume"
	EventCollide = "collide"
	EventFill    = "fill"
)

// State is the canonical state of one game. It is replaced wholesale on
// restart.
type State struct {
	Snake    []grid.Coordinate // head first
	Food     grid.Coordinate
	PowerUp  *spawn.PowerUp
	Input    *input.Mapper
	Score    *scoring.Scoring
	Speed    time.Duration // current tick interval
	GridSize int
	Shield   bool

	Clock    time.Duration // simulated time, frozen outside Running
	LastStep time.Duration
	Steps    int

	FSM *fsm.FSM
}

func NewState(
	start grid.Coordinate,
	food grid.Coordinate,
	gridSize int,
	speed time.Duration,
	mapper *input.Mapper,
	score *scoring.Scoring,
) *State {
	s := &State{
		Snake:    []grid.Coordinate{start},
		Food:     food,
		Input:    mapper,
		Score:    score,
		Speed:    speed,
		GridSize: gridSize,
	}

	s.FSM = fsm.NewFSM(
		string(Running),
		getStateTransitions(),
		getStateCallbacks(s),
	)

	return s
}

func getStateTransitions() []fsm.EventDesc {
	return fsm.Events{
		{Name: EventPause, Src: []string{string(Running)}, Dst: string(Paused)},
		{Name: EventResume, Src: []string{string(Paused)}, Dst: string(Running)},

		// Terminal phases, left only by replacing the state.
		{Name: EventCollide, Src: []string{string(Running)}, Dst: string(Over)},
		{Name: EventFill, Src: []string{string(Running)}, Dst: string(Won)},
	}
}

// Terminal events carry the wall-clock time the game ended as their argument.
func getStateCallbacks(s *State) map[string]fsm.Callback {
	finish := func(outcome string) fsm.Callback {
		return func(_ context.Context, e *fsm.Event) {
			at := time.Now()
			if len(e.Args) > 0 {
				if t, ok := e.Args[0].(time.Time); ok {
					at = t
				}
			}
			if err := s.Score.Finish(outcome, len(s.Snake), at); err != nil {
				log.Printf("saving score: %v", err)
			}
		}
	}

	return fsm.Callbacks{
		"enter_" + string(Over): finish(scoring.OutcomeCollision),
		"enter_" + string(Won):  finish(scoring.OutcomeBoardFull),
		"enter_state": func(_ context.Context, e *fsm.Event) {
			log.Printf("phase %s -> %s (score %d, length %d)", e.Src, e.Dst, s.Score.CurrentScore, len(s.Snake))
		},
	}
}
