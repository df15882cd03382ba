package state

import (
	"context"
	"go-snake/internal/grid"
)

func (s *State) Phase() Phase {
	return Phase(s.FSM.Current())
}

func (s *State) IsRunning() bool {
	return s.Phase() == Running
}

func (s *State) IsOver() bool {
	p := s.Phase()
	return p == Over || p == Won
}

// Fire sends event to the phase machine. Events the current phase does not
// accept are dropped; it reports whether the phase changed.
func (s *State) Fire(event string, args ...interface{}) bool {
	if !s.FSM.Can(event) {
		return false
	}
	return s.FSM.Event(context.Background(), event, args...) == nil
}

func (s *State) Head() grid.Coordinate {
	return s.Snake[0]
}

// Occupied returns every cell a new item must not be placed on: the snake,
// the food and the power-up.
func (s *State) Occupied() grid.Set {
	occ := grid.NewSet(s.Snake)
	occ.Add(s.Food)
	if s.PowerUp != nil {
		occ.Add(s.PowerUp.Position)
	}
	return occ
}
