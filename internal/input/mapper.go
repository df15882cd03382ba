// Package input turns raw key identifiers into validated snake turns.
package input

import "go-snake/internal/grid"

// DefaultBindings maps the key names delivered by the terminal and by browser
// style collaborators onto directions.
var DefaultBindings = map[string]grid.Direction{
	"up":         grid.Up,
	"down":       grid.Down,
	"left":       grid.Left,
	"right":      grid.Right,
	"ArrowUp":    grid.Up,
	"ArrowDown":  grid.Down,
	"ArrowLeft":  grid.Left,
	"ArrowRight": grid.Right,
	"k":          grid.Up,
	"j":          grid.Down,
	"h":          grid.Left,
	"l":          grid.Right,
	"w":          grid.Up,
	"s":          grid.Down,
	"a":          grid.Left,
	"d":          grid.Right,
}

// Mapper buffers turns between ticks.
//
// With capacity 1 the newest valid turn replaces the pending one. With a larger
// capacity turns are queued and each is checked against the turn queued before
// it, so a fast "up, left" from RIGHT becomes two moves instead of one.
type Mapper struct {
	bindings map[string]grid.Direction
	capacity int
	current  grid.Direction
	pending  []grid.Direction
}

// NewMapper creates a mapper heading in start. A capacity below 1 is treated as 1.
func NewMapper(start grid.Direction, capacity int, bindings map[string]grid.Direction) *Mapper {
	if capacity < 1 {
		capacity = 1
	}
	if bindings == nil {
		bindings = DefaultBindings
	}
	return &Mapper{
		bindings: bindings,
		capacity: capacity,
		current:  start,
	}
}

// Submit maps rawKey and buffers the turn. Unknown keys are ignored.
func (m *Mapper) Submit(rawKey string) bool {
	d, ok := m.bindings[rawKey]
	if !ok {
		return false
	}
	return m.SubmitDirection(d)
}

// SubmitDirection buffers d unless it would reverse the snake. It reports
// whether the turn was accepted.
func (m *Mapper) SubmitDirection(d grid.Direction) bool {
	if !d.Valid() {
		return false
	}

	if m.capacity == 1 {
		if m.current.IsOpposite(d) {
			return false
		}
		m.pending = append(m.pending[:0], d)
		return true
	}

	prev := m.current
	if n := len(m.pending); n > 0 {
		prev = m.pending[n-1]
	}
	if prev.IsOpposite(d) || prev == d {
		return false
	}
	if len(m.pending) >= m.capacity {
		// Full queue: the newest turn replaces the last one, re-checked
		// against its own predecessor.
		before := m.current
		if n := len(m.pending); n > 1 {
			before = m.pending[n-2]
		}
		if before.IsOpposite(d) || before == d {
			return false
		}
		m.pending[len(m.pending)-1] = d
		return true
	}
	m.pending = append(m.pending, d)
	return true
}

// Next returns the direction the coming step moves in: the first buffered
// turn, or the current direction. Nothing is applied until Commit.
func (m *Mapper) Next() grid.Direction {
	if len(m.pending) > 0 {
		return m.pending[0]
	}
	return m.current
}

// Commit applies the turn returned by Next once the snake actually moved.
func (m *Mapper) Commit() grid.Direction {
	if len(m.pending) > 0 {
		m.current = m.pending[0]
		m.pending = m.pending[1:]
	}
	return m.current
}

// Discard drops the turn returned by Next without applying it, for a move
// that was blocked.
func (m *Mapper) Discard() {
	if len(m.pending) > 0 {
		m.pending = m.pending[1:]
	}
}

// Current is the direction last applied to the snake.
func (m *Mapper) Current() grid.Direction {
	return m.current
}

// Pending returns the next buffered turn, if any.
func (m *Mapper) Pending() (grid.Direction, bool) {
	if len(m.pending) == 0 {
		return m.current, false
	}
	return m.pending[0], true
}

// Queued returns a copy of every buffered turn in order.
func (m *Mapper) Queued() []grid.Direction {
	out := make([]grid.Direction, len(m.pending))
	copy(out, m.pending)
	return out
}
