package main

import (
	"flag"
	"fmt"
	"go-snake/internal/config"
	"go-snake/internal/difficulty"
	"go-snake/internal/game"
	"go-snake/internal/grid"
	"go-snake/internal/scoring"
	"io"
	"log"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// frameInterval is how often the driver offers the engine a tick. The engine
// decides whether enough time passed to step.
const frameInterval = 16 * time.Millisecond

type model struct {
	game      *game.Game
	keys      keyMap
	help      help.Model
	lastFrame time.Time
	quitting  bool
}

type FrameMsg time.Time

func frameCmd() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}

func initialModel(cfg config.Config) (*model, error) {
	g, err := game.NewGame(cfg, scoring.NewMemoryStorage())
	if err != nil {
		return nil, fmt.Errorf("failed to start game: %w", err)
	}

	return &model{
		game: g,
		keys: newKeyMap(),
		help: help.New(),
	}, nil
}

func (m *model) Init() tea.Cmd {
	return frameCmd()
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case FrameMsg:
		now := time.Time(msg)
		if !m.lastFrame.IsZero() {
			m.game.Tick(now.Sub(m.lastFrame))
		}
		m.lastFrame = now
		return m, frameCmd()
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Pause):
			m.game.TogglePause()
		case key.Matches(msg, m.keys.Restart):
			if err := m.game.Restart(); err != nil {
				log.Printf("restart failed: %v", err)
				m.quitting = true
				return m, tea.Quit
			}
		case key.Matches(msg, m.keys.directions()...):
			m.game.SubmitKey(msg.String())
		}
	}

	return m, nil
}

type difficultyFlag difficulty.Level

func (d *difficultyFlag) String() string {
	return difficulty.Level(*d).String()
}

func (d *difficultyFlag) Set(s string) error {
	l, err := difficulty.ParseLevel(s)
	if err != nil {
		return err
	}
	*d = difficultyFlag(l)
	return nil
}

type directionFlag grid.Direction

func (d *directionFlag) String() string {
	return grid.Direction(*d).String()
}

func (d *directionFlag) Set(s string) error {
	dir, ok := grid.ParseDirection(s)
	if !ok {
		return fmt.Errorf("invalid direction %q", s)
	}
	*d = directionFlag(dir)
	return nil
}

// fitBoard adjusts the stock layout to a board size chosen on the command line.
func fitBoard(cfg *config.Config) {
	// Grow the cap along with a larger starting board.
	if cfg.MaxGridSize < cfg.GridSize {
		cfg.MaxGridSize = cfg.GridSize
	}
	// The stock first food must sit inside the spawn band; otherwise place it
	// at random.
	if cfg.StartFood != nil && !grid.InInterior(*cfg.StartFood, cfg.GridSize) {
		cfg.StartFood = nil
	}
	cfg.StartPosition.X = min(cfg.StartPosition.X, cfg.GridSize/2)
	cfg.StartPosition.Y = min(cfg.StartPosition.Y, cfg.GridSize/2)
}

func main() {
	cfg := config.Default()

	// defaults
	level := difficultyFlag(cfg.Difficulty)
	heading := directionFlag(cfg.StartDirection)
	var debug bool

	flag.Var(&level, "difficulty", "Difficulty: easy, medium or hard")
	flag.Var(&level, "d", "Difficulty (shorthand)")
	flag.Var(&heading, "direction", "Starting direction: up, down, left or right")
	flag.IntVar(&cfg.GridSize, "grid", cfg.GridSize, "Initial grid size")
	flag.IntVar(&cfg.MaxGridSize, "max-grid", cfg.MaxGridSize, "Largest grid the board grows to")
	flag.DurationVar(&cfg.InitialSpeed, "speed", 0, "Initial tick interval (e.g. 200ms). Default is the difficulty's speed")
	flag.DurationVar(&cfg.MinSpeed, "min-speed", cfg.MinSpeed, "Fastest tick interval")
	flag.Float64Var(&cfg.PowerUpChance, "powerups", cfg.PowerUpChance, "Chance of a power-up spawning when food is eaten")
	flag.IntVar(&cfg.InputQueue, "queue", cfg.InputQueue, "Turns buffered between ticks (1 keeps only the newest)")
	flag.Int64Var(&cfg.Seed, "seed", 0, "Random seed (0 seeds from the clock)")
	flag.BoolVar(&debug, "debug", false, "Write a debug log to snake-debug.log")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options]\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nOptions:\n")
		flag.PrintDefaults()
	}

	flag.Parse()
	cfg.Difficulty = difficulty.Level(level)
	cfg.StartDirection = grid.Direction(heading)
	fitBoard(&cfg)

	if debug {
		f, err := tea.LogToFile("snake-debug.log", "snake")
		if err != nil {
			fmt.Printf("Error opening debug log: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	m, err := initialModel(cfg)
	if err != nil {
		fmt.Printf("Error initializing model: %v\n", err)
		os.Exit(1)
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error starting the program: %v\n", err)
		os.Exit(1)
	}

	snap := m.game.Snapshot()
	fmt.Printf("Score: %d | High score: %d | Games: %d\n", snap.Score, snap.HighScore, snap.Games)
}
