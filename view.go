package main

import (
	"fmt"
	"go-snake/internal/game"
	"go-snake/internal/grid"
	"go-snake/internal/spawn"
	"go-snake/internal/state"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

var (
	redStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))  // Game over
	greenStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10")) // Snake body, board cleared
	scoreStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11")) // HUD
	headStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	foodStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	emptyStyle   = lipgloss.NewStyle().Faint(true)
	boldStyle    = lipgloss.NewStyle().Bold(true)
	boardStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("2"))
	shieldBorder = lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).BorderForeground(lipgloss.Color("12"))

	powerUpStyles = map[spawn.Kind]lipgloss.Style{
		spawn.Speed:      lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
		spawn.Multiplier: lipgloss.NewStyle().Foreground(lipgloss.Color("13")).Bold(true),
		spawn.Shield:     lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true),
	}
)

// Every cell is two columns wide so the board looks square.
const (
	cellEmpty = ". "
	cellHead  = "@@"
	cellBody  = "[]"
	cellFood  = "()"
)

var powerUpGlyphs = map[spawn.Kind]string{
	spawn.Speed:      ">>",
	spawn.Multiplier: "x2",
	spawn.Shield:     "<>",
}

// renderBoard draws the grid for one snapshot.
func renderBoard(snap game.Snapshot) string {
	cells := make(map[grid.Coordinate]string, len(snap.Snake)+2)
	cells[snap.Food] = foodStyle.Render(cellFood)
	if p := snap.PowerUp; p != nil {
		cells[p.Position] = powerUpStyles[p.Kind].Render(powerUpGlyphs[p.Kind])
	}
	for i := len(snap.Snake) - 1; i >= 0; i-- {
		if i == 0 {
			cells[snap.Snake[i]] = headStyle.Render(cellHead)
		} else {
			cells[snap.Snake[i]] = greenStyle.Render(cellBody)
		}
	}

	var b strings.Builder
	for y := 0; y < snap.GridSize; y++ {
		if y > 0 {
			b.WriteString("\n")
		}
		for x := 0; x < snap.GridSize; x++ {
			if cell, ok := cells[grid.Coordinate{X: x, Y: y}]; ok {
				b.WriteString(cell)
			} else {
				b.WriteString(emptyStyle.Render(cellEmpty))
			}
		}
	}

	style := boardStyle
	if snap.Shield {
		style = shieldBorder
	}
	return style.Render(b.String())
}

func renderStatus(snap game.Snapshot) string {
	statusLine := "SCORE: " + fmt.Sprint(snap.Score) + " | " +
		"HIGH: " + fmt.Sprint(snap.HighScore) + " | " +
		"SPEED: " + fmt.Sprint(snap.Speed.Milliseconds()) + "ms | " +
		"LEVEL: " + snap.Difficulty.String()

	if snap.ScoreMultiplier > 1 {
		statusLine += fmt.Sprintf(" | x%d (%ds)", snap.ScoreMultiplier, secondsLeft(snap.MultiplierRemaining))
	}
	if snap.Shield {
		statusLine += " | SHIELD"
	}
	return scoreStyle.Render(statusLine)
}

var powerUpNames = map[spawn.Kind]string{
	spawn.Speed:      "faster",
	spawn.Multiplier: "double points",
	spawn.Shield:     "shield",
}

func renderLegend() string {
	parts := make([]string, 0, len(spawn.Kinds))
	for _, k := range spawn.Kinds {
		parts = append(parts, powerUpStyles[k].Render(powerUpGlyphs[k])+" "+powerUpNames[k])
	}
	return emptyStyle.Render("power-ups: ") + strings.Join(parts, "  ")
}

func secondsLeft(d time.Duration) int {
	return int((d + time.Second - 1) / time.Second)
}

func (m *model) View() string {
	if m.quitting {
		return ""
	}
	snap := m.game.Snapshot()

	display := boldStyle.Render("SNAKE") + "\n" +
		renderBoard(snap) + "\n" +
		renderStatus(snap) + "\n"
	if m.game.Config().PowerUpChance > 0 {
		display += renderLegend() + "\n"
	}

	switch snap.Phase {
	case state.Paused:
		display += "\n" + boldStyle.Render("PAUSED") + " - press space to resume\n"
	case state.Over:
		display += "\n" + redStyle.Render(fmt.Sprintf("Game over! Final score: %d", snap.Score)) + "\n"
		display += m.renderTopScores(snap)
	case state.Won:
		display += "\n" + greenStyle.Render(fmt.Sprintf("Board cleared! Final score: %d", snap.Score)) + "\n"
		display += m.renderTopScores(snap)
	}

	return display + "\n" + m.help.View(m.keys)
}

func (m *model) renderTopScores(snap game.Snapshot) string {
	display := ""
	if snap.GotHighScore {
		display += "You got a high score!\n"
	}
	display += "Top scores this session:"
	for _, entry := range m.game.TopScores(5) {
		display += fmt.Sprintf("\n  * %d (length %d)", entry.Score, entry.Length)
	}
	return display + "\nPress r to play again.\n"
}
