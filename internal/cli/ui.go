package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/statespace/maze"
)

var (
	colorCyan  = lipgloss.Color("36")  // headings
	colorGreen = lipgloss.Color("35")  // path
	colorRed   = lipgloss.Color("167") // goal
	colorBlue  = lipgloss.Color("75")  // start
	colorDim   = lipgloss.Color("240") // walls
)

var (
	// StyleTitle for section headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	styleWall  = lipgloss.NewStyle().Foreground(colorDim)
	stylePath  = lipgloss.NewStyle().Bold(true).Foreground(colorGreen)
	styleStart = lipgloss.NewStyle().Bold(true).Foreground(colorBlue)
	styleGoal  = lipgloss.NewStyle().Bold(true).Foreground(colorRed)
)

// renderMaze draws m one row per line. With plain set, cells are written as
// their bare characters.
func renderMaze(m *maze.Maze, plain bool) string {
	if plain {
		return m.String()
	}
	var b strings.Builder
	for r := 0; r < m.Rows(); r++ {
		for c := 0; c < m.Columns(); c++ {
			cell := m.Cell(maze.Location{Row: r, Column: c})
			b.WriteString(styleCell(cell).Render(cell.String()))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func styleCell(c maze.Cell) lipgloss.Style {
	switch c {
	case maze.Blocked:
		return styleWall
	case maze.Path:
		return stylePath
	case maze.Start:
		return styleStart
	case maze.Goal:
		return styleGoal
	default:
		return lipgloss.NewStyle()
	}
}

// title renders a heading, or returns it unchanged when plain.
func title(s string, plain bool) string {
	if plain {
		return s
	}
	return StyleTitle.Render(s)
}
