package tui

import (
	"fmt"
	"strings"
)

// Cell drawing pieces. Each tile renders as a 3-line box, matching the
// classic terminal 2048 look.
const (
	cellTop    = "┌─────┐ "
	cellBottom = "└─────┘ "
	cellInner  = 5 // characters inside the vertical borders
)

// renderBoard draws the grid as rows of boxed tiles, one style per value.
func renderBoard(board [][]int, theme Theme) string {
	var sb strings.Builder

	for _, row := range board {
		var top, mid, bottom strings.Builder
		for _, v := range row {
			style := theme.Tile(v)
			top.WriteString(style.Render(cellTop))
			mid.WriteString(style.Render(fmt.Sprintf("│%s│ ", formatTile(v))))
			bottom.WriteString(style.Render(cellBottom))
		}
		sb.WriteString(top.String())
		sb.WriteByte('\n')
		sb.WriteString(mid.String())
		sb.WriteByte('\n')
		sb.WriteString(bottom.String())
		sb.WriteByte('\n')
	}

	return sb.String()
}

// formatTile centers a tile value in the cell interior; empty cells
// render as blank space.
func formatTile(v int) string {
	if v == 0 {
		return strings.Repeat(" ", cellInner)
	}

	s := fmt.Sprintf("%d", v)
	if len(s) >= cellInner {
		return s[:cellInner]
	}

	padLeft := (cellInner - len(s)) / 2
	padRight := cellInner - len(s) - padLeft
	return strings.Repeat(" ", padLeft) + s + strings.Repeat(" ", padRight)
}
