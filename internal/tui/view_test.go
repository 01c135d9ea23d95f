package tui

import (
	"strings"
	"testing"
)

func TestFormatTile(t *testing.T) {
	tests := []struct {
		name  string
		value int
		want  string
	}{
		{"empty", 0, "     "},
		{"single digit", 2, "  2  "},
		{"two digits", 16, " 16  "},
		{"three digits", 128, " 128 "},
		{"four digits", 2048, "2048 "},
		{"five digits truncated", 131072, "13107"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := formatTile(tt.value)
			if got != tt.want {
				t.Errorf("formatTile(%d) = %q, want %q", tt.value, got, tt.want)
			}
			if len(got) != cellInner {
				t.Errorf("formatTile(%d) has width %d, want %d", tt.value, len(got), cellInner)
			}
		})
	}
}

func TestRenderBoardShape(t *testing.T) {
	board := [][]int{
		{2, 0},
		{0, 4},
	}

	out := renderBoard(board, NewTheme(false))

	// Two rows of tiles, three text lines each.
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 6 {
		t.Fatalf("expected 6 lines, got %d", len(lines))
	}
	if !strings.Contains(out, "2") {
		t.Error("expected tile value 2 in output")
	}
	if !strings.Contains(out, "4") {
		t.Error("expected tile value 4 in output")
	}
}
