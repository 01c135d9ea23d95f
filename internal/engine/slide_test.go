package engine

import "testing"

func TestSlideLine(t *testing.T) {
	tests := []struct {
		name     string
		input    []int
		expected []int
		score    uint64
	}{
		{
			name:     "simple merge",
			input:    []int{2, 2, 0, 0},
			expected: []int{4, 0, 0, 0},
			score:    4,
		},
		{
			name:     "merge across gap",
			input:    []int{2, 0, 2, 0},
			expected: []int{4, 0, 0, 0},
			score:    4,
		},
		{
			name:     "merge with trailing tile",
			input:    []int{2, 2, 2, 0},
			expected: []int{4, 2, 0, 0},
			score:    4,
		},
		{
			name:     "two independent merges",
			input:    []int{2, 2, 4, 4},
			expected: []int{4, 8, 0, 0},
			score:    12,
		},
		{
			name:     "no merge possible",
			input:    []int{2, 4, 8, 16},
			expected: []int{2, 4, 8, 16},
			score:    0,
		},
		{
			name:     "slide without merge",
			input:    []int{0, 0, 4, 2},
			expected: []int{4, 2, 0, 0},
			score:    0,
		},
		{
			name:     "empty line",
			input:    []int{0, 0, 0, 0},
			expected: []int{0, 0, 0, 0},
			score:    0,
		},
		{
			name:     "single tile",
			input:    []int{0, 4, 0, 0},
			expected: []int{4, 0, 0, 0},
			score:    0,
		},
		{
			name:     "longer line",
			input:    []int{2, 2, 0, 4, 4, 8},
			expected: []int{4, 8, 8, 0, 0, 0},
			score:    12,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, score := slideLine(tt.input)
			if !linesEqual(result, tt.expected) {
				t.Errorf("slideLine(%v) = %v, want %v", tt.input, result, tt.expected)
			}
			if score != tt.score {
				t.Errorf("slideLine(%v) score = %d, want %d", tt.input, score, tt.score)
			}
		})
	}
}

func TestSlideLineNoReMerge(t *testing.T) {
	// [4, 4, 4, 4] must become [8, 8, 0, 0], never [16, 0, 0, 0]:
	// a merged tile cannot merge again within the same move.
	result, score := slideLine([]int{4, 4, 4, 4})

	if !linesEqual(result, []int{8, 8, 0, 0}) {
		t.Errorf("slideLine([4 4 4 4]) = %v, want [8 8 0 0]", result)
	}
	if score != 16 {
		t.Errorf("score = %d, want 16", score)
	}

	// [2, 2, 4] merges the twos into a 4 that must not absorb the
	// existing 4.
	result, score = slideLine([]int{2, 2, 4, 0})
	if !linesEqual(result, []int{4, 4, 0, 0}) {
		t.Errorf("slideLine([2 2 4 0]) = %v, want [4 4 0 0]", result)
	}
	if score != 4 {
		t.Errorf("score = %d, want 4", score)
	}
}

func TestSlideLineIdempotent(t *testing.T) {
	// Sliding an already-compacted line with no merges is a no-op.
	inputs := [][]int{
		{4, 2, 0, 0},
		{8, 4, 2, 0},
		{2, 4, 2, 4},
	}

	for _, in := range inputs {
		once, _ := slideLine(in)
		twice, score := slideLine(once)
		if !linesEqual(once, twice) {
			t.Errorf("second slide of %v changed %v to %v", in, once, twice)
		}
		if score != 0 {
			t.Errorf("second slide of %v scored %d, want 0", in, score)
		}
	}
}

func TestLineCellMapping(t *testing.T) {
	// pos 0 must be the cell at the target edge for every direction.
	tests := []struct {
		dir      Direction
		row, col int
	}{
		{DirLeft, 1, 0},
		{DirRight, 1, 3},
		{DirUp, 0, 1},
		{DirDown, 3, 1},
	}

	for _, tt := range tests {
		row, col := lineCell(tt.dir, 4, 1, 0)
		if row != tt.row || col != tt.col {
			t.Errorf("lineCell(%v, 4, 1, 0) = (%d, %d), want (%d, %d)",
				tt.dir, row, col, tt.row, tt.col)
		}
	}
}
