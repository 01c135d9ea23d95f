package engine

// Direction represents a move direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "Up"
	case DirDown:
		return "Down"
	case DirLeft:
		return "Left"
	case DirRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// lineCell maps a (line, pos) pair to board coordinates for the given
// direction. Lines are rows for horizontal moves and columns for vertical
// moves; pos 0 is the cell at the target edge. All four directions share
// one slide algorithm through this mapping, so merge semantics cannot
// diverge between them.
func lineCell(d Direction, size, line, pos int) (row, col int) {
	switch d {
	case DirLeft:
		return line, pos
	case DirRight:
		return line, size - 1 - pos
	case DirUp:
		return pos, line
	default: // DirDown
		return size - 1 - pos, line
	}
}
