// Package engine implements the rules of the sliding-tile merge puzzle:
// the four directional moves, scoring, bounded undo history, and win/loss
// detection. It drives the grid model and is the only writer of game
// state; the UI layer queries read-only snapshots.
package engine

import (
	"math/rand"

	"github.com/vovakirdan/tui-2048/internal/grid"
)

// DefaultWinTile is the tile value that ends the game with a win.
const DefaultWinTile = 2048

// DefaultSpawn4Prob is the chance a spawned tile is a 4 instead of a 2.
const DefaultSpawn4Prob = 0.1

// initialSpawns is the number of tiles placed on a fresh board.
const initialSpawns = 2

// GameStatus describes the state of a session. It is derived from grid
// contents on demand, never cached, so it stays correct across undo.
type GameStatus int

const (
	StatusInProgress GameStatus = iota
	StatusWon
	StatusLost
)

// String returns a human-readable name for the status.
func (s GameStatus) String() string {
	switch s {
	case StatusInProgress:
		return "InProgress"
	case StatusWon:
		return "Won"
	case StatusLost:
		return "Lost"
	default:
		return "Unknown"
	}
}

// MoveResult reports the outcome of a single ApplyMove call.
type MoveResult struct {
	Changed    bool   // whether any tile moved or merged
	ScoreDelta uint64 // sum of values of tiles created by merges
}

// Options configures a game session.
type Options struct {
	Size         int     // board dimension, default 4
	WinTile      int     // tile value that wins the game, default 2048
	Spawn4Prob   float64 // probability a spawned tile is a 4, default 0.1
	HistoryLimit int     // max undo snapshots, default 10
}

// DefaultOptions returns the standard 2048 rules.
func DefaultOptions() Options {
	return Options{
		Size:         grid.DefaultSize,
		WinTile:      DefaultWinTile,
		Spawn4Prob:   DefaultSpawn4Prob,
		HistoryLimit: DefaultHistoryLimit,
	}
}

// normalize fills in zero values with defaults.
func (o Options) normalize() Options {
	if o.Size < 2 {
		o.Size = grid.DefaultSize
	}
	if o.WinTile <= 0 {
		o.WinTile = DefaultWinTile
	}
	if o.Spawn4Prob < 0 || o.Spawn4Prob > 1 {
		o.Spawn4Prob = DefaultSpawn4Prob
	}
	if o.HistoryLimit <= 0 {
		o.HistoryLimit = DefaultHistoryLimit
	}
	return o
}

// Engine owns the grid and the undo history for one game session.
// It is single-threaded: every operation runs to completion before
// returning and the caller invokes it one action at a time.
type Engine struct {
	grid    *grid.Grid
	score   uint64
	rng     *rand.Rand
	history *history
	opts    Options
}

// New creates an engine with a fresh board and two spawned tiles.
// The randomness source is injected so tests can seed it.
func New(opts Options, rng *rand.Rand) *Engine {
	opts = opts.normalize()
	e := &Engine{
		grid:    grid.New(opts.Size),
		rng:     rng,
		history: newHistory(opts.HistoryLimit),
		opts:    opts,
	}
	for range initialSpawns {
		e.Spawn()
	}
	return e
}

// ApplyMove slides and merges every line in the given direction.
// The pre-move state is committed to the undo history only when the move
// actually changed the board; a no-op move leaves score, grid, and
// history untouched. Forward moves are ignored once the game is over.
func (e *Engine) ApplyMove(dir Direction) MoveResult {
	if e.Status() != StatusInProgress {
		return MoveResult{}
	}

	snap := snapshot{grid: e.grid.Clone(), score: e.score}

	size := e.grid.Size()
	changed := false
	var delta uint64

	in := make([]int, size)
	for line := range size {
		for pos := range size {
			row, col := lineCell(dir, size, line, pos)
			in[pos], _ = e.grid.Get(row, col)
		}

		out, gained := slideLine(in)
		delta += gained
		if !linesEqual(in, out) {
			changed = true
		}

		for pos := range size {
			row, col := lineCell(dir, size, line, pos)
			e.grid.Set(row, col, out[pos])
		}
	}

	if !changed {
		return MoveResult{}
	}

	e.score += delta
	e.history.Push(snap)
	return MoveResult{Changed: true, ScoreDelta: delta}
}

// Spawn places one random tile. The caller is expected to invoke it
// exactly once after a changed move. Returns false if the board is full.
func (e *Engine) Spawn() bool {
	return e.grid.SpawnRandom(e.rng, e.opts.Spawn4Prob)
}

// Undo restores the most recent snapshot of grid and score. Returns
// false (leaving the game untouched) when the history is empty. Undo
// never spawns a tile and never pushes a new history entry.
func (e *Engine) Undo() bool {
	snap, ok := e.history.Pop()
	if !ok {
		return false
	}
	e.grid = snap.grid
	e.score = snap.score
	return true
}

// Status recomputes the game status from the current grid.
func (e *Engine) Status() GameStatus {
	if e.grid.MaxTile() >= e.opts.WinTile {
		return StatusWon
	}
	if e.grid.IsFull() && !e.hasAdjacentEqual() {
		return StatusLost
	}
	return StatusInProgress
}

// hasAdjacentEqual reports whether any two edge-sharing cells hold equal
// values. Checking right and down neighbors covers all four directions.
func (e *Engine) hasAdjacentEqual() bool {
	size := e.grid.Size()
	for row := range size {
		for col := range size {
			v, _ := e.grid.Get(row, col)
			if col < size-1 {
				if right, _ := e.grid.Get(row, col+1); right == v {
					return true
				}
			}
			if row < size-1 {
				if below, _ := e.grid.Get(row+1, col); below == v {
					return true
				}
			}
		}
	}
	return false
}

// Restart clears the board, score, and history, then spawns the initial
// tiles for a new session.
func (e *Engine) Restart() {
	e.grid.Reset()
	e.score = 0
	e.history.Clear()
	for range initialSpawns {
		e.Spawn()
	}
}

// Score returns the current score.
func (e *Engine) Score() uint64 {
	return e.score
}

// Board returns a read-only copy of the grid contents.
func (e *Engine) Board() [][]int {
	return e.grid.Rows()
}

// Size returns the board dimension.
func (e *Engine) Size() int {
	return e.grid.Size()
}

// MaxTile returns the highest tile on the board.
func (e *Engine) MaxTile() int {
	return e.grid.MaxTile()
}

// WinTile returns the configured winning tile value.
func (e *Engine) WinTile() int {
	return e.opts.WinTile
}

// CanUndo reports whether an undo snapshot is available.
func (e *Engine) CanUndo() bool {
	return e.history.Len() > 0
}
