// Package tui provides the Bubble Tea front end for the game: key
// handling, board rendering, and the high-score screen. The game is
// turn-based, so the model is purely event-driven — every key press maps
// to exactly one engine call, and the engine runs to completion before
// the next event is read.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-2048/internal/engine"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

// Model is the Bubble Tea model for a game session.
type Model struct {
	eng   *engine.Engine
	store *storage.Store
	theme Theme
	keys  KeyMap
	help  help.Model

	width     int
	height    int
	highScore uint64
	statusMsg string
	quitting  bool

	// scoreSaved guards against recording the same game over twice.
	scoreSaved bool
}

// NewModel creates a game model. store may be nil; the game then runs
// without score persistence.
func NewModel(eng *engine.Engine, store *storage.Store, colored bool) Model {
	m := Model{
		eng:   eng,
		store: store,
		theme: NewTheme(colored),
		keys:  DefaultKeyMap(),
		help:  help.New(),
	}

	if store != nil {
		if high, err := store.HighScore(); err == nil {
			m.highScore = high
		}
	}

	return m
}

// Init implements tea.Model. The game waits for input; there is no tick.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

// handleKey maps a key press to one engine operation.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.saveFinishedGame()
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Undo):
		if m.eng.Undo() {
			m.statusMsg = ""
			// The restored position may be played out again.
			m.scoreSaved = false
		} else {
			m.statusMsg = "Nothing to undo"
		}
		return m, nil

	case key.Matches(msg, m.keys.Restart):
		m.eng.Restart()
		m.statusMsg = ""
		m.scoreSaved = false
		return m, nil

	case key.Matches(msg, m.keys.Up):
		return m.applyMove(engine.DirUp)
	case key.Matches(msg, m.keys.Down):
		return m.applyMove(engine.DirDown)
	case key.Matches(msg, m.keys.Left):
		return m.applyMove(engine.DirLeft)
	case key.Matches(msg, m.keys.Right):
		return m.applyMove(engine.DirRight)
	}

	return m, nil
}

// applyMove runs one move and, if the board changed, spawns exactly one
// new tile.
func (m Model) applyMove(dir engine.Direction) (tea.Model, tea.Cmd) {
	m.statusMsg = ""

	res := m.eng.ApplyMove(dir)
	if res.Changed {
		m.eng.Spawn()
	}

	if m.eng.Score() > m.highScore {
		m.highScore = m.eng.Score()
	}

	if m.eng.Status() != engine.StatusInProgress {
		m.saveFinishedGame()
	}

	return m, nil
}

// saveFinishedGame records a terminal game once. Best-effort: a failed
// save never interrupts play.
func (m *Model) saveFinishedGame() {
	if m.scoreSaved || m.store == nil {
		return
	}
	status := m.eng.Status()
	if status == engine.StatusInProgress || m.eng.Score() == 0 {
		return
	}

	//nolint:errcheck // Best-effort save, game continues regardless
	m.store.SaveScore(storage.ScoreEntry{
		Score:     m.eng.Score(),
		MaxTile:   m.eng.MaxTile(),
		BoardSize: m.eng.Size(),
		Won:       status == engine.StatusWon,
	})
	m.scoreSaved = true
}

// View renders the current state.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var sb strings.Builder

	sb.WriteString(m.theme.Title.Render("2048"))
	sb.WriteByte('\n')
	sb.WriteString(m.theme.Score.Render(fmt.Sprintf("Score: %d", m.eng.Score())))
	if m.highScore > 0 {
		sb.WriteString(m.theme.Status.Render(fmt.Sprintf("   Best: %d", m.highScore)))
	}
	sb.WriteString("\n\n")

	sb.WriteString(renderBoard(m.eng.Board(), m.theme))

	if overlay := m.overlayText(); overlay != "" {
		sb.WriteByte('\n')
		sb.WriteString(m.theme.Overlay.Render(overlay))
		sb.WriteByte('\n')
	}

	if m.statusMsg != "" {
		sb.WriteByte('\n')
		sb.WriteString(m.theme.Status.Render(m.statusMsg))
		sb.WriteByte('\n')
	}

	sb.WriteByte('\n')
	sb.WriteString(m.theme.Help.Render(m.help.View(m.keys)))

	return sb.String()
}

// overlayText returns the terminal-state banner, if any.
func (m Model) overlayText() string {
	switch m.eng.Status() {
	case engine.StatusWon:
		return fmt.Sprintf("You reached %d! Final score: %d — press r to restart, u to keep undoing, q to quit",
			m.eng.WinTile(), m.eng.Score())
	case engine.StatusLost:
		return fmt.Sprintf("Game over! Final score: %d — press r to restart, u to undo, q to quit",
			m.eng.Score())
	default:
		return ""
	}
}

// Run starts the Bubble Tea program for a game session.
func Run(eng *engine.Engine, store *storage.Store, colored bool) error {
	model := NewModel(eng, store, colored)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
