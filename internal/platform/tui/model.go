package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-sweeper/internal/core"
	"github.com/vovakirdan/tui-sweeper/internal/storage"
	"github.com/vovakirdan/tui-sweeper/internal/sweeper"
)

// GameOptions configures a game model.
type GameOptions struct {
	// NewBoard produces a fresh board. Called once at startup and again on
	// every restart.
	NewBoard func() (*sweeper.Grid, error)

	// Store persists finished games. May be nil to skip persistence.
	Store *storage.Store

	Config core.RuntimeConfig

	// Difficulty and BoardSource are recorded with saved results.
	Difficulty  string
	BoardSource string
}

// GameModel is the Bubble Tea model for one sweeper game.
type GameModel struct {
	opts        GameOptions
	session     *sweeper.Session
	screen      *core.Screen
	keyMapper   *KeyMapper
	cursorRow   int
	cursorCol   int
	quitting    bool
	backToMenu  bool
	resultSaved bool
}

// NewGameModel creates a game model and starts the first session.
func NewGameModel(opts GameOptions) (GameModel, error) {
	grid, err := opts.NewBoard()
	if err != nil {
		return GameModel{}, err
	}

	return GameModel{
		opts:      opts,
		session:   sweeper.NewSession(grid),
		screen:    core.NewScreen(opts.Config.ScreenW, opts.Config.ScreenH),
		keyMapper: NewKeyMapper(),
	}, nil
}

// Init starts the timer tick loop.
func (m GameModel) Init() tea.Cmd {
	return tickCmd()
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.opts.Config.ScreenW = msg.Width
		m.opts.Config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		// Ticks only refresh the elapsed-time display.
		return m, tickCmd()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	grid := m.session.Grid()

	switch action {
	case core.ActionUp:
		if m.cursorRow > 0 {
			m.cursorRow--
		}
	case core.ActionDown:
		if m.cursorRow < grid.Rows-1 {
			m.cursorRow++
		}
	case core.ActionLeft:
		if m.cursorCol > 0 {
			m.cursorCol--
		}
	case core.ActionRight:
		if m.cursorCol < grid.Cols-1 {
			m.cursorCol++
		}

	case core.ActionReveal:
		// Reveal errors (flagged or already revealed cell, finished game)
		// leave the board untouched, so they are safe to ignore here.
		//nolint:errcheck
		m.session.Reveal(m.cursorRow, m.cursorCol)
		m.saveResult()

	case core.ActionFlag:
		//nolint:errcheck
		m.session.ToggleFlag(m.cursorRow, m.cursorCol)

	case core.ActionRestart:
		if m.session.Status() != sweeper.StatusInProgress {
			return m.restart()
		}

	case core.ActionBack:
		m.backToMenu = true
		return m, nil
	}

	return m, nil
}

// restart starts a fresh session on a new board.
func (m GameModel) restart() (tea.Model, tea.Cmd) {
	grid, err := m.opts.NewBoard()
	if err != nil {
		// Keep the finished board visible rather than crash mid-session.
		return m, nil
	}

	m.session = sweeper.NewSession(grid)
	m.cursorRow = 0
	m.cursorCol = 0
	m.resultSaved = false
	return m, nil
}

// saveResult persists the outcome once the game reaches a terminal state.
func (m *GameModel) saveResult() {
	status := m.session.Status()
	if status == sweeper.StatusInProgress || m.resultSaved {
		return
	}
	m.resultSaved = true

	if m.opts.Store == nil {
		return
	}

	outcome := "lost"
	if status == sweeper.StatusWon {
		outcome = "won"
	}

	snap := m.session.Snapshot()
	//nolint:errcheck // Best-effort save, game continues regardless
	m.opts.Store.SaveResult(storage.Result{
		Difficulty:    m.opts.Difficulty,
		Outcome:       outcome,
		DurationSecs:  snap.ElapsedSecs,
		CellsRevealed: snap.RevealedSafe,
		BoardSource:   m.opts.BoardSource,
	})
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	snap := m.session.Snapshot()
	title := "S W E E P E R"
	if m.opts.Difficulty != "" {
		title = "S W E E P E R  -  " + m.opts.Difficulty
	}
	drawBoard(m.screen, &snap, m.cursorRow, m.cursorCol, title)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program for a single game.
func Run(opts GameOptions) error {
	model, err := NewGameModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err = p.Run()
	return err
}
