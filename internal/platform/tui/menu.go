package tui

import (
	"fmt"
	"strings"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-sweeper/internal/config"
	"github.com/vovakirdan/tui-sweeper/internal/core"
)

// MenuModel is the Bubble Tea model for the difficulty picker.
type MenuModel struct {
	presets        config.Config
	cursor         int
	width          int
	height         int
	keyMapper      *KeyMapper
	quitting       bool
	selected       *config.Preset
	openScoreboard bool // True if user pressed Tab for the scoreboard
}

// NewMenuModel creates a new difficulty menu model.
func NewMenuModel(presets config.Config, cfg core.RuntimeConfig) MenuModel {
	return MenuModel{
		presets:   presets,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKeyToMenuAction(msg)
	levels := config.Presets()

	switch action {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(levels)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		selected := levels[m.cursor]
		m.selected = &selected
		return m, tea.Quit // Exit menu to start game

	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit // Exit menu to show scoreboard
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("S W E E P E R", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select difficulty", m.width))
	b.WriteString("\n\n")

	for i, p := range config.Presets() {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}

		board := m.presets.Board(p)
		line := fmt.Sprintf("%s%-13s %dx%d, %d mines, %d treasures",
			cursor, p.Title(), board.Rows, board.Cols, board.Mines, board.Treasures)
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Select  |  Tab: Scores  |  Q: Quit"
	b.WriteString(centerText(controls, m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the chosen difficulty, or nil if none selected.
func (m MenuModel) Selected() *config.Preset {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested the scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// centerText centers text within given width. Width is measured in runes so
// non-ASCII labels keep their alignment.
func centerText(text string, width int) string {
	n := utf8.RuneCountInString(text)
	if n >= width {
		return text
	}
	padding := (width - n) / 2
	return strings.Repeat(" ", padding) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Preset          config.Preset
	WantsScoreboard bool
	Quit            bool
}

// RunMenu runs the difficulty menu and returns the selection result.
func RunMenu(presets config.Config, cfg core.RuntimeConfig) (MenuResult, error) {
	model := NewMenuModel(presets, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Quit: true}, nil
	}

	if m.WantsScoreboard() {
		return MenuResult{WantsScoreboard: true}, nil
	}
	if m.IsQuitting() || m.Selected() == nil {
		return MenuResult{Quit: true}, nil
	}

	return MenuResult{Preset: *m.Selected()}, nil
}
