package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/eggcatch/internal/core"
	"github.com/vovakirdan/eggcatch/internal/registry"
)

type screen int

const (
	screenMenu screen = iota
	screenGame
	screenInstructions
	screenScoreboard
)

// SessionModel manages the full session flow: menu -> screen -> menu.
// It is the top-level model for SSH sessions and the local menu command.
type SessionModel struct {
	opts     Options
	config   core.RuntimeConfig
	current  screen
	menu     MenuModel
	game     *Model
	help     InstructionsModel
	board    ScoreboardModel
	quitting bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(cfg core.RuntimeConfig, opts Options) SessionModel {
	return SessionModel{
		opts:   opts,
		config: cfg,
		menu:   NewMenuModel(opts.Store, cfg),
	}
}

func (m SessionModel) scoreSource() ScoreSource {
	// A nil *Store must not become a non-nil interface
	if m.opts.Store == nil {
		return nil
	}
	return m.opts.Store
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.current {
	case screenGame:
		return m.updateGame(msg)
	case screenInstructions:
		return m.updateInstructions(msg)
	case screenScoreboard:
		return m.updateScoreboard(msg)
	}
	return m.updateMenu(msg)
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	selected := m.menu.Selected()
	if selected == nil {
		return m, cmd
	}

	switch selected.Kind {
	case ItemInstructions:
		m.help = NewInstructionsModel(m.config.ScreenW, m.config.ScreenH)
		m.current = screenInstructions
		return m, nil

	case ItemScoreboard:
		m.board = NewScoreboardModel(m.scoreSource(), m.config.ScreenW, m.config.ScreenH)
		m.current = screenScoreboard
		return m, nil
	}

	game, err := registry.Create(selected.GameID)
	if err != nil {
		// Shouldn't happen since menu only shows registered games
		m.opts.logger().Error("cannot create game", "game", selected.GameID, "err", err)
		m.menu = NewMenuModel(m.opts.Store, m.config)
		return m, nil
	}

	gm := NewModel(game, m.config, m.opts)
	gm.embedded = true
	m.game = &gm
	m.current = screenGame
	return m, m.game.Init()
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.game.Update(msg)
	if gm, ok := newModel.(Model); ok {
		m.game = &gm
	}

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.game.BackToMenu() {
		m.game = nil
		return m.backToMenu()
	}
	return m, cmd
}

func (m SessionModel) updateInstructions(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.help.Update(msg)
	if im, ok := newModel.(InstructionsModel); ok {
		m.help = im
	}

	if m.help.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.help.Done() {
		return m.backToMenu()
	}
	return m, cmd
}

func (m SessionModel) updateScoreboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.board.Update(msg)
	if sm, ok := newModel.(ScoreboardModel); ok {
		m.board = sm
	}

	if m.board.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.board.IsGoingBack() {
		return m.backToMenu()
	}
	return m, cmd
}

// backToMenu rebuilds the menu so best scores are fresh.
func (m SessionModel) backToMenu() (tea.Model, tea.Cmd) {
	m.current = screenMenu
	m.menu = NewMenuModel(m.opts.Store, m.config)
	return m, m.menu.Init()
}

// Quitting returns true once the session is over.
func (m SessionModel) Quitting() bool {
	return m.quitting
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.current {
	case screenGame:
		return m.game.View()
	case screenInstructions:
		return m.help.View()
	case screenScoreboard:
		return m.board.View()
	}
	return m.menu.View()
}

// RunSession runs the menu-driven session in the local terminal.
func RunSession(cfg core.RuntimeConfig, opts Options) error {
	p := tea.NewProgram(
		NewSessionModel(cfg, opts),
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)
	_, err := p.Run()
	return err
}
