package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/eggcatch/internal/core"
	"github.com/vovakirdan/eggcatch/internal/games/catcher"
	"github.com/vovakirdan/eggcatch/internal/registry"
	"github.com/vovakirdan/eggcatch/internal/storage"
)

// Options are the collaborators a hosted game is wired to. Every field is
// optional.
type Options struct {
	Store     *storage.Store
	Audio     catcher.Audio
	Renderers []catcher.Renderer
	Logger    *log.Logger
}

func (o Options) logger() *log.Logger {
	if o.Logger == nil {
		return log.New(io.Discard)
	}
	return o.Logger
}

// hookable games accept collaborators and a stored best score.
type hookable interface {
	Attach(catcher.Hooks)
	SetBest(best int)
}

// scaler games map display columns to field units.
type scaler interface {
	DisplayScale(screenW int) float64
}

type stopper interface {
	Stop()
}

// Model is the Bubble Tea model for running one game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	opts       Options
	inputFrame core.InputFrame
	keyMapper  *KeyMapper
	holds      *HoldTracker
	now        func() time.Time
	run        uint64

	pointerX      float64
	pointerActive bool

	gameState  core.GameState
	embedded   bool // inside a session; back returns to the menu
	quitting   bool
	backToMenu bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	attach(game, opts)

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:     cfg,
		opts:       opts,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
		holds:      NewHoldTracker(),
		now:        time.Now,
		run:        nextRunID(),
	}
}

// attach wires audio, renderers and score persistence into the game.
func attach(game registry.Game, opts Options) {
	h, ok := game.(hookable)
	if !ok {
		return
	}

	logger := opts.logger()
	if opts.Store != nil {
		if best, err := opts.Store.HighScore(game.ID()); err == nil {
			h.SetBest(best)
		} else {
			logger.Warn("could not load best score", "game", game.ID(), "err", err)
		}
	}

	h.Attach(catcher.Hooks{
		Audio:        opts.Audio,
		Renderers:    opts.Renderers,
		OnSessionEnd: scoreRecorder(opts.Store, logger),
		Logger:       logger,
	})
}

// scoreRecorder stores final scores. Failures are logged; the game goes on.
func scoreRecorder(store *storage.Store, logger *log.Logger) func(gameID string, score int) {
	return func(gameID string, score int) {
		if store == nil || score <= 0 {
			return
		}
		res, err := store.RecordFinal(gameID, score)
		if err != nil {
			logger.Warn("could not save score", "game", gameID, "err", err)
			return
		}
		logger.Info("score saved", "game", gameID, "score", score, "best", res.Best, "new_best", res.NewBest)
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate, m.run)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		if msg.Run != m.run {
			return m, nil
		}
		return m.handleTick(msg.At)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	// Keys take the catcher back from the mouse
	if d, ok := m.keyMapper.Direction(msg); ok {
		m.holds.Press(d, m.now())
		m.pointerActive = false
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		m.teardown()
		return m, tea.Quit
	}

	if m.inputFrame.Has(core.ActionBack) && (m.gameState.GameOver || m.gameState.Paused) {
		m.backToMenu = true
		m.teardown()
		if m.embedded {
			return m, nil
		}
		return m, tea.Quit
	}

	return m, nil
}

// handleMouse follows the pointer while it moves over the window.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Action {
	case tea.MouseActionMotion, tea.MouseActionPress:
		// Aim at the middle of the cell
		m.pointerX = float64(msg.X) + 0.5
		m.pointerActive = true
		m.holds.Release()
	}
	return m, nil
}

// handleTick runs one frame at the tick timestamp.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.quitting || m.backToMenu {
		return m, nil
	}

	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.holds.Release()
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate, m.run)
	}

	in := m.inputFrame
	in.Left = m.holds.Held(catcher.DirLeft, now)
	in.Right = m.holds.Held(catcher.DirRight, now)
	if m.pointerActive {
		in.SetPointer(m.pointerX, m.displayScale())
	}

	result := m.game.Step(now, in)
	m.gameState = result.State

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate, m.run)
}

func (m Model) displayScale() float64 {
	if s, ok := m.game.(scaler); ok {
		return s.DisplayScale(m.config.ScreenW)
	}
	return 1
}

// teardown stops the game's session so nothing outlives the view.
func (m Model) teardown() {
	if s, ok := m.game.(stopper); ok {
		s.Stop()
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir, err := storage.ExpandPath("~/.eggcatch/screenshots")
	if err != nil {
		return
	}
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)

	_, err := p.Run()
	return err
}
