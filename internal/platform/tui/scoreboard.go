package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/eggcatch/internal/registry"
	"github.com/vovakirdan/eggcatch/internal/storage"
)

const (
	boardScores     = 50 // rows loaded per mode
	boardStatsWidth = 26 // stats panel, shown when the terminal is wide enough
	boardWideMin    = 72
)

var (
	boardFrameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	boardTabStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	boardActiveTabStyle = lipgloss.NewStyle().Bold(true).
				Foreground(lipgloss.Color("229")).
				Background(lipgloss.Color("#C45555")).
				Padding(0, 1)
	boardLabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// ScoreSource is what the scoreboard reads from.
type ScoreSource interface {
	TopScores(gameID string, limit int) ([]storage.ScoreEntry, error)
	GetGameStats(gameID string) (*storage.GameStats, error)
}

type boardKeys struct {
	Scroll key.Binding
	Mode   key.Binding
	Back   key.Binding
	Quit   key.Binding
}

func (k boardKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Scroll, k.Mode, k.Back, k.Quit}
}

func (k boardKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

func newBoardKeys() boardKeys {
	return boardKeys{
		Scroll: key.NewBinding(
			key.WithKeys("up", "k", "down", "j"),
			key.WithHelp("↑/↓", "scroll"),
		),
		Mode: key.NewBinding(
			key.WithKeys("tab", "shift+tab", "left", "right", "h", "l"),
			key.WithHelp("tab/←/→", "mode"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel shows the leaderboard of one mode at a time.
type ScoreboardModel struct {
	modes     []registry.GameInfo
	current   int
	store     ScoreSource // nil shows empty boards
	stats     *storage.GameStats
	empty     bool
	table     table.Model
	help      help.Model
	keys      boardKeys
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewScoreboardModel creates a scoreboard sized to the terminal.
func NewScoreboardModel(store ScoreSource, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		modes:  registry.List(),
		store:  store,
		keys:   newBoardKeys(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.help.Width = width
	m.table = m.newTable()
	m.load()
	return m
}

func (m ScoreboardModel) wide() bool {
	return m.width >= boardWideMin
}

func (m ScoreboardModel) newTable() table.Model {
	dateWidth := 18
	if m.wide() {
		dateWidth = min(20, max(12, m.width-boardStatsWidth-36))
	}

	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "#", Width: 4},
			{Title: "Score", Width: 8},
			{Title: "When", Width: dateWidth},
		}),
		table.WithFocused(true),
		table.WithHeight(max(3, m.height-10)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("#C45555")).
		Bold(false)
	t.SetStyles(s)
	return t
}

// load reads the current mode's scores and totals. Store errors show as an
// empty board.
func (m *ScoreboardModel) load() {
	var scores []storage.ScoreEntry
	m.stats = nil
	if m.store != nil && len(m.modes) > 0 {
		id := m.modes[m.current].ID
		scores, _ = m.store.TopScores(id, boardScores)
		m.stats, _ = m.store.GetGameStats(id)
	}

	rows := make([]table.Row, 0, len(scores))
	for i, s := range scores {
		rows = append(rows, table.Row{
			strconv.Itoa(i + 1),
			strconv.Itoa(s.Score),
			s.CreatedAt.Format("Jan 02 15:04"),
		})
	}
	m.empty = len(rows) == 0
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func (m *ScoreboardModel) cycle(step int) {
	if len(m.modes) == 0 {
		return
	}
	m.current = (m.current + step + len(m.modes)) % len(m.modes)
	m.load()
}

// Init implements tea.Model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, nil
		case key.Matches(msg, m.keys.Mode):
			switch msg.String() {
			case "shift+tab", "left", "h":
				m.cycle(-1)
			default:
				m.cycle(1)
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.table = m.newTable()
		m.load()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("HIGH SCORES"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.tabs(), m.width))
	b.WriteString("\n\n")

	board := m.table.View()
	if m.empty {
		board = boardLabelStyle.Italic(true).Padding(1, 2).
			Render("No scores recorded yet.\nCatch some eggs to set one!")
	}
	body := boardFrameStyle.Render(board)
	if m.wide() {
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, "  ", m.statsPanel())
	}
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, body))
	b.WriteString("\n\n")
	b.WriteString(centerText(boardLabelStyle.Render(m.help.View(m.keys)), m.width))

	return b.String()
}

func (m ScoreboardModel) tabs() string {
	tabs := make([]string, len(m.modes))
	for i, g := range m.modes {
		if i == m.current {
			tabs[i] = boardActiveTabStyle.Render(g.Title)
		} else {
			tabs[i] = boardTabStyle.Render(g.Title)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

// statsPanel summarizes every run of the selected mode.
func (m ScoreboardModel) statsPanel() string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Render("Totals"))
	b.WriteString("\n\n")

	line := func(label, value string) {
		fmt.Fprintf(&b, "%s %s\n", boardLabelStyle.Render(fmt.Sprintf("%-8s", label)), value)
	}
	if m.stats == nil || m.stats.GamesCount == 0 {
		line("runs", "0")
	} else {
		line("runs", strconv.Itoa(m.stats.GamesCount))
		line("best", strconv.Itoa(m.stats.HighScore))
		line("average", fmt.Sprintf("%.1f", m.stats.AvgScore))
		line("points", strconv.FormatInt(m.stats.TotalScore, 10))
		line("last", m.stats.LastPlayed.Format("Jan 02 15:04"))
	}

	return boardFrameStyle.Width(boardStatsWidth).Render(strings.TrimRight(b.String(), "\n"))
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}
