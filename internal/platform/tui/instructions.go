package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/eggcatch/internal/config"
	"github.com/vovakirdan/eggcatch/internal/core"
	"github.com/vovakirdan/eggcatch/internal/games/catcher"
)

var instructionsBoxStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("#FF6B6B")).
	Padding(1, 3)

// InstructionsModel shows what falls and how to move. Any key closes it.
type InstructionsModel struct {
	cfg      config.CatcherConfig
	width    int
	height   int
	done     bool
	quitting bool
}

// NewInstructionsModel creates the screen for the default rules.
func NewInstructionsModel(width, height int) InstructionsModel {
	return InstructionsModel{cfg: config.DefaultCatcherConfig(), width: width, height: height}
}

// Init implements tea.Model.
func (m InstructionsModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m InstructionsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if s := msg.String(); s == "ctrl+c" || s == "q" {
			m.quitting = true
		} else {
			m.done = true
		}
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	}
	return m, nil
}

// View implements tea.Model.
func (m InstructionsModel) View() string {
	if m.quitting {
		return ""
	}

	sc, combo := m.cfg.Scoring, m.cfg.Combo
	var b strings.Builder
	b.WriteString(menuTitleStyle.Render("HOW TO PLAY"))
	b.WriteString("\n\n")

	rows := []struct {
		glyph rune
		color core.Color
		text  string
	}{
		{catcher.EggChar, core.ColorPrimary, fmt.Sprintf("Egg          +%d", sc.Normal)},
		{catcher.GoldenChar, core.ColorGolden, fmt.Sprintf("Golden egg   +%d", sc.Golden)},
		{catcher.RottenChar, core.ColorRotten, "Rotten egg   lose a life if caught"},
		{catcher.BombChar, core.ColorBomb, "Bomb         lose a life if caught"},
	}
	for _, r := range rows {
		fmt.Fprintf(&b, "  %s  %s\n", colorStyles[r.color].Render(string(r.glyph)), r.text)
	}

	b.WriteString("\n")
	b.WriteString("Let a good egg hit the ground and you lose a life.\n")
	fmt.Fprintf(&b, "Catch %d in a row for a x%d combo.\n", combo.Threshold, combo.Multiplier)
	fmt.Fprintf(&b, "You start with %d lives; eggs fall faster as you score.\n", sc.Lives)
	b.WriteString("\n")
	b.WriteString("A/D or arrows  move     mouse  steer\n")
	b.WriteString("P/Esc          pause    R      restart\n")
	b.WriteString("B              menu     Q      quit\n")
	b.WriteString("\n")
	b.WriteString(menuFaintStyle.Render("press any key"))

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, instructionsBoxStyle.Render(b.String()))
}

// Done returns true once the player has read enough.
func (m InstructionsModel) Done() bool {
	return m.done
}

// IsQuitting returns true if user requested to quit.
func (m InstructionsModel) IsQuitting() bool {
	return m.quitting
}
