package catcher

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/eggcatch/internal/core"
)

// Visual characters for rendering
const (
	EggChar    = '0'
	GoldenChar = '@'
	RottenChar = '%'
	BombChar   = '*'
	HeadChar   = 'O'
	BodyChar   = '|'
	GroundChar = '═'
	LifeChar   = '♥'
)

// Minimum terminal size that still shows the whole field.
const (
	MinScreenW = 30
	MinScreenH = 12
)

// layout maps field units onto the cells between the HUD and the status row.
type layout struct {
	top    int // first field row
	rows   int
	cols   int
	sx, sy float64 // cells per field unit
}

func newLayout(dst *core.Screen, s Snapshot) layout {
	l := layout{top: 1, rows: dst.Height() - 3, cols: dst.Width()}
	if s.FieldW > 0 && s.FieldH > 0 {
		l.sx = float64(l.cols) / s.FieldW
		l.sy = float64(l.rows) / s.FieldH
	}
	return l
}

func (l layout) project(b core.Box, shakeX, shakeY float64) core.Rect {
	r := core.NewBox(b.X+shakeX, b.Y+shakeY, b.W, b.H).ToCells(l.sx, l.sy)
	r.Y += l.top
	return r
}

func (l layout) clip(r core.Rect) core.Rect {
	top := max(r.Y, l.top)
	bottom := min(r.Bottom(), l.top+l.rows)
	if bottom < top {
		bottom = top
	}
	return core.NewRect(r.X, top, r.W, bottom-top)
}

// Render draws the last snapshot.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < MinScreenW || dst.Height() < MinScreenH {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small", core.ColorDefault)
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", MinScreenW, MinScreenH), core.ColorDim)
		return
	}

	s := g.Snapshot()
	l := newLayout(dst, s)

	renderObjects(dst, l, s)
	renderCatcher(dst, l, s)
	renderTexts(dst, l, s)
	renderGround(dst, l)
	g.renderHUD(dst, s)
	renderStatus(dst, s)
	g.renderOverlay(dst, s)
}

func kindStyle(k Kind) (rune, core.Color) {
	switch k {
	case KindGolden:
		return GoldenChar, core.ColorGolden
	case KindRotten:
		return RottenChar, core.ColorRotten
	case KindBomb:
		return BombChar, core.ColorBomb
	default:
		return EggChar, core.ColorBright
	}
}

func renderObjects(dst *core.Screen, l layout, s Snapshot) {
	for _, o := range s.Objects {
		r := l.clip(l.project(core.NewBox(o.X, o.Y, o.W, o.H), s.ShakeX, s.ShakeY))
		ch, color := kindStyle(o.Kind)
		dst.DrawRect(r, ch, color)
	}
}

func renderCatcher(dst *core.Screen, l layout, s Snapshot) {
	c := s.Catcher
	body := l.project(core.NewBox(c.X, c.Y, c.W, c.H), s.ShakeX, s.ShakeY)
	basket := l.project(core.NewBox(c.BasketX, c.BasketY, c.BasketW, c.BasketH), s.ShakeX, s.ShakeY)

	// Stick figure above the basket
	mid := body.X + body.W/2
	for y := body.Y; y < basket.Y && y < l.top+l.rows; y++ {
		ch := BodyChar
		if y == body.Y {
			ch = HeadChar
		}
		dst.SetColored(mid, y, ch, core.ColorPrimary)
	}

	// Basket: \___/
	y := min(basket.Y, l.top+l.rows-1)
	w := max(basket.W, 2)
	dst.SetColored(basket.X, y, '\\', core.ColorPrimary)
	dst.DrawHLine(basket.X+1, y, w-2, '_', core.ColorPrimary)
	dst.SetColored(basket.X+w-1, y, '/', core.ColorPrimary)
}

func renderTexts(dst *core.Screen, l layout, s Snapshot) {
	for _, t := range s.Texts {
		r := l.project(core.NewBox(t.X, t.Y, 0, 0), s.ShakeX, s.ShakeY)
		if r.Y < l.top || r.Y >= l.top+l.rows {
			continue
		}
		color := core.ColorFaint
		switch {
		case t.Opacity > 0.66:
			color = core.ColorBright
		case t.Opacity > 0.33:
			color = core.ColorDim
		}
		dst.DrawTextColored(r.X, r.Y, t.Text, color)
	}
}

func renderGround(dst *core.Screen, l layout) {
	dst.DrawHLine(0, l.top+l.rows, dst.Width(), GroundChar, core.ColorDim)
}

// renderHUD draws score, lives and best on the top row, plus the combo banner.
func (g *Game) renderHUD(dst *core.Screen, s Snapshot) {
	dst.DrawTextColored(1, 0, fmt.Sprintf("Score: %d", s.Score), core.ColorDefault)

	lives := strings.Repeat(string(LifeChar), max(s.Lives, 0))
	dst.DrawTextCentered(0, lives, core.ColorPrimary)

	best := fmt.Sprintf("Best: %d", max(g.best, s.Score))
	dst.DrawTextColored(dst.Width()-len(best)-1, 0, best, core.ColorDim)

	if s.ComboActive && !s.GameOver {
		dst.DrawTextCentered(1, "COMBO x2!", core.ColorGolden)
	}
}

// renderStatus draws the difficulty bar on the bottom row.
func renderStatus(dst *core.Screen, s Snapshot) {
	y := dst.Height() - 1
	label := "Difficulty "
	width := min(20, dst.Width()-len(label)-4)
	if width < 1 {
		return
	}
	filled := int(math.Round(s.Difficulty * float64(width)))
	bar := "[" + strings.Repeat("█", filled) + strings.Repeat("·", width-filled) + "]"
	dst.DrawTextColored(1, y, label, core.ColorDim)
	dst.DrawTextColored(1+len(label), y, bar, core.ColorPrimary)
}

// renderOverlay draws the pause and game over boxes over the frozen scene.
func (g *Game) renderOverlay(dst *core.Screen, s Snapshot) {
	switch {
	case s.GameOver:
		lines := []string{"GAME OVER", fmt.Sprintf("Score: %d   Best: %d", s.Score, g.best)}
		if g.newBest {
			lines = append(lines, "New high score!")
		}
		lines = append(lines, "R restart  B menu  Q quit")
		drawMessageBox(dst, lines)
	case s.Paused:
		drawMessageBox(dst, []string{"PAUSED", "Press P to resume"})
	}
}

func drawMessageBox(dst *core.Screen, lines []string) {
	width := 0
	for _, line := range lines {
		width = max(width, len([]rune(line)))
	}
	width += 4
	height := len(lines) + 2

	box := core.NewRect((dst.Width()-width)/2, (dst.Height()-height)/2, width, height)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorPrimary)
	for i, line := range lines {
		color := core.ColorDefault
		if i == 0 {
			color = core.ColorPrimary
		}
		dst.DrawTextCentered(box.Y+1+i, line, color)
	}
}
