package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/eggcatch/internal/core"
	"github.com/vovakirdan/eggcatch/internal/games/catcher"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{runeKey('a'), core.ActionLeft, false},
		{tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft, false},
		{runeKey('d'), core.ActionRight, false},
		{tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{runeKey('p'), core.ActionPause, false},
		{tea.KeyMsg{Type: tea.KeyEsc}, core.ActionPause, false},
		{runeKey('r'), core.ActionRestart, false},
		{runeKey('b'), core.ActionBack, false},
		{tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm, false},
		{runeKey('q'), core.ActionQuit, true},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{runeKey('x'), core.ActionNone, false},
	}

	for _, tc := range tests {
		action, quit := km.MapKey(tc.msg)
		if action != tc.action || quit != tc.quit {
			t.Errorf("MapKey(%q) = %v/%v, expected %v/%v", tc.msg.String(), action, quit, tc.action, tc.quit)
		}
	}
}

func TestMapKeyToFrameSkipsMovement(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	km.MapKeyToFrame(runeKey('d'), &frame)
	if len(frame.Actions) != 0 {
		t.Errorf("movement keys should not become actions: %v", frame.Actions)
	}

	km.MapKeyToFrame(runeKey('p'), &frame)
	if !frame.Has(core.ActionPause) {
		t.Error("pause key should set the pause action")
	}
	if !km.MapKeyToFrame(runeKey('q'), &frame) {
		t.Error("q should report quit")
	}
}

func TestDirection(t *testing.T) {
	km := NewKeyMapper()
	if d, ok := km.Direction(runeKey('a')); !ok || d != catcher.DirLeft {
		t.Errorf("a = %v/%v", d, ok)
	}
	if d, ok := km.Direction(tea.KeyMsg{Type: tea.KeyRight}); !ok || d != catcher.DirRight {
		t.Errorf("right = %v/%v", d, ok)
	}
	if _, ok := km.Direction(runeKey('p')); ok {
		t.Error("p is not a direction")
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg    tea.KeyMsg
		action MenuAction
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{runeKey('k'), MenuActionUp},
		{tea.KeyMsg{Type: tea.KeyDown}, MenuActionDown},
		{runeKey('j'), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyEsc}, MenuActionBack},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		{runeKey('q'), MenuActionQuit},
		{runeKey('z'), MenuActionNone},
	}

	for _, tc := range tests {
		if got := km.MapKeyToMenuAction(tc.msg); got != tc.action {
			t.Errorf("MapKeyToMenuAction(%q) = %d, expected %d", tc.msg.String(), got, tc.action)
		}
	}
}

func TestHoldTracker(t *testing.T) {
	h := NewHoldTracker()
	t0 := time.Unix(0, 0)

	if h.Held(catcher.DirLeft, t0) {
		t.Fatal("nothing pressed yet")
	}

	h.Press(catcher.DirLeft, t0)
	if !h.Held(catcher.DirLeft, t0.Add(holdFirst-time.Millisecond)) {
		t.Error("first press should cover the repeat delay")
	}
	if h.Held(catcher.DirLeft, t0.Add(holdFirst)) {
		t.Error("key should release after the first window")
	}

	// A repeat never shortens the hold
	h.Press(catcher.DirLeft, t0.Add(10*time.Millisecond))
	if !h.Held(catcher.DirLeft, t0.Add(holdFirst-time.Millisecond)) {
		t.Error("early repeat cut the hold short")
	}

	// Repeats keep extending it
	at := t0.Add(250 * time.Millisecond)
	h.Press(catcher.DirLeft, at)
	if !h.Held(catcher.DirLeft, at.Add(holdRepeat-time.Millisecond)) {
		t.Error("repeat should extend the hold")
	}

	// The opposite key takes over
	h.Press(catcher.DirRight, at)
	if h.Held(catcher.DirLeft, at) || !h.Held(catcher.DirRight, at) {
		t.Error("pressing right should release left")
	}

	h.Release()
	if h.Held(catcher.DirRight, at) {
		t.Error("Release should drop every key")
	}
}

func TestRenderScreen(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawTextColored(0, 0, "AB", core.ColorGolden)
	s.DrawText(2, 0, "cd")
	s.SetColored(0, 1, '*', core.ColorBomb)

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	for _, want := range []string{"AB", "cd", "*"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q: %q", want, out)
		}
	}
}
