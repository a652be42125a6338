package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/grid-snake/internal/core"
	"github.com/vovakirdan/grid-snake/internal/registry"
)

func newTestMenu() MenuModel {
	m := NewMenuModel(core.RuntimeConfig{ScreenW: 80, ScreenH: 24})
	m.items = []registry.GameInfo{
		{ID: "snake", Title: "Snake"},
		{ID: "snake_classic", Title: "Snake (Classic)"},
	}
	return m
}

func menuUpdate(t *testing.T, m MenuModel, msg tea.Msg) MenuModel {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(MenuModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm
}

func TestMenuSelect(t *testing.T) {
	m := newTestMenu()
	m = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyDown}) // clamps at the last item
	m = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.Selected() == nil || m.Selected().ID != "snake_classic" {
		t.Errorf("Selected = %+v, want snake_classic", m.Selected())
	}
}

func TestMenuScoreboardAndQuit(t *testing.T) {
	m := menuUpdate(t, newTestMenu(), tea.KeyMsg{Type: tea.KeyTab})
	if !m.WantsScoreboard() {
		t.Error("Tab should open the scoreboard")
	}

	m = menuUpdate(t, newTestMenu(), keyRune('q'))
	if !m.IsQuitting() || m.View() != "" {
		t.Error("q should quit with an empty view")
	}
}

func TestMenuResizeUpdatesConfig(t *testing.T) {
	m := menuUpdate(t, newTestMenu(), tea.WindowSizeMsg{Width: 120, Height: 40})
	if cfg := m.Config(); cfg.ScreenW != 120 || cfg.ScreenH != 40 {
		t.Errorf("Config = %+v", cfg)
	}
}
